package models

import "github.com/google/uuid"

// ProductRef identifies a product of either kind.
type ProductRef struct {
	Kind ProductKind
	ID   uuid.UUID
}

// Product is a tagged variant over the two catalog aggregates. Exactly one of
// Floor or Accessory is set, matching Kind.
type Product struct {
	Kind      ProductKind
	Floor     *FloorProduct
	Accessory *Accessory
}

// FloorVariant wraps a floor product.
func FloorVariant(p *FloorProduct) Product {
	return Product{Kind: KindFloor, Floor: p}
}

// AccessoryVariant wraps an accessory.
func AccessoryVariant(a *Accessory) Product {
	return Product{Kind: KindAccessory, Accessory: a}
}

func (p Product) Ref() ProductRef {
	return ProductRef{Kind: p.Kind, ID: p.ID()}
}

func (p Product) ID() uuid.UUID {
	switch p.Kind {
	case KindFloor:
		return p.Floor.ID
	case KindAccessory:
		return p.Accessory.ID
	default:
		return uuid.Nil
	}
}

func (p Product) SKU() string {
	switch p.Kind {
	case KindFloor:
		return p.Floor.SKU
	case KindAccessory:
		return p.Accessory.SKU
	default:
		return ""
	}
}

func (p Product) Name() string {
	switch p.Kind {
	case KindFloor:
		return p.Floor.Name
	case KindAccessory:
		return p.Accessory.Name
	default:
		return ""
	}
}

func (p Product) Active() bool {
	switch p.Kind {
	case KindFloor:
		return p.Floor.Active
	case KindAccessory:
		return p.Accessory.Active
	default:
		return false
	}
}

// Stock returns the current and minimum levels in the kind's unit.
func (p Product) Stock() (current, minimum int) {
	switch p.Kind {
	case KindFloor:
		return p.Floor.StockBoxes, p.Floor.MinStockBoxes
	case KindAccessory:
		return p.Accessory.StockUnits, p.Accessory.MinStockUnits
	default:
		return 0, 0
	}
}

// SetStock overwrites the current level on the underlying aggregate.
func (p Product) SetStock(level int) {
	switch p.Kind {
	case KindFloor:
		p.Floor.StockBoxes = level
	case KindAccessory:
		p.Accessory.StockUnits = level
	}
}

// Unit is "caixas" for floor products and "unidades" for accessories.
func (p Product) Unit() string {
	return p.Kind.Unit()
}

// Clone deep-copies the wrapped aggregate.
func (p Product) Clone() Product {
	switch p.Kind {
	case KindFloor:
		return FloorVariant(p.Floor.Clone())
	case KindAccessory:
		return AccessoryVariant(p.Accessory.Clone())
	default:
		return p
	}
}
