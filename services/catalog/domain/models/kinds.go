package models

import (
	"fmt"
	"strings"
)

// ProductKind tags which catalog aggregate a reference points at.
type ProductKind string

const (
	KindFloor     ProductKind = "floor"
	KindAccessory ProductKind = "accessory"
)

// ParseProductKind accepts the canonical names and the legacy "piso"/"acessorio" spellings.
func ParseProductKind(s string) (ProductKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "floor", "piso":
		return KindFloor, nil
	case "accessory", "acessorio", "acessório":
		return KindAccessory, nil
	default:
		return "", fmt.Errorf("unknown product kind %q", s)
	}
}

// Unit is the stock counting unit label for the kind.
func (k ProductKind) Unit() string {
	switch k {
	case KindFloor:
		return "caixas"
	case KindAccessory:
		return "unidades"
	default:
		return "unidades"
	}
}

// Finish is the surface treatment of a floor tile.
type Finish string

const (
	FinishMatte    Finish = "matte"
	FinishPolished Finish = "polished"
)

// ParseFinish accepts the canonical names and the CSV spellings "fosco"/"polido".
func ParseFinish(s string) (Finish, error) {
	switch s {
	case "matte", "fosco":
		return FinishMatte, nil
	case "polished", "polido":
		return FinishPolished, nil
	default:
		return "", fmt.Errorf("unknown finish %q", s)
	}
}

// CSV returns the spelling used by the import/export format.
func (f Finish) CSV() string {
	switch f {
	case FinishMatte:
		return "fosco"
	case FinishPolished:
		return "polido"
	default:
		return string(f)
	}
}

// Valid reports whether f is a known finish.
func (f Finish) Valid() bool {
	return f == FinishMatte || f == FinishPolished
}

// AccessoryKind classifies an accessory for quantity suggestions.
// The set is open: unknown kinds are stored but get no suggestion.
type AccessoryKind string

const (
	AccessoryMortar      AccessoryKind = "mortar"
	AccessoryGrout       AccessoryKind = "grout"
	AccessorySpacerWedge AccessoryKind = "spacer_wedge"
	AccessorySpacerCross AccessoryKind = "spacer_cross"
	AccessoryBaseboard   AccessoryKind = "baseboard"
)
