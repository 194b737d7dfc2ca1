package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAreaPerBox(t *testing.T) {
	tests := []struct {
		name   string
		sideA  string
		sideB  string
		pieces int
		want   string
	}{
		{"62x120 two pieces", "62", "120", 2, "1.488"},
		{"83x83 three pieces", "83", "83", 3, "2.0667"},
		{"60x60 four pieces", "60", "60", 4, "1.44"},
		{"fractional side", "60.5", "60", 4, "1.452"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AreaPerBox(decimal.RequireFromString(tt.sideA), decimal.RequireFromString(tt.sideB), tt.pieces)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("AreaPerBox = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFloorProductPatch_RecomputesFromMergedValues(t *testing.T) {
	p := &FloorProduct{
		SideACm:      decimal.NewFromInt(62),
		SideBCm:      decimal.NewFromInt(120),
		PiecesPerBox: 2,
	}
	p.RecomputeArea()

	pieces := 3
	FloorProductPatch{PiecesPerBox: &pieces}.Apply(p)

	want := decimal.RequireFromString("2.232")
	if !p.AreaPerBoxM2.Equal(want) {
		t.Fatalf("AreaPerBoxM2 = %s, want %s", p.AreaPerBoxM2, want)
	}
}

func TestFloorProductPatch_NonGeometryKeepsArea(t *testing.T) {
	p := &FloorProduct{
		SideACm:      decimal.NewFromInt(60),
		SideBCm:      decimal.NewFromInt(60),
		PiecesPerBox: 4,
	}
	p.RecomputeArea()
	before := p.AreaPerBoxM2

	name := "Liverpool Cinza"
	FloorProductPatch{Name: &name}.Apply(p)

	if p.Name != name {
		t.Fatalf("Name = %q, want %q", p.Name, name)
	}
	if !p.AreaPerBoxM2.Equal(before) {
		t.Fatalf("AreaPerBoxM2 changed from %s to %s", before, p.AreaPerBoxM2)
	}
}

func TestParseFinish(t *testing.T) {
	tests := []struct {
		in      string
		want    Finish
		wantErr bool
	}{
		{"fosco", FinishMatte, false},
		{"polido", FinishPolished, false},
		{"matte", FinishMatte, false},
		{"polished", FinishPolished, false},
		{"Fosco", "", true},
		{"acetinado", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFinish(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFinish(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseFinish(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestProduct_Dispatch(t *testing.T) {
	floor := FloorVariant(&FloorProduct{Name: "Calacata", StockBoxes: 80, MinStockBoxes: 20, Active: true})
	acc := AccessoryVariant(&Accessory{Name: "Rejunte", StockUnits: 150, MinStockUnits: 30})

	if cur, min := floor.Stock(); cur != 80 || min != 20 {
		t.Fatalf("floor stock = %d/%d, want 80/20", cur, min)
	}
	if floor.Unit() != "caixas" {
		t.Fatalf("floor unit = %q", floor.Unit())
	}
	if cur, min := acc.Stock(); cur != 150 || min != 30 {
		t.Fatalf("accessory stock = %d/%d, want 150/30", cur, min)
	}
	if acc.Unit() != "unidades" {
		t.Fatalf("accessory unit = %q", acc.Unit())
	}
	if acc.Active() {
		t.Fatal("accessory should be inactive")
	}

	clone := floor.Clone()
	clone.SetStock(3)
	if floor.Floor.StockBoxes != 80 {
		t.Fatal("SetStock on a clone must not touch the original")
	}
}
