package entity

import (
	"fmt"
	"time"
)

// Variedades válidas para Bag (catálogo de producción de la planta).
const (
	VarietySmall   = "#15"  // #15 Small
	VarietyMedium  = "#22"  // #22 Medium
	VarietyLarge   = "#25"  // #25 Large
	Variety7x12    = "7X12" // 7X12 White
	Variety9x15    = "9X15" // 9X15 White
)

// Colores válidos para Bag.
const (
	ColorWhite = "White"
	ColorRed   = "Red"
	ColorGreen = "Green"
	ColorBlue  = "Blue"
)

// DefaultLocation bodega por defecto para stock nuevo.
const DefaultLocation = "Athiriver Warehouse"

// Bag representa una unidad de inventario de bolsas terminadas,
// identificada por variedad/color/grosor, con stock en fardos (bales).
type Bag struct {
	ID            string
	Variety       string // #15, #22, #25, 7X12, 9X15
	Color         string // White, Red, Green, Blue
	GSM           int    // grosor: 40, 60, 80, 100
	QuantityBales int    // stock actual, nunca negativo
	Location      string
	LastUpdated   time.Time // se refresca en cada escritura
}

// Label devuelve la descripción corta del bag, ej: "#15 - White (40 GSM)".
func (b *Bag) Label() string {
	return fmt.Sprintf("%s - %s (%d GSM)", b.Variety, b.Color, b.GSM)
}

// ValidVariety indica si v pertenece al catálogo de variedades.
func ValidVariety(v string) bool {
	switch v {
	case VarietySmall, VarietyMedium, VarietyLarge, Variety7x12, Variety9x15:
		return true
	}
	return false
}

// ValidColor indica si c es un color del catálogo.
func ValidColor(c string) bool {
	switch c {
	case ColorWhite, ColorRed, ColorGreen, ColorBlue:
		return true
	}
	return false
}

// ValidGSM indica si g es un grosor fabricado (40, 60, 80 o 100 GSM).
func ValidGSM(g int) bool {
	switch g {
	case 40, 60, 80, 100:
		return true
	}
	return false
}
