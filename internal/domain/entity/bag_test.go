package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecopack/ecopack-api/internal/domain/entity"
)

func TestLabel_FormatoCatalogo(t *testing.T) {
	b := entity.Bag{Variety: entity.VarietySmall, Color: entity.ColorWhite, GSM: 40}
	assert.Equal(t, "#15 - White (40 GSM)", b.Label())

	b = entity.Bag{Variety: entity.Variety9x15, Color: entity.ColorRed, GSM: 100}
	assert.Equal(t, "9X15 - Red (100 GSM)", b.Label())
}

func TestValidVariety(t *testing.T) {
	for _, v := range []string{entity.VarietySmall, entity.VarietyMedium, entity.VarietyLarge, entity.Variety7x12, entity.Variety9x15} {
		assert.True(t, entity.ValidVariety(v), "%s pertenece al catálogo", v)
	}
	assert.False(t, entity.ValidVariety("#30"))
	assert.False(t, entity.ValidVariety(""))
	assert.False(t, entity.ValidVariety("7x12"), "las variedades son sensibles a mayúsculas")
}

func TestValidColor(t *testing.T) {
	for _, c := range []string{entity.ColorWhite, entity.ColorRed, entity.ColorGreen, entity.ColorBlue} {
		assert.True(t, entity.ValidColor(c))
	}
	assert.False(t, entity.ValidColor("Black"))
	assert.False(t, entity.ValidColor("white"), "los colores son sensibles a mayúsculas")
}

func TestValidGSM(t *testing.T) {
	for _, g := range []int{40, 60, 80, 100} {
		assert.True(t, entity.ValidGSM(g))
	}
	for _, g := range []int{0, -40, 50, 120} {
		assert.False(t, entity.ValidGSM(g))
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{entity.RoleAdmin, entity.RoleManager, entity.RoleStaff} {
		assert.True(t, entity.ValidRole(r))
	}
	assert.False(t, entity.ValidRole("root"))
	assert.False(t, entity.ValidRole(""))
}
