package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ronaldllamas12/carioca-Market/internal/application/dto"
)

// La lista de productos en venta llega del cliente como string separado por
// comas; la normalización vive en una sola función de frontera.
func TestSplitProductosVenta_RecortaEspacios(t *testing.T) {
	got := dto.SplitProductosVenta("Zapatos, Sandalias,  Botas")
	assert.Equal(t, []string{"Zapatos", "Sandalias", "Botas"}, got,
		"cada elemento debe quedar sin espacios alrededor")
}

func TestSplitProductosVenta_DescartaElementosVacios(t *testing.T) {
	got := dto.SplitProductosVenta("Zapatos,, ,Botas,")
	assert.Equal(t, []string{"Zapatos", "Botas"}, got,
		"las comas dobles o finales no deben producir elementos vacíos")
}

func TestSplitProductosVenta_StringVacio(t *testing.T) {
	got := dto.SplitProductosVenta("")
	assert.Empty(t, got)
	assert.NotNil(t, got, "debe ser lista vacía, no nil, para serializar como []")
}

func TestSplitProductosVenta_UnSoloElemento(t *testing.T) {
	got := dto.SplitProductosVenta("  Lámparas  ")
	assert.Equal(t, []string{"Lámparas"}, got)
}
