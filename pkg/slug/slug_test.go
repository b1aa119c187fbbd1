package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/catalogo-api/pkg/slug"
)

func TestMake_Basico(t *testing.T) {
	assert.Equal(t, "zapatos-deportivos", slug.Make("Zapatos Deportivos"))
}

func TestMake_Acentos(t *testing.T) {
	assert.Equal(t, "categoria-de-ninos", slug.Make("Categoría de Niños"))
}

func TestMake_CaracteresEspeciales(t *testing.T) {
	// Grupos de separadores se colapsan a un guion; sin guiones al borde.
	assert.Equal(t, "ofertas-50-off", slug.Make("  ¡Ofertas! — 50% OFF  "))
}

func TestMake_DConBarra(t *testing.T) {
	assert.Equal(t, "do-dien-tu", slug.Make("Đồ điện tử"))
}

func TestMake_Vacio(t *testing.T) {
	assert.Equal(t, "", slug.Make(""))
	assert.Equal(t, "", slug.Make("!!!"))
}
