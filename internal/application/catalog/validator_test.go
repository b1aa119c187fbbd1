package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-api/internal/application/catalog"
	"github.com/tu-usuario/catalogo-api/internal/domain"
)

func TestValidateParent_RaizSiempreValida(t *testing.T) {
	v := catalog.NewTreeValidator(newMemCategoryRepo())
	assert.NoError(t, v.ValidateParent(""))
}

func TestValidateParent_PadreInexistente(t *testing.T) {
	v := catalog.NewTreeValidator(newMemCategoryRepo())
	err := v.ValidateParent("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidateParent_PadreSubcategoriaRechazado(t *testing.T) {
	cats := newMemCategoryRepo()
	root := seedCategory(cats, "r1", "Zapatos", "")
	child := seedCategory(cats, "c1", "Tenis", root.ID)

	v := catalog.NewTreeValidator(cats)
	require.NoError(t, v.ValidateParent(root.ID))
	assert.ErrorIs(t, v.ValidateParent(child.ID), domain.ErrInvalidHierarchy)
}

func TestValidateParent_PadreBorradoEsInexistente(t *testing.T) {
	cats := newMemCategoryRepo()
	root := seedCategory(cats, "r1", "Zapatos", "")
	require.NoError(t, cats.SoftDelete(root.ID))

	v := catalog.NewTreeValidator(cats)
	assert.ErrorIs(t, v.ValidateParent(root.ID), domain.ErrNotFound)
}

func TestValidateUniqueName_DetectaHermanaDuplicada(t *testing.T) {
	cats := newMemCategoryRepo()
	root := seedCategory(cats, "r1", "Zapatos", "")
	seedCategory(cats, "c1", "Tenis", root.ID)

	v := catalog.NewTreeValidator(cats)
	assert.ErrorIs(t, v.ValidateUniqueName("Tenis", root.ID, ""), domain.ErrDuplicateName)
}

func TestValidateUniqueName_MismoNombreEnOtroGrupoPermitido(t *testing.T) {
	cats := newMemCategoryRepo()
	r1 := seedCategory(cats, "r1", "Zapatos", "")
	seedCategory(cats, "r2", "Ropa", "")
	seedCategory(cats, "c1", "Ofertas", r1.ID)

	v := catalog.NewTreeValidator(cats)
	assert.NoError(t, v.ValidateUniqueName("Ofertas", "r2", ""))
}

func TestValidateUniqueName_ExcluyeLaPropiaFila(t *testing.T) {
	cats := newMemCategoryRepo()
	root := seedCategory(cats, "r1", "Zapatos", "")
	c := seedCategory(cats, "c1", "Tenis", root.ID)

	v := catalog.NewTreeValidator(cats)
	assert.NoError(t, v.ValidateUniqueName("Tenis", root.ID, c.ID))
}

func TestValidateUniqueName_IgnoraBorradas(t *testing.T) {
	cats := newMemCategoryRepo()
	root := seedCategory(cats, "r1", "Zapatos", "")
	c := seedCategory(cats, "c1", "Tenis", root.ID)
	require.NoError(t, cats.SoftDelete(c.ID))

	v := catalog.NewTreeValidator(cats)
	assert.NoError(t, v.ValidateUniqueName("Tenis", root.ID, ""))
}

func TestValidateUniqueNameGlobal_BloqueaEnCualquierNivel(t *testing.T) {
	cats := newMemCategoryRepo()
	root := seedCategory(cats, "r1", "Zapatos", "")
	seedCategory(cats, "c1", "Tenis", root.ID)

	v := catalog.NewTreeValidator(cats)
	assert.ErrorIs(t, v.ValidateUniqueNameGlobal("Tenis"), domain.ErrDuplicateName)
	assert.ErrorIs(t, v.ValidateUniqueNameGlobal("Zapatos"), domain.ErrDuplicateName)
	assert.NoError(t, v.ValidateUniqueNameGlobal("Botas"))
}
