package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ronaldllamas12/carioca-Market/internal/application/dto"
	"github.com/ronaldllamas12/carioca-Market/internal/application/usecase"
	"github.com/ronaldllamas12/carioca-Market/internal/domain"
	"github.com/ronaldllamas12/carioca-Market/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeComercioRepo struct {
	comercios map[string]*entity.Comercio
}

func newFakeComercioRepo() *fakeComercioRepo {
	return &fakeComercioRepo{comercios: make(map[string]*entity.Comercio)}
}

func (r *fakeComercioRepo) Create(_ context.Context, c *entity.Comercio) (string, error) {
	c.ID = primitive.NewObjectID()
	r.comercios[c.ID.Hex()] = c
	return c.ID.Hex(), nil
}

func (r *fakeComercioRepo) GetByID(_ context.Context, id string) (*entity.Comercio, error) {
	return r.comercios[id], nil
}

func (r *fakeComercioRepo) GetByIDAndAdmin(_ context.Context, id, adminEmail string) (*entity.Comercio, error) {
	c := r.comercios[id]
	if c == nil || c.AdminEmail != adminEmail {
		return nil, nil
	}
	return c, nil
}

func (r *fakeComercioRepo) List(_ context.Context) ([]*entity.Comercio, error) {
	out := make([]*entity.Comercio, 0, len(r.comercios))
	for _, c := range r.comercios {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeComercioRepo) Update(_ context.Context, c *entity.Comercio) error {
	if _, ok := r.comercios[c.ID.Hex()]; !ok {
		return domain.ErrNotFound
	}
	r.comercios[c.ID.Hex()] = c
	return nil
}

func (r *fakeComercioRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comercios[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.comercios, id)
	return nil
}

func (r *fakeComercioRepo) BackfillProductosVenta(_ context.Context) (int64, error) {
	return 0, nil
}

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[string]*entity.Producto)}
}

func (r *fakeProductoRepo) Create(_ context.Context, p *entity.Producto) (string, error) {
	p.ID = primitive.NewObjectID()
	r.productos[p.ID.Hex()] = p
	return p.ID.Hex(), nil
}

func (r *fakeProductoRepo) ListByComercio(_ context.Context, comercioID string) ([]*entity.Producto, error) {
	out := []*entity.Producto{}
	for _, p := range r.productos {
		if p.ComercioID == comercioID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) UpdateByID(_ context.Context, id, comercioID string, ch entity.ProductoUpdate) error {
	existing, ok := r.productos[id]
	if !ok || existing.ComercioID != comercioID {
		return domain.ErrNotFound
	}
	if ch.Nombre != nil {
		existing.Nombre = *ch.Nombre
	}
	if ch.Descripcion != nil {
		existing.Descripcion = *ch.Descripcion
	}
	if ch.Precio != nil {
		existing.Precio = *ch.Precio
	}
	if ch.Imagen != nil {
		existing.Imagen = *ch.Imagen
	}
	if ch.Categoria != nil {
		existing.Categoria = *ch.Categoria
	}
	if ch.Disponible != nil {
		existing.Disponible = *ch.Disponible
	}
	existing.UpdatedAt = ch.UpdatedAt
	return nil
}

func (r *fakeProductoRepo) Delete(_ context.Context, id, comercioID string) error {
	existing, ok := r.productos[id]
	if !ok || existing.ComercioID != comercioID {
		return domain.ErrNotFound
	}
	delete(r.productos, id)
	return nil
}

func (r *fakeProductoRepo) DeleteByComercio(_ context.Context, comercioID string) (int64, error) {
	var n int64
	for id, p := range r.productos {
		if p.ComercioID == comercioID {
			delete(r.productos, id)
			n++
		}
	}
	return n, nil
}

const (
	ownerEmail = "dueno@example.com"
	otherEmail = "otro@example.com"
)

func seedComercio(t *testing.T, repo *fakeComercioRepo, adminEmail string) string {
	t.Helper()
	id, err := repo.Create(context.Background(), &entity.Comercio{
		Nombre:         "Zapatería Iguazú",
		Categoria:      "Calzado",
		ProductosVenta: []string{"Zapatos"},
		AdminEmail:     adminEmail,
	})
	require.NoError(t, err)
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ComercioUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestComercioList_SinComerciosDevuelveListaVacia(t *testing.T) {
	uc := usecase.NewComercioUseCase(newFakeComercioRepo(), newFakeProductoRepo())

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out, "con cero comercios la lista es [], no nil ni error")
	assert.Empty(t, out)
}

func TestComercioCreate_AsignaAdminEmailYSeparaProductos(t *testing.T) {
	repo := newFakeComercioRepo()
	uc := usecase.NewComercioUseCase(repo, newFakeProductoRepo())

	id, err := uc.Create(context.Background(), ownerEmail, dto.CreateComercioRequest{
		Nombre:         "Zapatería Iguazú",
		Categoria:      "Calzado",
		ProductosVenta: "Zapatos, Sandalias,  Botas",
	})
	require.NoError(t, err)

	stored := repo.comercios[id]
	require.NotNil(t, stored)
	assert.Equal(t, ownerEmail, stored.AdminEmail, "el comercio queda a nombre del admin de la sesión")
	assert.Equal(t, []string{"Zapatos", "Sandalias", "Botas"}, stored.ProductosVenta)
}

func TestComercioUpdate_SoloElPropietario(t *testing.T) {
	repo := newFakeComercioRepo()
	uc := usecase.NewComercioUseCase(repo, newFakeProductoRepo())
	id := seedComercio(t, repo, ownerEmail)

	in := dto.UpdateComercioRequest{Nombre: "Nuevo nombre", ProductosVenta: "Botas"}

	err := uc.Update(context.Background(), otherEmail, id, in)
	assert.ErrorIs(t, err, domain.ErrForbidden, "otro admin no puede editar un comercio ajeno")
	assert.Equal(t, "Zapatería Iguazú", repo.comercios[id].Nombre, "el documento no debe cambiar")

	err = uc.Update(context.Background(), ownerEmail, id, in)
	require.NoError(t, err)
	assert.Equal(t, "Nuevo nombre", repo.comercios[id].Nombre)
	assert.Equal(t, []string{"Botas"}, repo.comercios[id].ProductosVenta)
	assert.False(t, repo.comercios[id].UpdatedAt.IsZero())
}

func TestComercioUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewComercioUseCase(newFakeComercioRepo(), newFakeProductoRepo())

	err := uc.Update(context.Background(), ownerEmail, primitive.NewObjectID().Hex(), dto.UpdateComercioRequest{
		Nombre: "X", ProductosVenta: "a",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComercioDelete_EliminaEnCascadaSusProductos(t *testing.T) {
	comercioRepo := newFakeComercioRepo()
	productoRepo := newFakeProductoRepo()
	uc := usecase.NewComercioUseCase(comercioRepo, productoRepo)

	id := seedComercio(t, comercioRepo, ownerEmail)
	otroID := seedComercio(t, comercioRepo, otherEmail)

	_, err := productoRepo.Create(context.Background(), &entity.Producto{ComercioID: id, Nombre: "Zapato"})
	require.NoError(t, err)
	ajenoID, err := productoRepo.Create(context.Background(), &entity.Producto{ComercioID: otroID, Nombre: "Lámpara"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), id))

	assert.Nil(t, comercioRepo.comercios[id])
	restantes, _ := productoRepo.ListByComercio(context.Background(), id)
	assert.Empty(t, restantes, "los productos del comercio eliminado no sobreviven huérfanos")
	assert.NotNil(t, productoRepo.productos[ajenoID], "los productos de otros comercios quedan intactos")
}

func TestComercioDelete_NoExiste(t *testing.T) {
	uc := usecase.NewComercioUseCase(newFakeComercioRepo(), newFakeProductoRepo())
	err := uc.Delete(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
