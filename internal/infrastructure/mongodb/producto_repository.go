package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ronaldllamas12/carioca-Market/internal/domain"
	"github.com/ronaldllamas12/carioca-Market/internal/domain/entity"
	"github.com/ronaldllamas12/carioca-Market/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre la colección productos.
type ProductoRepo struct {
	col *mongo.Collection
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(db *mongo.Database) *ProductoRepo {
	return &ProductoRepo{col: db.Collection(ColProductos)}
}

// Create inserta un producto y devuelve el id hex del documento.
func (r *ProductoRepo) Create(ctx context.Context, producto *entity.Producto) (string, error) {
	res, err := r.col.InsertOne(ctx, producto)
	if err != nil {
		return "", fmt.Errorf("insert producto: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert producto: id inesperado %T", res.InsertedID)
	}
	producto.ID = oid
	return oid.Hex(), nil
}

// ListByComercio devuelve los productos cuyo comercioId coincide (igualdad de
// campo, no relación).
func (r *ProductoRepo) ListByComercio(ctx context.Context, comercioID string) ([]*entity.Producto, error) {
	cur, err := r.col.Find(ctx, bson.M{"comercioId": comercioID})
	if err != nil {
		return nil, fmt.Errorf("find productos: %w", err)
	}
	defer cur.Close(ctx)

	var productos []*entity.Producto
	if err := cur.All(ctx, &productos); err != nil {
		return nil, fmt.Errorf("decode productos: %w", err)
	}
	return productos, nil
}

// UpdateByID edita un producto emparejando {_id, comercioId}. Un id válido
// bajo otro comercio no empareja y devuelve ErrNotFound. El $set lleva solo
// los campos presentes en la edición; los ausentes quedan como estaban.
func (r *ProductoRepo) UpdateByID(ctx context.Context, id, comercioID string, changes entity.ProductoUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	set := bson.M{"updatedAt": changes.UpdatedAt}
	if changes.Nombre != nil {
		set["nombre"] = *changes.Nombre
	}
	if changes.Descripcion != nil {
		set["descripcion"] = *changes.Descripcion
	}
	if changes.Precio != nil {
		set["precio"] = *changes.Precio
	}
	if changes.Imagen != nil {
		set["imagen"] = *changes.Imagen
	}
	if changes.Categoria != nil {
		set["categoria"] = *changes.Categoria
	}
	if changes.Disponible != nil {
		set["disponible"] = *changes.Disponible
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "comercioId": comercioID},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el producto que empareja {_id, comercioId}. ErrNotFound con
// cero eliminaciones.
func (r *ProductoRepo) Delete(ctx context.Context, id, comercioID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "comercioId": comercioID})
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByComercio elimina todos los productos del comercio (cascada).
func (r *ProductoRepo) DeleteByComercio(ctx context.Context, comercioID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"comercioId": comercioID})
	if err != nil {
		return 0, fmt.Errorf("delete productos del comercio: %w", err)
	}
	return res.DeletedCount, nil
}
