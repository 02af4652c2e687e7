package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ronaldllamas12/carioca-Market/internal/domain"
	"github.com/ronaldllamas12/carioca-Market/internal/domain/entity"
	"github.com/ronaldllamas12/carioca-Market/internal/domain/repository"
)

var _ repository.ComercioRepository = (*ComercioRepo)(nil)

// ComercioRepo implementación del puerto ComercioRepository sobre la colección comercios.
type ComercioRepo struct {
	col *mongo.Collection
}

// NewComercioRepository construye el adaptador de persistencia para comercios.
func NewComercioRepository(db *mongo.Database) *ComercioRepo {
	return &ComercioRepo{col: db.Collection(ColComercios)}
}

// Create inserta un comercio y devuelve el id hex del documento.
func (r *ComercioRepo) Create(ctx context.Context, comercio *entity.Comercio) (string, error) {
	res, err := r.col.InsertOne(ctx, comercio)
	if err != nil {
		return "", fmt.Errorf("insert comercio: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert comercio: id inesperado %T", res.InsertedID)
	}
	comercio.ID = oid
	return oid.Hex(), nil
}

// GetByID obtiene un comercio por id. Un id mal formado cuenta como inexistente.
func (r *ComercioRepo) GetByID(ctx context.Context, id string) (*entity.Comercio, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// GetByIDAndAdmin obtiene un comercio por id Y adminEmail: la consulta de propiedad.
func (r *ComercioRepo) GetByIDAndAdmin(ctx context.Context, id, adminEmail string) (*entity.Comercio, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid, "adminEmail": adminEmail})
}

// List devuelve todos los comercios.
func (r *ComercioRepo) List(ctx context.Context) ([]*entity.Comercio, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find comercios: %w", err)
	}
	defer cur.Close(ctx)

	var comercios []*entity.Comercio
	if err := cur.All(ctx, &comercios); err != nil {
		return nil, fmt.Errorf("decode comercios: %w", err)
	}
	return comercios, nil
}

// Update reemplaza los campos editables del comercio vía $set. ErrNotFound si
// ningún documento empareja el id.
func (r *ComercioRepo) Update(ctx context.Context, comercio *entity.Comercio) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": comercio.ID},
		bson.M{"$set": bson.M{
			"nombre":         comercio.Nombre,
			"categoria":      comercio.Categoria,
			"imagen":         comercio.Imagen,
			"productosVenta": comercio.ProductosVenta,
			"telefono":       comercio.Telefono,
			"updatedAt":      comercio.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("update comercio: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un comercio por id. ErrNotFound si no se borró nada.
func (r *ComercioRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comercio: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// BackfillProductosVenta pone [] donde productosVenta falta o no es un array
// (documentos anteriores a la normalización de la lista).
func (r *ComercioRepo) BackfillProductosVenta(ctx context.Context) (int64, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"productosVenta": bson.M{"$exists": false}},
		bson.M{"productosVenta": bson.M{"$not": bson.M{"$type": "array"}}},
	}}
	res, err := r.col.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"productosVenta": bson.A{}}})
	if err != nil {
		return 0, fmt.Errorf("backfill productosVenta: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *ComercioRepo) findOne(ctx context.Context, filter bson.M) (*entity.Comercio, error) {
	var comercio entity.Comercio
	err := r.col.FindOne(ctx, filter).Decode(&comercio)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find comercio: %w", err)
	}
	return &comercio, nil
}
