package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ronaldllamas12/carioca-Market/pkg/config"
)

// Nombres de colecciones.
const (
	ColUsers     = "users"
	ColComercios = "comercios"
	ColProductos = "productos"
)

// Connect abre la conexión a MongoDB, la verifica con ping y devuelve el
// handle de la base. El cliente se construye una sola vez en el arranque y se
// inyecta; no hay estado global de conexión.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, client.Database(cfg.DBName), nil
}

// EnsureIndexes crea los índices que el dominio asume: email único en users.
// Idempotente; se invoca en el arranque.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(ColUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("índice único users.email: %w", err)
	}
	return nil
}
