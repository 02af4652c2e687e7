// seedadmin crea o promueve un usuario admin directamente en la base.
// Reemplaza los scripts sueltos de administración de versiones anteriores.
//
// Uso: go run ./cmd/seedadmin -email admin@example.com -password secreto -nombre "Admin" -telefono 3757000000
// Si el usuario ya existe, se actualiza su rol a admin (y su password si se pasa una).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ronaldllamas12/carioca-Market/internal/domain/entity"
	"github.com/ronaldllamas12/carioca-Market/internal/infrastructure/mongodb"
	"github.com/ronaldllamas12/carioca-Market/pkg/config"
)

func main() {
	email := flag.String("email", "", "email del admin (obligatorio)")
	password := flag.String("password", "", "password en texto plano (obligatorio al crear)")
	nombre := flag.String("nombre", "", "nombre del admin")
	telefono := flag.String("telefono", "", "teléfono de contacto")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "-email es obligatorio")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conectar a MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	col := db.Collection(mongodb.ColUsers)

	var existing entity.User
	err = col.FindOne(ctx, bson.M{"email": *email}).Decode(&existing)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		fmt.Fprintf(os.Stderr, "buscar usuario: %v\n", err)
		os.Exit(1)
	}
	if err == nil {
		// Ya existe: promover a admin y opcionalmente renovar password
		set := bson.M{"role": entity.RoleAdmin}
		if *password != "" {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
			if hashErr != nil {
				fmt.Fprintf(os.Stderr, "hashear password: %v\n", hashErr)
				os.Exit(1)
			}
			set["password"] = string(hash)
		}
		if _, err := col.UpdateOne(ctx, bson.M{"email": *email}, bson.M{"$set": set}); err != nil {
			fmt.Fprintf(os.Stderr, "promover usuario: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("usuario %s promovido a admin\n", *email)
		return
	}

	if *password == "" {
		fmt.Fprintln(os.Stderr, "-password es obligatorio al crear un admin nuevo")
		os.Exit(1)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}
	user := entity.User{
		Nombre:       *nombre,
		Email:        *email,
		PasswordHash: string(hash),
		Telefono:     *telefono,
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if _, err := col.InsertOne(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin %s creado\n", *email)
}
