package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/catwiki/catwiki-api/config"
	"github.com/catwiki/catwiki-api/internal/infrastructure/mongodb"
	"github.com/catwiki/catwiki-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDB)

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	email := "demo@catwiki.dev"
	password := "Password123!"
	name := "Demo User"

	hash, err := helpers.NewBcryptHasher().Hash(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	now := primitive.NewDateTimeFromTime(time.Now().UTC())
	res, err := db.Collection("users").UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set": bson.M{
				"password":  hash,
				"name":      name,
				"isActive":  true,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{
				"email":     email,
				"createdAt": now,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}

	var id any = res.UpsertedID
	if id == nil {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
			log.Fatalf("failed to read seeded user: %v", err)
		}
		id = doc.ID
	}
	fmt.Printf("seeded user: id=%v email=%s name=%s password=%s\n", id, email, name, password)
}
