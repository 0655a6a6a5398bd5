package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Aditya4234/LMS-project/internal/models"
)

// ConnectMongoDB dials the cluster and verifies the connection with a ping.
func ConnectMongoDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the unique email indexes backing the duplicate-email
// constraint on users, students and instructors. Concurrent creates against
// the same email race here, and the loser gets a duplicate-key error.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := []string{
		models.UsersCollection,
		models.StudentsCollection,
		models.InstructorsCollection,
	}
	for _, collection := range unique {
		_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
