package seniorRepo

import (
	"context"
	"fmt"
	"time"

	"shebacare/config"
	"shebacare/database"
	"shebacare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSeniorRepo implements SeniorRepository using MongoDB.
type MongoSeniorRepo struct {
	coll *mongo.Collection
}

// NewMongoSeniorRepo creates a new instance of SeniorRepository using MongoDB.
func NewMongoSeniorRepo() SeniorRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("seniors")
	return &MongoSeniorRepo{coll: coll}
}

func (r *MongoSeniorRepo) GetByID(id string) (*models.Senior, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var senior models.Senior
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&senior); err != nil {
		return nil, fmt.Errorf("failed to fetch senior with id %s: %w", id, err)
	}
	return &senior, nil
}

func (r *MongoSeniorRepo) GetAll() ([]models.Senior, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve seniors: %w", err)
	}
	defer cursor.Close(ctx)
	var seniors []models.Senior
	if err := cursor.All(ctx, &seniors); err != nil {
		return nil, fmt.Errorf("failed to decode seniors: %w", err)
	}
	return seniors, nil
}
