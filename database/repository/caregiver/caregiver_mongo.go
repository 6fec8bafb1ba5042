package caregiverRepo

import (
	"context"
	"fmt"
	"time"

	"shebacare/config"
	"shebacare/database"
	"shebacare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCaregiverRepo implements CaregiverRepository using MongoDB.
type MongoCaregiverRepo struct {
	coll *mongo.Collection
}

// NewMongoCaregiverRepo creates a new instance of CaregiverRepository using MongoDB.
func NewMongoCaregiverRepo() CaregiverRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("caregivers")
	return &MongoCaregiverRepo{coll: coll}
}

func (r *MongoCaregiverRepo) GetByID(id string) (*models.Caregiver, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var caregiver models.Caregiver
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&caregiver); err != nil {
		return nil, fmt.Errorf("failed to fetch caregiver with id %s: %w", id, err)
	}
	return &caregiver, nil
}

func (r *MongoCaregiverRepo) GetAll() ([]models.Caregiver, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Stable sort by id keeps the dataset's encounter order reproducible
	// across reloads.
	findOpts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve caregivers: %w", err)
	}
	defer cursor.Close(ctx)
	var caregivers []models.Caregiver
	if err := cursor.All(ctx, &caregivers); err != nil {
		return nil, fmt.Errorf("failed to decode caregivers: %w", err)
	}
	return caregivers, nil
}
