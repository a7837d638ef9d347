package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// Connect establishes a connection to MongoDB and bootstraps indexes.
func Connect(mongoURI string) (*mongo.Database, error) {
	cs, err := connstring.ParseAndValidate(mongoURI)
	if err != nil {
		return nil, fmt.Errorf("invalid MongoDB URI: %v", err)
	}

	clientOptions := options.Client().ApplyURI(mongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	log.Println("Successfully connected to MongoDB")

	dbName := cs.Database
	if dbName == "" {
		dbName = "fleet_admin"
	}

	db := client.Database(dbName)

	if err := createIndexes(db); err != nil {
		log.Printf("Warning: Failed to create indexes: %v", err)
	}

	return db, nil
}

func createIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	indexSets := map[string][]mongo.IndexModel{
		"users": {
			{Keys: map[string]interface{}{"username": 1}, Options: unique},
			{Keys: map[string]interface{}{"email": 1}, Options: unique},
			{Keys: map[string]interface{}{"role": 1}},
		},
		"vehicles": {
			{Keys: map[string]interface{}{"plate_number": 1}, Options: unique},
			{Keys: map[string]interface{}{"status": 1}},
			{Keys: map[string]interface{}{"type": 1}},
		},
		"drivers": {
			{Keys: map[string]interface{}{"license_number": 1}, Options: unique},
			{Keys: map[string]interface{}{"status": 1}},
			{Keys: map[string]interface{}{"license_expiry_date": 1}},
		},
		"maintenance_records": {
			{Keys: map[string]interface{}{"vehicle_id": 1}},
			{Keys: map[string]interface{}{"status": 1}},
			{Keys: map[string]interface{}{"scheduled_date": 1}},
		},
		"oil_changes": {
			{Keys: map[string]interface{}{"vehicle_id": 1}},
			{Keys: map[string]interface{}{"next_oil_change_date": 1}},
		},
		"tire_changes": {
			{Keys: map[string]interface{}{"vehicle_id": 1}},
			{Keys: map[string]interface{}{"date": -1}},
		},
		"washings": {
			{Keys: map[string]interface{}{"vehicle_id": 1}},
			{Keys: map[string]interface{}{"date": -1}},
		},
		"technical_inspections": {
			{Keys: map[string]interface{}{"vehicle_id": 1}},
			{Keys: map[string]interface{}{"expiry_date": 1}},
		},
		"insurance_policies": {
			{Keys: map[string]interface{}{"vehicle_id": 1}},
			{Keys: map[string]interface{}{"end_date": 1}},
			{Keys: map[string]interface{}{"status": 1}},
		},
		"fuel_records": {
			{Keys: map[string]interface{}{"vehicle_id": 1}},
			{Keys: map[string]interface{}{"date": -1}},
		},
		"extra_expenses": {
			{Keys: map[string]interface{}{"vehicle_id": 1}},
			{Keys: map[string]interface{}{"date": -1}},
		},
	}

	for name, indexes := range indexSets {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			log.Printf("Failed to create %s indexes: %v", name, err)
		}
	}

	log.Println("Database indexes created successfully")
	return nil
}

// Disconnect closes the MongoDB connection.
func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %v", err)
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
