package repository

import (
	"context"
	"errors"
	"time"

	"fleet-admin/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExpenseRepository owns fuel records and extra expenses.
type ExpenseRepository struct {
	fuelCollection  *mongo.Collection
	extraCollection *mongo.Collection
}

func NewExpenseRepository(db *mongo.Database) *ExpenseRepository {
	return &ExpenseRepository{
		fuelCollection:  db.Collection("fuel_records"),
		extraCollection: db.Collection("extra_expenses"),
	}
}

// Fuel records

func (r *ExpenseRepository) CreateFuelRecord(record *models.FuelRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.fuelCollection.InsertOne(ctx, record)
	return err
}

func (r *ExpenseRepository) FindFuelRecordByID(id string) (*models.FuelRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid fuel record ID")
	}

	var record models.FuelRecord
	err = r.fuelCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("fuel record not found")
		}
		return nil, err
	}

	return &record, nil
}

func (r *ExpenseRepository) FindAllFuelRecords() ([]*models.FuelRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.fuelCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.FuelRecord
	for cursor.Next(ctx) {
		var record models.FuelRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, nil
}

func (r *ExpenseRepository) FindFuelRecordsByVehicleID(vehicleID string) ([]*models.FuelRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(vehicleID)
	if err != nil {
		return nil, errors.New("invalid vehicle ID")
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.fuelCollection.Find(ctx, bson.M{"vehicle_id": objectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.FuelRecord
	for cursor.Next(ctx) {
		var record models.FuelRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, nil
}

func (r *ExpenseRepository) UpdateFuelRecord(id string, record *models.FuelRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid fuel record ID")
	}

	record.UpdatedAt = time.Now()

	_, err = r.fuelCollection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": record})
	return err
}

func (r *ExpenseRepository) DeleteFuelRecord(id string) error {
	return deleteByID(r.fuelCollection, id, "fuel record")
}

// Extra expenses

func (r *ExpenseRepository) CreateExtraExpense(expense *models.ExtraExpense) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	expense.ID = primitive.NewObjectID()
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = time.Now()

	_, err := r.extraCollection.InsertOne(ctx, expense)
	return err
}

func (r *ExpenseRepository) FindExtraExpenseByID(id string) (*models.ExtraExpense, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid expense ID")
	}

	var expense models.ExtraExpense
	err = r.extraCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&expense)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("expense not found")
		}
		return nil, err
	}

	return &expense, nil
}

func (r *ExpenseRepository) FindAllExtraExpenses() ([]*models.ExtraExpense, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.extraCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var expenses []*models.ExtraExpense
	for cursor.Next(ctx) {
		var expense models.ExtraExpense
		if err := cursor.Decode(&expense); err != nil {
			return nil, err
		}
		expenses = append(expenses, &expense)
	}

	return expenses, nil
}

func (r *ExpenseRepository) UpdateExtraExpense(id string, expense *models.ExtraExpense) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid expense ID")
	}

	expense.UpdatedAt = time.Now()

	_, err = r.extraCollection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": expense})
	return err
}

func (r *ExpenseRepository) DeleteExtraExpense(id string) error {
	return deleteByID(r.extraCollection, id, "expense")
}
