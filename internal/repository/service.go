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

// ServiceRepository owns the maintenance-family collections: maintenance
// records, oil changes, tire changes and washings.
type ServiceRepository struct {
	maintenanceCollection *mongo.Collection
	oilChangeCollection   *mongo.Collection
	tireChangeCollection  *mongo.Collection
	washingCollection     *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{
		maintenanceCollection: db.Collection("maintenance_records"),
		oilChangeCollection:   db.Collection("oil_changes"),
		tireChangeCollection:  db.Collection("tire_changes"),
		washingCollection:     db.Collection("washings"),
	}
}

// Maintenance records

func (r *ServiceRepository) CreateMaintenance(record *models.MaintenanceRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.maintenanceCollection.InsertOne(ctx, record)
	return err
}

func (r *ServiceRepository) FindMaintenanceByID(id string) (*models.MaintenanceRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid maintenance record ID")
	}

	var record models.MaintenanceRecord
	err = r.maintenanceCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("maintenance record not found")
		}
		return nil, err
	}

	return &record, nil
}

func (r *ServiceRepository) FindAllMaintenance() ([]*models.MaintenanceRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "scheduled_date", Value: -1}})
	cursor, err := r.maintenanceCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.MaintenanceRecord
	for cursor.Next(ctx) {
		var record models.MaintenanceRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, nil
}

func (r *ServiceRepository) FindMaintenanceByVehicleID(vehicleID string) ([]*models.MaintenanceRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(vehicleID)
	if err != nil {
		return nil, errors.New("invalid vehicle ID")
	}

	opts := options.Find().SetSort(bson.D{{Key: "scheduled_date", Value: -1}})
	cursor, err := r.maintenanceCollection.Find(ctx, bson.M{"vehicle_id": objectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.MaintenanceRecord
	for cursor.Next(ctx) {
		var record models.MaintenanceRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, nil
}

// FindScheduledMaintenanceBefore returns scheduled records due up to the
// cutoff date, the alert feed's input.
func (r *ServiceRepository) FindScheduledMaintenanceBefore(cutoff time.Time) ([]*models.MaintenanceRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status":         models.MaintenanceStatusScheduled,
		"scheduled_date": bson.M{"$lte": cutoff},
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_date", Value: 1}})
	cursor, err := r.maintenanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.MaintenanceRecord
	for cursor.Next(ctx) {
		var record models.MaintenanceRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, nil
}

func (r *ServiceRepository) UpdateMaintenance(id string, record *models.MaintenanceRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid maintenance record ID")
	}

	record.UpdatedAt = time.Now()

	_, err = r.maintenanceCollection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": record})
	return err
}

func (r *ServiceRepository) DeleteMaintenance(id string) error {
	return deleteByID(r.maintenanceCollection, id, "maintenance record")
}

// Oil changes

func (r *ServiceRepository) CreateOilChange(record *models.OilChangeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.oilChangeCollection.InsertOne(ctx, record)
	return err
}

func (r *ServiceRepository) FindOilChangeByID(id string) (*models.OilChangeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid oil change ID")
	}

	var record models.OilChangeRecord
	err = r.oilChangeCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("oil change not found")
		}
		return nil, err
	}

	return &record, nil
}

func (r *ServiceRepository) FindAllOilChanges() ([]*models.OilChangeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.oilChangeCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.OilChangeRecord
	for cursor.Next(ctx) {
		var record models.OilChangeRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, nil
}

func (r *ServiceRepository) FindOilChangesByVehicleID(vehicleID string) ([]*models.OilChangeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(vehicleID)
	if err != nil {
		return nil, errors.New("invalid vehicle ID")
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.oilChangeCollection.Find(ctx, bson.M{"vehicle_id": objectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.OilChangeRecord
	for cursor.Next(ctx) {
		var record models.OilChangeRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, nil
}

// FindOilChangesDueBefore returns records whose next oil change date is set
// and falls up to the cutoff.
func (r *ServiceRepository) FindOilChangesDueBefore(cutoff time.Time) ([]*models.OilChangeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"next_oil_change_date": bson.M{"$ne": nil, "$lte": cutoff}}
	opts := options.Find().SetSort(bson.D{{Key: "next_oil_change_date", Value: 1}})
	cursor, err := r.oilChangeCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.OilChangeRecord
	for cursor.Next(ctx) {
		var record models.OilChangeRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, nil
}

func (r *ServiceRepository) UpdateOilChange(id string, record *models.OilChangeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid oil change ID")
	}

	record.UpdatedAt = time.Now()

	_, err = r.oilChangeCollection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": record})
	return err
}

func (r *ServiceRepository) DeleteOilChange(id string) error {
	return deleteByID(r.oilChangeCollection, id, "oil change")
}

// Tire changes

func (r *ServiceRepository) CreateTireChange(record *models.TireChangeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.tireChangeCollection.InsertOne(ctx, record)
	return err
}

func (r *ServiceRepository) FindTireChangeByID(id string) (*models.TireChangeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid tire change ID")
	}

	var record models.TireChangeRecord
	err = r.tireChangeCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("tire change not found")
		}
		return nil, err
	}

	return &record, nil
}

func (r *ServiceRepository) FindAllTireChanges() ([]*models.TireChangeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.tireChangeCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.TireChangeRecord
	for cursor.Next(ctx) {
		var record models.TireChangeRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, nil
}

func (r *ServiceRepository) UpdateTireChange(id string, record *models.TireChangeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid tire change ID")
	}

	record.UpdatedAt = time.Now()

	_, err = r.tireChangeCollection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": record})
	return err
}

func (r *ServiceRepository) DeleteTireChange(id string) error {
	return deleteByID(r.tireChangeCollection, id, "tire change")
}

// Washings

func (r *ServiceRepository) CreateWashing(record *models.WashingRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.washingCollection.InsertOne(ctx, record)
	return err
}

func (r *ServiceRepository) FindWashingByID(id string) (*models.WashingRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid washing record ID")
	}

	var record models.WashingRecord
	err = r.washingCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("washing record not found")
		}
		return nil, err
	}

	return &record, nil
}

func (r *ServiceRepository) FindAllWashings() ([]*models.WashingRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.washingCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.WashingRecord
	for cursor.Next(ctx) {
		var record models.WashingRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, nil
}

func (r *ServiceRepository) UpdateWashing(id string, record *models.WashingRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid washing record ID")
	}

	record.UpdatedAt = time.Now()

	_, err = r.washingCollection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": record})
	return err
}

func (r *ServiceRepository) DeleteWashing(id string) error {
	return deleteByID(r.washingCollection, id, "washing record")
}

func deleteByID(collection *mongo.Collection, id, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid " + name + " ID")
	}

	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return errors.New(name + " not found")
	}

	return nil
}
