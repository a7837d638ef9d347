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

// InsuranceRepository owns insurance policies and technical inspections, the
// two expiry-dated document collections.
type InsuranceRepository struct {
	policyCollection     *mongo.Collection
	inspectionCollection *mongo.Collection
}

func NewInsuranceRepository(db *mongo.Database) *InsuranceRepository {
	return &InsuranceRepository{
		policyCollection:     db.Collection("insurance_policies"),
		inspectionCollection: db.Collection("technical_inspections"),
	}
}

// Insurance policies

func (r *InsuranceRepository) CreatePolicy(policy *models.InsurancePolicy) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	policy.ID = primitive.NewObjectID()
	policy.CreatedAt = time.Now()
	policy.UpdatedAt = time.Now()

	_, err := r.policyCollection.InsertOne(ctx, policy)
	return err
}

func (r *InsuranceRepository) FindPolicyByID(id string) (*models.InsurancePolicy, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid insurance policy ID")
	}

	var policy models.InsurancePolicy
	err = r.policyCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&policy)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("insurance policy not found")
		}
		return nil, err
	}

	return &policy, nil
}

func (r *InsuranceRepository) FindAllPolicies() ([]*models.InsurancePolicy, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "end_date", Value: 1}})
	cursor, err := r.policyCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var policies []*models.InsurancePolicy
	for cursor.Next(ctx) {
		var policy models.InsurancePolicy
		if err := cursor.Decode(&policy); err != nil {
			return nil, err
		}
		policies = append(policies, &policy)
	}

	return policies, nil
}

func (r *InsuranceRepository) FindPoliciesByVehicleID(vehicleID string) ([]*models.InsurancePolicy, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(vehicleID)
	if err != nil {
		return nil, errors.New("invalid vehicle ID")
	}

	opts := options.Find().SetSort(bson.D{{Key: "end_date", Value: -1}})
	cursor, err := r.policyCollection.Find(ctx, bson.M{"vehicle_id": objectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var policies []*models.InsurancePolicy
	for cursor.Next(ctx) {
		var policy models.InsurancePolicy
		if err := cursor.Decode(&policy); err != nil {
			return nil, err
		}
		policies = append(policies, &policy)
	}

	return policies, nil
}

// FindPoliciesExpiringBefore filters on end date only; the status field does
// not gate the expiry feed.
func (r *InsuranceRepository) FindPoliciesExpiringBefore(cutoff time.Time) ([]*models.InsurancePolicy, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"end_date": bson.M{"$lte": cutoff}}
	opts := options.Find().SetSort(bson.D{{Key: "end_date", Value: 1}})
	cursor, err := r.policyCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var policies []*models.InsurancePolicy
	for cursor.Next(ctx) {
		var policy models.InsurancePolicy
		if err := cursor.Decode(&policy); err != nil {
			return nil, err
		}
		policies = append(policies, &policy)
	}

	return policies, nil
}

func (r *InsuranceRepository) UpdatePolicy(id string, policy *models.InsurancePolicy) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid insurance policy ID")
	}

	policy.UpdatedAt = time.Now()

	_, err = r.policyCollection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": policy})
	return err
}

func (r *InsuranceRepository) DeletePolicy(id string) error {
	return deleteByID(r.policyCollection, id, "insurance policy")
}

// Technical inspections

func (r *InsuranceRepository) CreateInspection(inspection *models.TechnicalInspection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	inspection.ID = primitive.NewObjectID()
	inspection.CreatedAt = time.Now()
	inspection.UpdatedAt = time.Now()

	_, err := r.inspectionCollection.InsertOne(ctx, inspection)
	return err
}

func (r *InsuranceRepository) FindInspectionByID(id string) (*models.TechnicalInspection, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid inspection ID")
	}

	var inspection models.TechnicalInspection
	err = r.inspectionCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&inspection)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("inspection not found")
		}
		return nil, err
	}

	return &inspection, nil
}

func (r *InsuranceRepository) FindAllInspections() ([]*models.TechnicalInspection, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "expiry_date", Value: 1}})
	cursor, err := r.inspectionCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inspections []*models.TechnicalInspection
	for cursor.Next(ctx) {
		var inspection models.TechnicalInspection
		if err := cursor.Decode(&inspection); err != nil {
			return nil, err
		}
		inspections = append(inspections, &inspection)
	}

	return inspections, nil
}

func (r *InsuranceRepository) FindInspectionsExpiringBefore(cutoff time.Time) ([]*models.TechnicalInspection, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"expiry_date": bson.M{"$lte": cutoff}}
	opts := options.Find().SetSort(bson.D{{Key: "expiry_date", Value: 1}})
	cursor, err := r.inspectionCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inspections []*models.TechnicalInspection
	for cursor.Next(ctx) {
		var inspection models.TechnicalInspection
		if err := cursor.Decode(&inspection); err != nil {
			return nil, err
		}
		inspections = append(inspections, &inspection)
	}

	return inspections, nil
}

func (r *InsuranceRepository) UpdateInspection(id string, inspection *models.TechnicalInspection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid inspection ID")
	}

	inspection.UpdatedAt = time.Now()

	_, err = r.inspectionCollection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": inspection})
	return err
}

func (r *InsuranceRepository) DeleteInspection(id string) error {
	return deleteByID(r.inspectionCollection, id, "inspection")
}
