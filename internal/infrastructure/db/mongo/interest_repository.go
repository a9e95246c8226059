package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/venturehub/investment-api/internal/core/domain"
)

const interestCollection = "interests"

type MongoInterestRepository struct {
	coll *mongo.Collection
}

func NewInterestRepository(db *mongo.Database) *MongoInterestRepository {
	return &MongoInterestRepository{coll: db.Collection(interestCollection)}
}

type mongoInterest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt int64              `bson:"created_at"`
}

func (mi mongoInterest) toDomain() *domain.Interest {
	return &domain.Interest{
		ID:        mi.ID.Hex(),
		Name:      mi.Name,
		CreatedAt: unixToTime(mi.CreatedAt),
	}
}

func (r *MongoInterestRepository) Create(ctx context.Context, interest *domain.Interest) (*domain.Interest, error) {
	res, err := r.coll.InsertOne(ctx, mongoInterest{
		Name:      interest.Name,
		CreatedAt: interest.CreatedAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert interest: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *interest
	created.ID = id.Hex()
	return &created, nil
}

func (r *MongoInterestRepository) FindByID(ctx context.Context, id string) (*domain.Interest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInterestNotFound
	}

	var mi mongoInterest
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrInterestNotFound
		}
		return nil, fmt.Errorf("find interest: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *MongoInterestRepository) FindAll(ctx context.Context) ([]domain.Interest, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	defer cursor.Close(ctx)

	var interests []domain.Interest
	for cursor.Next(ctx) {
		var mi mongoInterest
		if err := cursor.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode interest: %w", err)
		}
		interests = append(interests, *mi.toDomain())
	}
	return interests, cursor.Err()
}

func (r *MongoInterestRepository) Update(ctx context.Context, interest *domain.Interest) (*domain.Interest, error) {
	oid, err := primitive.ObjectIDFromHex(interest.ID)
	if err != nil {
		return nil, domain.ErrInterestNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"name": interest.Name}})
	if err != nil {
		return nil, fmt.Errorf("update interest: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrInterestNotFound
	}
	return interest, nil
}

func (r *MongoInterestRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInterestNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete interest: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrInterestNotFound
	}
	return nil
}
