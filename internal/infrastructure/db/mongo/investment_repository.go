package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/venturehub/investment-api/internal/core/domain"
)

const investmentCollection = "investments"

type MongoInvestmentRepository struct {
	coll *mongo.Collection
}

func NewInvestmentRepository(db *mongo.Database) *MongoInvestmentRepository {
	return &MongoInvestmentRepository{coll: db.Collection(investmentCollection)}
}

type mongoInvestment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Amount         float64            `bson:"amount"`
	ProjectID      string             `bson:"project_id"`
	InvestorID     string             `bson:"investor_id"`
	IdempotencyKey string             `bson:"idempotency_key,omitempty"`
	CreatedAt      int64              `bson:"created_at"`
}

func (mi mongoInvestment) toDomain() *domain.Investment {
	return &domain.Investment{
		ID:             mi.ID.Hex(),
		Amount:         mi.Amount,
		ProjectID:      mi.ProjectID,
		InvestorID:     mi.InvestorID,
		IdempotencyKey: mi.IdempotencyKey,
		CreatedAt:      unixToTime(mi.CreatedAt),
	}
}

func (r *MongoInvestmentRepository) Create(ctx context.Context, investment *domain.Investment) (*domain.Investment, error) {
	doc := mongoInvestment{
		Amount:         investment.Amount,
		ProjectID:      investment.ProjectID,
		InvestorID:     investment.InvestorID,
		IdempotencyKey: investment.IdempotencyKey,
		CreatedAt:      investment.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert investment: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *investment
	created.ID = id.Hex()
	return &created, nil
}

func (r *MongoInvestmentRepository) FindByID(ctx context.Context, id string) (*domain.Investment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvestmentNotFound
	}

	var mi mongoInvestment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("find investment: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *MongoInvestmentRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Investment, error) {
	var mi mongoInvestment
	if err := r.coll.FindOne(ctx, bson.M{"idempotency_key": key}).Decode(&mi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("find investment by key: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *MongoInvestmentRepository) FindAll(ctx context.Context) ([]domain.Investment, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoInvestmentRepository) FindByInvestor(ctx context.Context, investorID string) ([]domain.Investment, error) {
	return r.findMany(ctx, bson.M{"investor_id": investorID})
}

func (r *MongoInvestmentRepository) FindByProject(ctx context.Context, projectID string) ([]domain.Investment, error) {
	return r.findMany(ctx, bson.M{"project_id": projectID})
}

func (r *MongoInvestmentRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Investment, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer cursor.Close(ctx)

	var investments []domain.Investment
	for cursor.Next(ctx) {
		var mi mongoInvestment
		if err := cursor.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode investment: %w", err)
		}
		investments = append(investments, *mi.toDomain())
	}
	return investments, cursor.Err()
}

func (r *MongoInvestmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvestmentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete investment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrInvestmentNotFound
	}
	return nil
}
