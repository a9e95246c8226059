package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/venturehub/investment-api/internal/core/domain"
)

const projectCollection = "projects"

type MongoProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *MongoProjectRepository {
	return &MongoProjectRepository{coll: db.Collection(projectCollection)}
}

type mongoProject struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Budget      float64            `bson:"budget"`
	Category    string             `bson:"category"`
	OwnerID     string             `bson:"owner_id"`
	InterestIDs []string           `bson:"interest_ids,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
}

func (mp mongoProject) toDomain() *domain.Project {
	return &domain.Project{
		ID:          mp.ID.Hex(),
		Title:       mp.Title,
		Description: mp.Description,
		Budget:      mp.Budget,
		Category:    mp.Category,
		OwnerID:     mp.OwnerID,
		InterestIDs: mp.InterestIDs,
		CreatedAt:   unixToTime(mp.CreatedAt),
	}
}

func (r *MongoProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	doc := mongoProject{
		Title:       project.Title,
		Description: project.Description,
		Budget:      project.Budget,
		Category:    project.Category,
		OwnerID:     project.OwnerID,
		InterestIDs: project.InterestIDs,
		CreatedAt:   project.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *project
	created.ID = id.Hex()
	return &created, nil
}

func (r *MongoProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var mp mongoProject
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoProjectRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	return r.findMany(ctx, bson.M{"owner_id": ownerID})
}

func (r *MongoProjectRepository) FindByInterests(ctx context.Context, interestIDs []string) ([]domain.Project, error) {
	return r.findMany(ctx, bson.M{"interest_ids": bson.M{"$in": interestIDs}})
}

func (r *MongoProjectRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Project, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []domain.Project
	for cursor.Next(ctx) {
		var mp mongoProject
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, *mp.toDomain())
	}
	return projects, cursor.Err()
}

func (r *MongoProjectRepository) Update(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(project.ID)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"title":        project.Title,
		"description":  project.Description,
		"budget":       project.Budget,
		"category":     project.Category,
		"interest_ids": project.InterestIDs,
	}})
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProjectNotFound
	}
	return project, nil
}

func (r *MongoProjectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
