package mongodb

import (
	"context"
	"regexp"
	"time"

	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type SubmissionRepository struct {
	collection *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) repositories.SubmissionRepository {
	return &SubmissionRepository{
		collection: db.Collection("submission_log"),
	}
}

func (r *SubmissionRepository) Create(ctx context.Context, record *models.SubmissionRecord) error {
	record.ID = primitive.NewObjectID()
	if record.SubmittedAt.IsZero() {
		record.SubmittedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// FindAll pages through the log newest first, optionally filtered by city.
func (r *SubmissionRepository) FindAll(ctx context.Context, filter models.SubmissionFilter) ([]*models.SubmissionRecord, error) {
	page, limit := pagination(filter.Page, filter.Limit)
	skip := (page - 1) * limit

	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"submitted_at": -1})

	query := bson.M{}
	if filter.City != "" {
		query["city"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(filter.City) + "$", Options: "i"}
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.SubmissionRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []*models.SubmissionRecord{}
	}
	return records, nil
}

func pagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
