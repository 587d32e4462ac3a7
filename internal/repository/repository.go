// Package repository provides methods to initialize db and store fetched reports.
package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/katiamach/weathercast/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB collections.
const (
	reportsCollection = "reports"
)

// DefaultListLimit is used when no positive limit is given.
const DefaultListLimit = 20

// DB errors.
var (
	ErrNilReport = errors.New("report is nil")
)

// Repository wraps database and mongo client.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// New creates new repository from mongo database.
func New(ctx context.Context, connString, dbName string) (*Repository, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := NewMongoDBClient(ctxWithTimeout, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	db := client.Database(dbName)

	err = createIndexes(ctxWithTimeout, db)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return &Repository{
		client: client,
		db:     db,
	}, nil
}

// CreateIndexes creates necessary indexes for collections.
func createIndexes(ctx context.Context, db *mongo.Database) error {
	indexModelReports := mongo.IndexModel{
		Keys: bson.D{
			{Key: "report.city", Value: 1},
			{Key: "fetched_at", Value: -1},
		},
	}

	_, err := db.Collection(reportsCollection).Indexes().CreateOne(ctx, indexModelReports)
	if err != nil {
		return fmt.Errorf("failed to create city and fetch time index: %w", err)
	}

	return nil
}

// Close closes mongo db connection.
func (r *Repository) Close() error {
	if err := r.client.Disconnect(context.TODO()); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}

	return nil
}

// InsertReport inserts an archived report into reports collection.
func (r *Repository) InsertReport(ctx context.Context, rec *model.ArchivedReport) error {
	if rec == nil || rec.Report == nil {
		return ErrNilReport
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Collection(reportsCollection).InsertOne(ctxWithTimeout, rec)
	if err != nil {
		return err
	}

	return nil
}

// ListReports gets the latest archived reports, newest first.
// An empty city matches all cities.
func (r *Repository) ListReports(ctx context.Context, city string, limit int) ([]*model.ArchivedReport, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.M{"fetched_at": -1}).
		SetLimit(int64(listLimit(limit)))

	return r.filterReports(ctxWithTimeout, reportsFilter(city), opts)
}

func (r *Repository) filterReports(ctx context.Context, filter primitive.M, opts *options.FindOptions) ([]*model.ArchivedReport, error) {
	reports := make([]*model.ArchivedReport, 0)

	cur, err := r.db.Collection(reportsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		rec := model.ArchivedReport{}
		err := cur.Decode(&rec)
		if err != nil {
			return nil, err
		}

		reports = append(reports, &rec)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// reportsFilter matches city names case-insensitively.
func reportsFilter(city string) primitive.M {
	if city == "" {
		return bson.M{}
	}

	return bson.M{
		"report.city": primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(city) + "$",
			Options: "i",
		},
	}
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
