package store

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/identity-resolution-service/internal/records/model"
	errors2 "github.com/wso2/identity-resolution-service/internal/system/errors"
	"github.com/wso2/identity-resolution-service/internal/system/log"
	"github.com/wso2/identity-resolution-service/internal/system/mongo"
)

const recordsCollection = "records"

const queryTimeout = 5 * time.Second

// RecordRepository handles document store operations for pipeline records.
type RecordRepository struct {
	Collection *mongodriver.Collection
}

// NewRecordRepository initializes a repository over the shared mongo instance.
func NewRecordRepository() (*RecordRepository, error) {
	instance := mongo.GetInstance()
	if instance == nil {
		return nil, errors2.NewServerError(errors2.MONGO_CLIENT_INIT,
			fmt.Errorf("mongo connection is not initialized"))
	}
	return &RecordRepository{
		Collection: instance.Database.Collection(recordsCollection),
	}, nil
}

// InsertRecord inserts a new record.
func (repo *RecordRepository) InsertRecord(ctx context.Context, record model.Record) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return errors2.NewServerError(errors2.ADD_RECORD, err)
	}

	log.GetLogger().Info("Record added successfully: " + record.RecordId)
	return nil
}

// GetRecord retrieves a record by its id. Deleted records are not returned.
func (repo *RecordRepository) GetRecord(ctx context.Context, orgHandle, recordId string) (*model.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"org_handle": orgHandle, "record_id": recordId, "is_deleted": false}
	var record model.Record

	err := repo.Collection.FindOne(ctx, filter).Decode(&record)
	if err == mongodriver.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.GetLogger().Debug("Error occurred while fetching record with record_id: "+recordId, log.Error(err))
		return nil, errors2.NewServerError(errors2.GET_RECORD, err)
	}

	return &record, nil
}

// SearchRecords executes a disjunctive candidate search over non-deleted
// records of a pipeline, capped at limit. An empty clause set returns an
// empty candidate set; that is the normal "nothing to search" outcome, not
// an error.
func (repo *RecordRepository) SearchRecords(ctx context.Context, orgHandle, pipelineId string,
	clauses []model.SearchClause, limit int) ([]model.Record, error) {

	filter := BuildSearchFilter(orgHandle, pipelineId, clauses)
	if filter == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	findOptions := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "record_id", Value: 1}})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		log.GetLogger().Debug("Error occurred while searching candidate records for pipeline: "+pipelineId,
			log.Error(err))
		return nil, errors2.NewServerError(errors2.SEARCH_RECORDS, err)
	}
	defer func(cursor *mongodriver.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			log.GetLogger().Debug("Error occurred while closing cursor.", log.Error(err))
		}
	}(cursor, ctx)

	var records []model.Record
	if err = cursor.All(ctx, &records); err != nil {
		log.GetLogger().Debug("Error occurred while decoding candidate records.", log.Error(err))
		return nil, errors2.NewServerError(errors2.SEARCH_RECORDS, err)
	}
	return records, nil
}

// SoftDeleteRecord marks a record as deleted. Deleted records are never
// candidates for resolution.
func (repo *RecordRepository) SoftDeleteRecord(ctx context.Context, orgHandle, recordId string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"org_handle": orgHandle, "record_id": recordId}
	update := bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now().UTC().Unix()}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return errors2.NewServerError(errors2.DELETE_RECORD, err)
	}
	if result.MatchedCount == 0 {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.RECORD_NOT_FOUND.Code,
			Message:     errors2.RECORD_NOT_FOUND.Message,
			Description: fmt.Sprintf("No record found with id %s", recordId),
		}, http.StatusNotFound)
	}

	log.GetLogger().Info("Record deleted successfully: " + recordId)
	return nil
}
