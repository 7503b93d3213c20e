package store

import (
	"fmt"

	"github.com/wso2/identity-resolution-service/internal/pipeline/model"
	"github.com/wso2/identity-resolution-service/internal/system/database/client"
	"github.com/wso2/identity-resolution-service/internal/system/database/provider"
	"github.com/wso2/identity-resolution-service/internal/system/database/scripts"
	errors2 "github.com/wso2/identity-resolution-service/internal/system/errors"
	"github.com/wso2/identity-resolution-service/internal/system/log"
)

// AddPipeline inserts a pipeline and its fields.
func AddPipeline(pipeline model.Pipeline) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for adding pipeline: %s", pipeline.Name)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.InsertPipeline[provider.NewDBProvider().GetDBType()]
	_, err = dbClient.ExecuteQuery(query, pipeline.PipelineId, pipeline.OrgHandle, pipeline.Name,
		pipeline.IsActive, pipeline.CreatedAt, pipeline.UpdatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Error occurred while adding pipeline: %s", pipeline.Name)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	fieldQuery := scripts.InsertPipelineField[provider.NewDBProvider().GetDBType()]
	for _, field := range pipeline.Fields {
		_, err = dbClient.ExecuteQuery(fieldQuery, field.FieldId, pipeline.PipelineId, field.Name,
			field.Type, field.DisplayOrder)
		if err != nil {
			errorMsg := fmt.Sprintf("Error occurred while adding field %s to pipeline: %s",
				field.Name, pipeline.Name)
			logger.Debug(errorMsg, log.Error(err))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.EXECUTE_QUERY.Code,
				Message:     errors2.EXECUTE_QUERY.Message,
				Description: errorMsg,
			}, err)
		}
	}

	logger.Info(fmt.Sprintf("Pipeline : %s added successfully", pipeline.Name))
	return nil
}

// GetActivePipelines fetches all active pipelines for an organization,
// including their fields.
func GetActivePipelines(orgHandle string) ([]model.Pipeline, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching pipelines for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetActivePipelinesByOrg[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, orgHandle)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching pipelines for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	var pipelines []model.Pipeline
	for _, row := range results {
		pipeline := scanPipelineRow(row)
		fields, err := getPipelineFields(dbClient, pipeline.PipelineId)
		if err != nil {
			return nil, err
		}
		pipeline.Fields = fields
		pipelines = append(pipelines, pipeline)
	}

	return pipelines, nil
}

// GetPipeline fetches a single pipeline by id.
func GetPipeline(orgHandle, pipelineId string) (*model.Pipeline, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching pipeline: %s", pipelineId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetPipelineById[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, orgHandle, pipelineId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching pipeline: %s", pipelineId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	pipeline := scanPipelineRow(results[0])
	fields, err := getPipelineFields(dbClient, pipeline.PipelineId)
	if err != nil {
		return nil, err
	}
	pipeline.Fields = fields
	return &pipeline, nil
}

// DeletePipeline removes a pipeline and its fields.
func DeletePipeline(orgHandle, pipelineId string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting pipeline: %s", pipelineId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	dbType := provider.NewDBProvider().GetDBType()
	if _, err = dbClient.ExecuteQuery(scripts.DeletePipelineFields[dbType], pipelineId); err != nil {
		errorMsg := fmt.Sprintf("Error occurred while deleting fields of pipeline: %s", pipelineId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}
	if _, err = dbClient.ExecuteQuery(scripts.DeletePipeline[dbType], orgHandle, pipelineId); err != nil {
		errorMsg := fmt.Sprintf("Error occurred while deleting pipeline: %s", pipelineId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("Pipeline : %s deleted successfully", pipelineId))
	return nil
}

func scanPipelineRow(row map[string]interface{}) model.Pipeline {
	var pipeline model.Pipeline
	pipeline.PipelineId = row["pipeline_id"].(string)
	pipeline.OrgHandle = row["tenant_id"].(string)
	pipeline.Name = row["pipeline_name"].(string)
	pipeline.IsActive = row["is_active"].(bool)
	pipeline.CreatedAt = row["created_at"].(int64)
	pipeline.UpdatedAt = row["updated_at"].(int64)
	return pipeline
}

func getPipelineFields(dbClient client.DBClientInterface, pipelineId string) ([]model.Field, error) {

	query := scripts.GetPipelineFields[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, pipelineId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching fields for pipeline: %s", pipelineId)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	var fields []model.Field
	for _, row := range results {
		fields = append(fields, model.Field{
			FieldId:      row["field_id"].(string),
			PipelineId:   row["pipeline_id"].(string),
			Name:         row["field_name"].(string),
			Type:         row["field_type"].(string),
			DisplayOrder: int(row["display_order"].(int64)),
		})
	}
	return fields, nil
}
