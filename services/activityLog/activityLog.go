package activityLog

import (
	"encoding/json"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/models"
	"time"
)

const description = "nutritrack-golang-worker log"

// Insert writes one row into activity_log. data is stored as JSON.
func Insert(logName, subjectType, subjectID string, data interface{}) error {
	properties, err := json.Marshal(data)
	if err != nil {
		return err
	}

	insertTime := time.Now()
	activityLogEntity := models.ActivityLog{
		CreatedAt:   &insertTime,
		UpdatedAt:   &insertTime,
		LogName:     logName,
		Description: description,
		Properties:  string(properties),
		SubjectType: subjectType,
		SubjectID:   subjectID,
		CauserType:  "worker",
	}

	return database.DB.Create(&activityLogEntity).Error
}

// Latest returns the newest rows for logName, newest first.
func Latest(logName string, limit int) ([]models.ActivityLog, error) {
	var entities []models.ActivityLog
	err := database.DB.Where("log_name = ?", logName).Order("id desc").Limit(limit).Find(&entities).Error
	return entities, err
}
