package questionnaire

import (
	"errors"
	"fmt"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/enums"
	"nutritrack-go-worker/models"
	"nutritrack-go-worker/services/patient"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/structs"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

const defaultQuantity = 1.0

var ErrQuestionnaireNotFound = errors.New("questionnaire not found")

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type QuestionnaireService struct {
	patients patient.PatientService
}

func Validate(param structs.QuestionnaireParam) error {
	if len(param.SelectedFoodCategories) == 0 {
		return &ValidationError{Message: "Please select at least one food category."}
	}
	for _, category := range param.SelectedFoodCategories {
		if !contains(enums.FoodCategories, category) {
			return &ValidationError{Message: fmt.Sprintf("Unknown food category: %s", category)}
		}
	}
	if !contains(enums.Personas, param.Persona) {
		return &ValidationError{Message: "Please select a persona."}
	}
	times := []struct{ label, value string }{
		{"biggest meal time", param.BiggestMealTime},
		{"sleep time", param.SleepTime},
		{"wake up time", param.WakeUpTime},
	}
	for _, t := range times {
		if _, err := time.Parse("15:04", t.value); err != nil {
			return &ValidationError{Message: fmt.Sprintf("Invalid %s, expected HH:mm.", t.label)}
		}
	}
	return nil
}

// Save upserts the patient's questionnaire, records one food intake row per
// selected category and marks the initial questionnaire as completed.
func (q *QuestionnaireService) Save(patientID string, param structs.QuestionnaireParam) (*models.FoodIntakeQuestionnaire, error) {
	if err := Validate(param); err != nil {
		return nil, err
	}
	if _, err := q.patients.GetPatient(patientID); err != nil {
		return nil, err
	}
	logger := trackLog.WithFields(logrus.Fields{"task": "questionnaire", "patient_id": patientID})

	now := time.Now().UnixNano() / int64(time.Millisecond)
	entity := models.FoodIntakeQuestionnaire{
		PatientID:              patientID,
		SelectedFoodCategories: strings.Join(param.SelectedFoodCategories, ","),
		Persona:                param.Persona,
		BiggestMealTime:        param.BiggestMealTime,
		SleepTime:              param.SleepTime,
		WakeUpTime:             param.WakeUpTime,
		Date:                   now,
	}

	tx := database.DB.Begin()
	existing, err := latest(tx, patientID)
	switch {
	case err == nil:
		entity.ID = existing.ID
		err = tx.Model(&models.FoodIntakeQuestionnaire{}).Where("patient_id = ?", patientID).Updates(map[string]interface{}{
			"selected_food_categories": entity.SelectedFoodCategories,
			"persona":                  entity.Persona,
			"biggest_meal_time":        entity.BiggestMealTime,
			"sleep_time":               entity.SleepTime,
			"wake_up_time":             entity.WakeUpTime,
			"date":                     entity.Date,
		}).Error
	case errors.Is(err, ErrQuestionnaireNotFound):
		err = tx.Create(&entity).Error
	}
	if err != nil {
		tx.Rollback()
		logger.Error("save questionnaire: ", err.Error())
		return nil, err
	}

	for _, category := range param.SelectedFoodCategories {
		intake := models.FoodIntake{PatientID: patientID, FoodName: category, Quantity: defaultQuantity, Date: now}
		if err := tx.Create(&intake).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if _, err := q.patients.MarkQuestionnaireCompleted(patientID); err != nil {
		logger.Error("mark questionnaire completed: ", err.Error())
		return nil, err
	}
	logger.Info("questionnaire saved")
	return &entity, nil
}

func (q *QuestionnaireService) Latest(patientID string) (*models.FoodIntakeQuestionnaire, error) {
	return latest(database.DB, patientID)
}

func (q *QuestionnaireService) FoodIntakes(patientID string) ([]models.FoodIntake, error) {
	var entities []models.FoodIntake
	err := database.DB.Where("patient_id = ?", patientID).Order("date desc, id").Find(&entities).Error
	return entities, err
}

func latest(db *gorm.DB, patientID string) (*models.FoodIntakeQuestionnaire, error) {
	var entity models.FoodIntakeQuestionnaire
	if err := db.Where("patient_id = ?", patientID).Order("date desc").First(&entity).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrQuestionnaireNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
