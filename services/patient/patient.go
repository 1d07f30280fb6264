package patient

import (
	"errors"
	"fmt"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/enums"
	"nutritrack-go-worker/models"
	"nutritrack-go-worker/services/activityLog"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/structs"
	"os"
	"sort"
	"strconv"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	gormbulk "github.com/t-tiger/gorm-bulk-insert/v2"
)

// 65 columns per row keeps a chunk under the sqlite variable limit
const bulkChunkSize = 100

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrNoPatients      = errors.New("no patients parsed from csv")
)

type PatientService struct{}

// InitializeIfNeeded imports csvPath only when the patient table is empty.
// The outcome, success or not, is recorded in activity_log.
func (p *PatientService) InitializeIfNeeded(csvPath string) (structs.StatisticModel, error) {
	logger := trackLog.WithFields(logrus.Fields{"task": "patient-import", "csv": csvPath})

	count, err := p.Count()
	if err != nil {
		return structs.StatisticModel{}, fmt.Errorf("count patients: %w", err)
	}
	if count > 0 {
		logger.Infof("database already contains %d patients, skipping csv import", count)
		return structs.StatisticModel{TotalPatient: count}, nil
	}

	stats, err := p.importFile(csvPath)
	p.insertActivityLog(stats, err)
	if err != nil {
		logger.Error("patient import failed: ", err.Error())
		return stats, err
	}
	logger.Infof("imported %d patients", stats.ImportedRows)
	return stats, nil
}

func (p *PatientService) importFile(csvPath string) (structs.StatisticModel, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return structs.StatisticModel{}, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	patients, stats := ParsePatientsCSV(file)
	if len(patients) == 0 {
		return stats, ErrNoPatients
	}
	if err := p.InsertAll(patients); err != nil {
		return stats, err
	}
	stats.TotalPatient = len(patients)
	return stats, nil
}

// InsertAll bulk inserts patients in one transaction.
func (p *PatientService) InsertAll(patients []models.Patient) error {
	records := make([]interface{}, 0, len(patients))
	for i := range patients {
		records = append(records, &patients[i])
	}

	tx := database.DB.Begin()
	if err := gormbulk.BulkInsert(tx, records, bulkChunkSize); err != nil {
		tx.Rollback()
		return fmt.Errorf("bulk insert patients: %w", err)
	}
	return tx.Commit().Error
}

func (p *PatientService) insertActivityLog(stats structs.StatisticModel, importErr error) {
	logModel := structs.ActivityLogJsonModel{
		Type:      enums.ProcessAll,
		Result:    importErr == nil,
		Statistic: stats,
		Message:   "ok",
	}
	if importErr != nil {
		logModel.Message = importErr.Error()
		logModel.Messages = append(logModel.Messages, structs.ErrorModel{ErrorMessage: importErr.Error()})
	}
	if err := activityLog.Insert(enums.JobImport, "patients", "", logModel); err != nil {
		trackLog.Error("insert activity log: "+err.Error(), true)
	}
}

func (p *PatientService) GetPatient(userID string) (*models.Patient, error) {
	var entity models.Patient
	if err := database.DB.Where("user_id = ?", userID).First(&entity).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// UserIDs lists every user id, numeric ids in numeric order first.
func (p *PatientService) UserIDs() ([]string, error) {
	var ids []string
	if err := database.DB.Model(&models.Patient{}).Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	sort.SliceStable(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		}
		return ids[i] < ids[j]
	})
	return ids, nil
}

func (p *PatientService) Count() (int, error) {
	count := 0
	err := database.DB.Model(&models.Patient{}).Count(&count).Error
	return count, err
}

func (p *PatientService) All() ([]models.Patient, error) {
	var entities []models.Patient
	err := database.DB.Order("user_id").Find(&entities).Error
	return entities, err
}

func (p *PatientService) Update(entity *models.Patient) error {
	return database.DB.Save(entity).Error
}

// MarkQuestionnaireCompleted sets the completion flag once; later calls are no-ops.
func (p *PatientService) MarkQuestionnaireCompleted(userID string) (*models.Patient, error) {
	entity, err := p.GetPatient(userID)
	if err != nil {
		return nil, err
	}
	if entity.HasCompletedInitialQuestionnaire {
		return entity, nil
	}
	if err := database.DB.Model(entity).Update("has_completed_initial_questionnaire", true).Error; err != nil {
		return nil, err
	}
	entity.HasCompletedInitialQuestionnaire = true
	return entity, nil
}
