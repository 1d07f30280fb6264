package job

import (
	"context"
	"nutritrack-go-worker/services/patient"
	"nutritrack-go-worker/structs"
)

// ImportJobService seeds patients from the csv when the table is empty.
// PatientService records the activity log itself.
type ImportJobService struct {
	CSVPath  string
	patients patient.PatientService
}

func (i *ImportJobService) Start(ctx context.Context, param structs.JobQueueParam) []structs.ErrorModel {
	if _, err := i.patients.InitializeIfNeeded(i.CSVPath); err != nil {
		return []structs.ErrorModel{{ErrorMessage: err.Error()}}
	}
	return nil
}
