package job

import (
	"context"
	"nutritrack-go-worker/enums"
	"nutritrack-go-worker/services/activityLog"
	"nutritrack-go-worker/services/nutricoach"
	"nutritrack-go-worker/services/patient"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/structs"
	"nutritrack-go-worker/utils"
	"sync"

	"github.com/sirupsen/logrus"
)

// TipJobService generates NutriCoach tips for one patient or for every
// patient. It collects results for a single run.
type TipJobService struct {
	sync.Mutex
	Coach    *nutricoach.NutriCoachService
	patients patient.PatientService
	errors   []structs.ErrorModel
	ok       int
}

func (t *TipJobService) Start(ctx context.Context, param structs.JobQueueParam) []structs.ErrorModel {
	logModel := structs.ActivityLogJsonModel{Type: param.Type}

	switch param.Type {
	case enums.ProcessAll:
		ids, err := t.patients.UserIDs()
		if err != nil {
			t.handleError("", err)
			break
		}
		logModel.Statistic.TotalPatient = len(ids)

		limit := utils.GetConfig().ConcurrentAmount
		if limit < 1 {
			limit = 1
		}
		concurrentGoroutines := make(chan struct{}, limit)
		var wg sync.WaitGroup
		wg.Add(len(ids))
		for _, id := range ids {
			concurrentGoroutines <- struct{}{}
			go func(id string) {
				defer func() {
					wg.Done()
					<-concurrentGoroutines
				}()
				t.process(ctx, id)
			}(id)
		}
		wg.Wait()
	default:
		logModel.PatientID = param.PatientID
		logModel.Statistic.TotalPatient = 1
		t.process(ctx, param.PatientID)
	}

	logModel.Statistic.ImportedRows = t.ok
	logModel.Result = len(t.errors) == 0
	logModel.Message = "ok"
	if !logModel.Result {
		logModel.Message = t.errors[0].ErrorMessage
		logModel.Messages = t.errors
	}
	if err := activityLog.Insert(enums.JobTip, "patients", param.PatientID, logModel); err != nil {
		trackLog.Error("insert activity log: "+err.Error(), true)
	}
	return t.errors
}

func (t *TipJobService) process(ctx context.Context, patientID string) {
	if _, err := t.Coach.GenerateTip(ctx, patientID); err != nil {
		t.handleError(patientID, err)
		return
	}
	t.Lock()
	t.ok++
	t.Unlock()
}

func (t *TipJobService) handleError(patientID string, err error) {
	t.Lock()
	defer t.Unlock()
	t.errors = append(t.errors, structs.ErrorModel{PatientID: patientID, ErrorMessage: err.Error()})
	trackLog.WithFields(logrus.Fields{"task": "nutricoach-tip", "patient_id": patientID}).Error(err.Error())
}
