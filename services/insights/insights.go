package insights

import (
	"fmt"
	"nutritrack-go-worker/models"
	"nutritrack-go-worker/services"
	"nutritrack-go-worker/services/patient"
	"nutritrack-go-worker/structs"
)

type InsightsService struct {
	patients patient.PatientService
}

func (i *InsightsService) Report(patientID string) (*structs.InsightsReport, error) {
	entity, err := i.patients.GetPatient(patientID)
	if err != nil {
		return nil, err
	}
	report := Build(entity)
	return &report, nil
}

// Build computes the capped and rescaled category scores of one patient.
func Build(entity *models.Patient) structs.InsightsReport {
	scores := make([]float64, len(Categories))
	ceilings := make([]float64, len(Categories))
	for i, c := range Categories {
		scores[i] = SexValue(entity.Sex, c.Male(entity), c.Female(entity))
		ceilings[i] = c.Max
	}
	adjusted := Rescale(scores, ceilings)

	report := structs.InsightsReport{
		PatientID:     entity.UserID,
		Sex:           entity.Sex,
		RecordedTotal: services.Round2(RecordedTotal(entity)),
	}
	for i, c := range Categories {
		report.Categories = append(report.Categories, structs.CategoryScore{
			Category: c.Name,
			Score:    services.Round2(adjusted[i]),
			Max:      c.Max,
		})
	}
	report.TotalScore = services.Round2(Sum(adjusted))
	report.ShareText = fmt.Sprintf("Hi, my total food quality score is %.2f/100", report.RecordedTotal)
	return report
}

// RecordedTotal is the HEIFA total stored in the CSV for the patient's sex.
func RecordedTotal(entity *models.Patient) float64 {
	return SexValue(entity.Sex, entity.HeifaTotalScoreMale, entity.HeifaTotalScoreFemale)
}
