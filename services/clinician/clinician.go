package clinician

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/enums"
	"nutritrack-go-worker/models"
	"nutritrack-go-worker/services/genai"
	"nutritrack-go-worker/services/patient"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/utils"
	"sort"
	"strings"
)

// SummaryLimit caps how many patients go into the patterns prompt.
const SummaryLimit = 30

var (
	ErrInvalidKey = errors.New("Invalid clinician key.")
	ErrNoPatients = errors.New("No patient data available to analyze.")
)

// PatternsError is returned when the model answered without usable patterns.
type PatternsError struct {
	Response string
}

func (e *PatternsError) Error() string {
	return "AI could not identify clear patterns from the data provided. Response: " + e.Response
}

type AverageScores struct {
	Male   float64 `json:"male"`
	Female float64 `json:"female"`
}

type ClinicianService struct {
	Key       string
	Generator genai.Generator
	patients  patient.PatientService
}

func NewClinicianService(generator genai.Generator) *ClinicianService {
	return &ClinicianService{Key: utils.GetConfig().Auth.ClinicianKey, Generator: generator}
}

func (c *ClinicianService) Login(key string) error {
	if c.Key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(c.Key)) != 1 {
		return ErrInvalidKey
	}
	return nil
}

// AverageScores averages the male total over male patients and the female
// total over female patients. NULL scores are ignored by AVG.
func (c *ClinicianService) AverageScores() (AverageScores, error) {
	var scores AverageScores
	male, err := average("heifa_total_score_male", enums.SexMale)
	if err != nil {
		return scores, err
	}
	female, err := average("heifa_total_score_female", enums.SexFemale)
	if err != nil {
		return scores, err
	}
	scores.Male, scores.Female = male, female
	return scores, nil
}

type averageRow struct {
	Average *float64
}

func average(column, sex string) (float64, error) {
	var row averageRow
	err := database.DB.Model(&models.Patient{}).
		Select(fmt.Sprintf("AVG(%s) AS average", column)).
		Where("sex = ?", sex).
		Scan(&row).Error
	if err != nil {
		return 0, err
	}
	if row.Average == nil {
		return 0, nil
	}
	return *row.Average, nil
}

// DataPatterns asks the model for three patterns across the first patients
// in numeric user id order.
func (c *ClinicianService) DataPatterns(ctx context.Context) ([]string, error) {
	patients, err := c.firstPatients(SummaryLimit)
	if err != nil {
		return nil, err
	}
	if len(patients) == 0 {
		return nil, ErrNoPatients
	}

	prompt := "Analyze the following anonymous patient nutritional data summary and identify exactly 3 distinct and interesting patterns or correlations.\n" +
		"Focus on relationships between different HEIFA scores (e.g., fruit score vs vegetable score, water intake vs total score, specific food group scores vs overall score) or differences based on sex.\n" +
		"Provide each pattern as a concise statement. Do not number them or use bullet points. Each statement should be a complete sentence.\n" +
		"Separate the 3 statements with a double newline character ('\\n\\n').\n\n" +
		"Data Summary:\n" + Summary(patients)

	response, err := c.Generator.Generate(ctx, prompt)
	if err != nil {
		trackLog.Error("[clinician] data patterns: "+err.Error(), true)
		return nil, err
	}
	patterns := SplitPatterns(response)
	if len(patterns) == 0 {
		return nil, &PatternsError{Response: response}
	}
	return patterns, nil
}

// SplitPatterns splits on blank lines, drops empty parts and keeps three.
func SplitPatterns(response string) []string {
	patterns := []string{}
	for _, part := range strings.Split(strings.TrimSpace(response), "\n\n") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		patterns = append(patterns, part)
		if len(patterns) == 3 {
			break
		}
	}
	return patterns
}

// Summary renders one line per patient with the scores the prompt refers to.
func (c *ClinicianService) firstPatients(limit int) ([]models.Patient, error) {
	ids, err := c.patients.UserIDs()
	if err != nil || len(ids) == 0 {
		return nil, err
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}
	position := make(map[string]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}

	patients := []models.Patient{}
	if err := database.DB.Where("user_id IN (?)", ids).Find(&patients).Error; err != nil {
		return nil, err
	}
	sort.Slice(patients, func(i, j int) bool {
		return position[patients[i].UserID] < position[patients[j].UserID]
	})
	return patients, nil
}

func Summary(patients []models.Patient) string {
	if len(patients) == 0 {
		return "No patient data."
	}
	var summary strings.Builder
	fmt.Fprintf(&summary, "Patient Data (%d records):\n", len(patients))
	for i, p := range patients {
		fmt.Fprintf(&summary, "P%d: Sex=%s, TotalM=%s, TotalF=%s, FruitM=%s, FruitF=%s, VegM=%s, VegF=%s, WaterM=%s, WaterF=%s\n",
			i+1, p.Sex,
			value(p.HeifaTotalScoreMale), value(p.HeifaTotalScoreFemale),
			value(p.FruitHeifaScoreMale), value(p.FruitHeifaScoreFemale),
			value(p.VegetablesHeifaScoreMale), value(p.VegetablesHeifaScoreFemale),
			value(p.WaterHeifaScoreMale), value(p.WaterHeifaScoreFemale))
	}
	return summary.String()
}

func value(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}
