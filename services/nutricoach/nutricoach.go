package nutricoach

import (
	"context"
	"errors"
	"fmt"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/enums"
	"nutritrack-go-worker/models"
	"nutritrack-go-worker/services/genai"
	"nutritrack-go-worker/services/insights"
	"nutritrack-go-worker/services/patient"
	"nutritrack-go-worker/services/questionnaire"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/structs"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// OptimalFruitScore is the sex specific fruit HEIFA score at which a
// patient no longer needs a fruit nudge.
const OptimalFruitScore = 8.0

const basePrompt = "Generate a short, positive, and encouraging message (around 2-3 sentences) to help someone improve their fruit intake. Make it sound friendly and supportive."

var ErrPublisherUnavailable = errors.New("job queue is not available")

// Publisher is satisfied by *rabbitmq.Connection.
type Publisher interface {
	Publish(queue string, data interface{}) error
}

type NutriCoachService struct {
	Generator     genai.Generator
	Publisher     Publisher
	patients      patient.PatientService
	questionnaire questionnaire.QuestionnaireService
}

func NewNutriCoachService(generator genai.Generator, publisher Publisher) *NutriCoachService {
	return &NutriCoachService{Generator: generator, Publisher: publisher}
}

// FruitScore returns the patient's sex specific fruit score and whether it
// reaches the optimal threshold.
func FruitScore(entity *models.Patient) (float64, bool) {
	score := insights.SexValue(entity.Sex, entity.FruitHeifaScoreMale, entity.FruitHeifaScoreFemale)
	return score, score >= OptimalFruitScore
}

// BuildPrompt enriches the base prompt with the patient's fruit values and
// their latest questionnaire when one exists.
func BuildPrompt(entity *models.Patient, latest *models.FoodIntakeQuestionnaire) string {
	var prompt strings.Builder
	prompt.WriteString(basePrompt)

	score, optimal := FruitScore(entity)
	prompt.WriteString("\n\nPatient context:\n")
	fmt.Fprintf(&prompt, "- Sex: %s\n", entity.Sex)
	fmt.Fprintf(&prompt, "- Fruit HEIFA score: %.2f out of 10\n", score)
	if entity.FruitServeSize != nil {
		fmt.Fprintf(&prompt, "- Fruit serve size: %.2f\n", *entity.FruitServeSize)
	}
	if entity.FruitVariationsScore != nil {
		fmt.Fprintf(&prompt, "- Fruit variations score: %.2f\n", *entity.FruitVariationsScore)
	}
	if optimal {
		prompt.WriteString("- Their fruit intake is already optimal, so encourage them to keep it up.\n")
	}
	if latest != nil {
		if categories := latest.Categories(); len(categories) > 0 {
			fmt.Fprintf(&prompt, "- Foods they eat: %s\n", strings.Join(categories, ", "))
		}
		if latest.Persona != "" {
			fmt.Fprintf(&prompt, "- Persona: %s\n", latest.Persona)
		}
		if latest.BiggestMealTime != "" {
			fmt.Fprintf(&prompt, "- Biggest meal at %s, sleeps at %s, wakes at %s\n",
				latest.BiggestMealTime, latest.SleepTime, latest.WakeUpTime)
		}
	}
	return prompt.String()
}

// GenerateTip asks the model for a fruit tip and stores it for the patient.
func (n *NutriCoachService) GenerateTip(ctx context.Context, patientID string) (*models.NutriCoachTip, error) {
	logger := trackLog.WithFields(logrus.Fields{"task": "nutricoach", "patient_id": patientID})

	entity, err := n.patients.GetPatient(patientID)
	if err != nil {
		return nil, err
	}
	latest, err := n.questionnaire.Latest(patientID)
	if err != nil && !errors.Is(err, questionnaire.ErrQuestionnaireNotFound) {
		return nil, err
	}

	text, err := n.Generator.Generate(ctx, BuildPrompt(entity, latest))
	if err != nil {
		logger.Error("generate tip: ", err.Error())
		return nil, err
	}

	tip := models.NutriCoachTip{
		PatientID: patientID,
		Tip:       strings.TrimSpace(text),
		Timestamp: time.Now().UnixNano() / int64(time.Millisecond),
	}
	if err := database.DB.Create(&tip).Error; err != nil {
		return nil, fmt.Errorf("save tip: %w", err)
	}
	logger.Info("tip saved")
	return &tip, nil
}

// Tips lists a patient's saved tips, newest first.
func (n *NutriCoachService) Tips(patientID string) ([]models.NutriCoachTip, error) {
	tips := []models.NutriCoachTip{}
	err := database.DB.Where("patient_id = ?", patientID).Order("timestamp desc, id desc").Find(&tips).Error
	return tips, err
}

// RequestTip queues tip generation for the worker.
func (n *NutriCoachService) RequestTip(patientID string) error {
	if n.Publisher == nil {
		return ErrPublisherUnavailable
	}
	return n.Publisher.Publish(enums.QueueNutriCoachTip, structs.JobQueueParam{
		Type:      enums.ProcessSingle,
		PatientID: patientID,
		QueueType: enums.QueueNutriCoachTip,
	})
}
