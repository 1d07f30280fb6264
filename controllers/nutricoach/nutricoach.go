package nutricoach

import (
	"errors"
	"net/http"
	"nutritrack-go-worker/controllers/response"
	"nutritrack-go-worker/middlewares"
	"nutritrack-go-worker/services/genai"
	nutricoachService "nutritrack-go-worker/services/nutricoach"
	"nutritrack-go-worker/services/patient"

	"github.com/gin-gonic/gin"
)

type NutriCoachController struct {
	Service  *nutricoachService.NutriCoachService
	patients patient.PatientService
}

type fruitScoreResponse struct {
	Score   float64 `json:"score"`
	Optimal bool    `json:"optimal"`
}

func (n *NutriCoachController) FruitScore(c *gin.Context) {
	entity, err := n.patients.GetPatient(c.GetString(middlewares.PatientIDKey))
	if err != nil {
		fail(c, err)
		return
	}
	score, optimal := nutricoachService.FruitScore(entity)
	response.OK(c, fruitScoreResponse{Score: score, Optimal: optimal})
}

func (n *NutriCoachController) GenerateTip(c *gin.Context) {
	tip, err := n.Service.GenerateTip(c.Request.Context(), c.GetString(middlewares.PatientIDKey))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, tip)
}

func (n *NutriCoachController) RequestTip(c *gin.Context) {
	if err := n.Service.RequestTip(c.GetString(middlewares.PatientIDKey)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusAccepted, response.Response{Success: true, Messsage: "queued"})
}

func (n *NutriCoachController) Tips(c *gin.Context) {
	tips, err := n.Service.Tips(c.GetString(middlewares.PatientIDKey))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, tips)
}

func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		response.Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, genai.ErrGenAIDisabled), errors.Is(err, nutricoachService.ErrPublisherUnavailable):
		response.Fail(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, genai.ErrEmptyResponse):
		response.Fail(c, http.StatusBadGateway, err.Error())
	default:
		response.Fail(c, http.StatusInternalServerError, err.Error())
	}
}
