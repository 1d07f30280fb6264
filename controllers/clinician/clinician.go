package clinician

import (
	"errors"
	"net/http"
	"nutritrack-go-worker/controllers/response"
	clinicianService "nutritrack-go-worker/services/clinician"
	"nutritrack-go-worker/services/genai"

	"github.com/gin-gonic/gin"
)

type ClinicianController struct {
	Service *clinicianService.ClinicianService
}

type loginParam struct {
	Key string `json:"key" binding:"required"`
}

func (cc *ClinicianController) Login(c *gin.Context) {
	var param loginParam
	if err := c.ShouldBindJSON(&param); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := cc.Service.Login(param.Key); err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}
	response.OK(c, nil)
}

func (cc *ClinicianController) AverageScores(c *gin.Context) {
	scores, err := cc.Service.AverageScores()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, scores)
}

func (cc *ClinicianController) DataPatterns(c *gin.Context) {
	patterns, err := cc.Service.DataPatterns(c.Request.Context())
	var patternsErr *clinicianService.PatternsError
	switch {
	case err == nil:
		response.OK(c, patterns)
	case errors.Is(err, clinicianService.ErrNoPatients):
		response.Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, genai.ErrGenAIDisabled):
		response.Fail(c, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &patternsErr), errors.Is(err, genai.ErrEmptyResponse):
		response.Fail(c, http.StatusBadGateway, err.Error())
	default:
		response.Fail(c, http.StatusInternalServerError, err.Error())
	}
}
