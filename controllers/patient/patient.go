package patient

import (
	"errors"
	"net/http"
	"nutritrack-go-worker/controllers/response"
	"nutritrack-go-worker/middlewares"
	"nutritrack-go-worker/services/insights"
	patientService "nutritrack-go-worker/services/patient"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	patients patientService.PatientService
	insights insights.InsightsService
}

func (p *PatientController) Me(c *gin.Context) {
	entity, err := p.patients.GetPatient(c.GetString(middlewares.PatientIDKey))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, entity)
}

func (p *PatientController) Insights(c *gin.Context) {
	report, err := p.insights.Report(c.GetString(middlewares.PatientIDKey))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, report)
}

func fail(c *gin.Context, err error) {
	if errors.Is(err, patientService.ErrPatientNotFound) {
		response.Fail(c, http.StatusNotFound, err.Error())
		return
	}
	response.Fail(c, http.StatusInternalServerError, err.Error())
}
