package questionnaire

import (
	"errors"
	"net/http"
	"nutritrack-go-worker/controllers/response"
	"nutritrack-go-worker/middlewares"
	"nutritrack-go-worker/services/patient"
	questionnaireService "nutritrack-go-worker/services/questionnaire"
	"nutritrack-go-worker/structs"

	"github.com/gin-gonic/gin"
)

type QuestionnaireController struct {
	service questionnaireService.QuestionnaireService
}

func (q *QuestionnaireController) Save(c *gin.Context) {
	var param structs.QuestionnaireParam
	if err := c.ShouldBindJSON(&param); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	entity, err := q.service.Save(c.GetString(middlewares.PatientIDKey), param)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, entity)
}

func (q *QuestionnaireController) Latest(c *gin.Context) {
	entity, err := q.service.Latest(c.GetString(middlewares.PatientIDKey))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, entity)
}

func (q *QuestionnaireController) FoodIntakes(c *gin.Context) {
	intakes, err := q.service.FoodIntakes(c.GetString(middlewares.PatientIDKey))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, intakes)
}

func fail(c *gin.Context, err error) {
	var validationErr *questionnaireService.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, questionnaireService.ErrQuestionnaireNotFound), errors.Is(err, patient.ErrPatientNotFound):
		response.Fail(c, http.StatusNotFound, err.Error())
	default:
		response.Fail(c, http.StatusInternalServerError, err.Error())
	}
}
