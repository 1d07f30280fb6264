package classroom

import (
	"errors"
	"net/http"
	"nutritrack-go-worker/controllers/response"
	classroomService "nutritrack-go-worker/services/classroom"
	"nutritrack-go-worker/structs"

	"github.com/gin-gonic/gin"
)

type ClassroomController struct {
	Service *classroomService.ClassroomService
}

func (cc *ClassroomController) AddStudent(c *gin.Context) {
	var param structs.StudentParam
	if err := c.ShouldBindJSON(&param); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	student, err := cc.Service.AddStudent(param)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Response{Success: true, Data: student})
}

func (cc *ClassroomController) Login(c *gin.Context) {
	var param structs.StudentLoginParam
	if err := c.ShouldBindJSON(&param); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	student, err := cc.Service.Login(param)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, student)
}

func (cc *ClassroomController) Students(c *gin.Context) {
	students, err := cc.Service.Students()
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, students)
}

func (cc *ClassroomController) Student(c *gin.Context) {
	student, err := cc.Service.Student(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, student)
}

func (cc *ClassroomController) SubmitQuiz(c *gin.Context) {
	var param structs.QuizAnswerParam
	if err := c.ShouldBindJSON(&param); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	attempt, err := cc.Service.SubmitQuiz(c.Param("id"), param)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Response{Success: true, Data: attempt})
}

func (cc *ClassroomController) StudentAttempts(c *gin.Context) {
	attempts, err := cc.Service.StudentAttempts(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, attempts)
}

func (cc *ClassroomController) Attempts(c *gin.Context) {
	attempts, err := cc.Service.Attempts()
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, attempts)
}

func (cc *ClassroomController) Averages(c *gin.Context) {
	averages, err := cc.Service.Averages()
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, averages)
}

func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, classroomService.ErrStudentNotFound):
		response.Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, classroomService.ErrStudentExists):
		response.Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, classroomService.ErrInvalidCredential):
		response.Fail(c, http.StatusUnauthorized, err.Error())
	default:
		response.Fail(c, http.StatusInternalServerError, err.Error())
	}
}
