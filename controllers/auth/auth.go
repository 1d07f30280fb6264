package auth

import (
	"errors"
	"net/http"
	"nutritrack-go-worker/controllers/response"
	"nutritrack-go-worker/middlewares"
	authService "nutritrack-go-worker/services/auth"
	"nutritrack-go-worker/services/patient"
	"nutritrack-go-worker/structs"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service  *authService.AuthService
	patients patient.PatientService
}

func (a *AuthController) UserIDs(c *gin.Context) {
	ids, err := a.patients.UserIDs()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, ids)
}

func (a *AuthController) Login(c *gin.Context) {
	var param structs.LoginParam
	if err := c.ShouldBindJSON(&param); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	result, err := a.Service.Login(param.UserID, param.Password)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, result)
}

func (a *AuthController) Claim(c *gin.Context) {
	var param structs.ClaimParam
	if err := c.ShouldBindJSON(&param); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	result, err := a.Service.Claim(param)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, result)
}

func (a *AuthController) Logout(c *gin.Context) {
	if err := a.Service.Logout(c.GetString(middlewares.SessionIDKey)); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, nil)
}

func (a *AuthController) LastRoute(c *gin.Context) {
	route, err := a.Service.LastRoute(c.GetString(middlewares.SessionIDKey))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, structs.RouteParam{Route: route})
}

func (a *AuthController) SaveLastRoute(c *gin.Context) {
	var param structs.RouteParam
	if err := c.ShouldBindJSON(&param); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.Service.SaveLastRoute(c.GetString(middlewares.SessionIDKey), param.Route); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, param)
}

func fail(c *gin.Context, err error) {
	switch {
	case authService.IsValidationError(err):
		response.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, authService.ErrInvalidCredentials),
		errors.Is(err, authService.ErrSessionNotFound),
		errors.Is(err, authService.ErrSessionRevoked):
		response.Fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, authService.ErrClaimMismatch), errors.Is(err, patient.ErrPatientNotFound):
		response.Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, authService.ErrAlreadyClaimed):
		response.Fail(c, http.StatusConflict, err.Error())
	default:
		response.Fail(c, http.StatusInternalServerError, err.Error())
	}
}
