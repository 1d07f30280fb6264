package currency

import (
	"errors"
	"net/http"
	"nutritrack-go-worker/controllers/response"
	currencyService "nutritrack-go-worker/services/currency"
	"nutritrack-go-worker/structs"

	"github.com/gin-gonic/gin"
)

type CurrencyController struct {
	Service *currencyService.CurrencyService
}

func (cc *CurrencyController) Convert(c *gin.Context) {
	var param structs.ConvertParam
	if err := c.ShouldBindQuery(&param); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	conversion, err := cc.Service.Convert(c.Request.Context(), param)
	switch {
	case err == nil:
		response.OK(c, conversion)
	case errors.Is(err, currencyService.ErrInvalidAmount), errors.Is(err, currencyService.ErrMissingCode):
		response.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, currencyService.ErrRateNotFound):
		response.Fail(c, http.StatusNotFound, err.Error())
	default:
		response.Fail(c, http.StatusBadGateway, err.Error())
	}
}
