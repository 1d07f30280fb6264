package fruit

import (
	"errors"
	"net/http"
	"nutritrack-go-worker/controllers/response"
	fruitService "nutritrack-go-worker/services/fruit"

	"github.com/gin-gonic/gin"
)

type FruitController struct {
	Service *fruitService.FruitService
}

func (f *FruitController) Get(c *gin.Context) {
	fruit, err := f.Service.GetFruit(c.Request.Context(), c.Param("name"))
	switch {
	case err == nil:
		response.OK(c, fruit)
	case errors.Is(err, fruitService.ErrEmptyName):
		response.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, fruitService.ErrFruitNotFound):
		response.Fail(c, http.StatusNotFound, err.Error())
	default:
		response.Fail(c, http.StatusBadGateway, err.Error())
	}
}
