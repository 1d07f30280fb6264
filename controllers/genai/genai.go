package genai

import (
	"errors"
	"net/http"
	"nutritrack-go-worker/controllers/response"
	genaiService "nutritrack-go-worker/services/genai"
	"nutritrack-go-worker/structs"

	"github.com/gin-gonic/gin"
)

type GenAIController struct {
	Generator genaiService.Generator
}

type promptResponse struct {
	Text string `json:"text"`
}

// Prompt sends a free form prompt to the model.
func (g *GenAIController) Prompt(c *gin.Context) {
	var param structs.PromptParam
	if err := c.ShouldBindJSON(&param); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	text, err := g.Generator.Generate(c.Request.Context(), param.Prompt)
	switch {
	case err == nil:
		response.OK(c, promptResponse{Text: text})
	case errors.Is(err, genaiService.ErrGenAIDisabled):
		response.Fail(c, http.StatusServiceUnavailable, err.Error())
	default:
		response.Fail(c, http.StatusBadGateway, err.Error())
	}
}
