package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"nutritrack-go-worker/services"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/utils"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrGenAIDisabled = errors.New("GenAI features disabled due to missing API key.")
	ErrEmptyResponse = errors.New("Received no text from AI.")
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls generateContent on the Gemini REST API.
type GeminiClient struct {
	BaseURL string
	APIKey  string
	Model   string
}

func NewGeminiClient() *GeminiClient {
	config := utils.GetConfig().Gemini
	model := config.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiClient{BaseURL: config.BaseURL, APIKey: config.APIKey, Model: model}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(g.APIKey) == "" {
		return "", ErrGenAIDisabled
	}
	logger := trackLog.WithFields(logrus.Fields{"task": "genai", "model": g.Model, "prompt_length": len(prompt)})

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(g.BaseURL, "/"), url.PathEscape(g.Model), url.QueryEscape(g.APIKey))
	request := generateRequest{Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}}}

	body, err := services.HttpRequest(ctx, http.MethodPost, endpoint, nil, request)
	if err != nil {
		logger.Error("generate content: ", err.Error())
		return "", fmt.Errorf("generate content: %w", err)
	}

	var response generateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}

	var text strings.Builder
	for _, candidate := range response.Candidates {
		for _, p := range candidate.Content.Parts {
			text.WriteString(p.Text)
		}
		if text.Len() > 0 {
			break
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", ErrEmptyResponse
	}
	return text.String(), nil
}
