package fruit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"nutritrack-go-worker/services"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/structs"
	"nutritrack-go-worker/utils"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyName     = errors.New("Fruit name cannot be empty.")
	ErrFruitNotFound = errors.New("Fruit not found or API error.")
	ErrNetwork       = errors.New("Network error: Please check your connection.")
)

type FruitService struct {
	BaseURL string
}

func NewFruitService() *FruitService {
	return &FruitService{BaseURL: utils.GetConfig().Fruit.BaseURL}
}

// GetFruit looks a fruit up on FruityVice by name.
func (f *FruitService) GetFruit(ctx context.Context, name string) (*structs.Fruit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	logger := trackLog.WithFields(logrus.Fields{"task": "fruit", "fruit": name})

	endpoint := strings.TrimRight(f.BaseURL, "/") + "/api/fruit/" + url.PathEscape(name)
	body, err := services.HttpRequest(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		var statusErr *services.StatusError
		if errors.As(err, &statusErr) {
			logger.Infof("fruityvice returned %d", statusErr.Code)
			if statusErr.Code == http.StatusNotFound {
				return nil, ErrFruitNotFound
			}
			return nil, fmt.Errorf("Error: %d - %s", statusErr.Code, http.StatusText(statusErr.Code))
		}
		logger.Error("fruityvice request: ", err.Error())
		return nil, fmt.Errorf("%w (%s)", ErrNetwork, err.Error())
	}

	var fruit structs.Fruit
	if err := json.Unmarshal(body, &fruit); err != nil {
		return nil, fmt.Errorf("decode fruit: %w", err)
	}
	return &fruit, nil
}
