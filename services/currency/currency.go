package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"nutritrack-go-worker/services"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/structs"
	"nutritrack-go-worker/utils"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount = errors.New("Please enter a valid amount.")
	ErrMissingCode   = errors.New("Base and target currencies are required.")
	ErrRateNotFound  = errors.New("Exchange rate not available.")
)

type CurrencyService struct {
	BaseURL string
}

func NewCurrencyService() *CurrencyService {
	return &CurrencyService{BaseURL: utils.GetConfig().Currency.BaseURL}
}

// Rate fetches the latest base->symbols rates from frankfurter.
func (c *CurrencyService) Rate(ctx context.Context, base, symbols string) (*structs.CurrencyRate, error) {
	query := url.Values{}
	query.Set("base", base)
	query.Set("symbols", symbols)
	endpoint := strings.TrimRight(c.BaseURL, "/") + "/v1/latest?" + query.Encode()

	body, err := services.HttpRequest(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		trackLog.Error(fmt.Sprintf("[currency] %s->%s: %s", base, symbols, err.Error()), true)
		return nil, fmt.Errorf("fetch rate: %w", err)
	}
	var rate structs.CurrencyRate
	if err := json.Unmarshal(body, &rate); err != nil {
		return nil, fmt.Errorf("decode rate: %w", err)
	}
	return &rate, nil
}

// Convert multiplies amount by the latest base->target rate.
func (c *CurrencyService) Convert(ctx context.Context, param structs.ConvertParam) (*structs.Conversion, error) {
	base := strings.ToUpper(strings.TrimSpace(param.Base))
	target := strings.ToUpper(strings.TrimSpace(param.Target))
	if base == "" || target == "" {
		return nil, ErrMissingCode
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(param.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}

	rate, err := c.Rate(ctx, base, target)
	if err != nil {
		return nil, err
	}
	value, ok := rate.Rates[target]
	if !ok {
		return nil, ErrRateNotFound
	}

	result := amount * value
	return &structs.Conversion{
		Base:      base,
		Target:    target,
		Amount:    amount,
		Rate:      value,
		Result:    services.Round2(result),
		Formatted: fmt.Sprintf("%.2f", result),
	}, nil
}
