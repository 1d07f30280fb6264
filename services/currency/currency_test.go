package currency

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"nutritrack-go-worker/structs"
	"testing"
)

func TestConvert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/latest" || r.URL.Query().Get("base") != "AUD" || r.URL.Query().Get("symbols") != "USD" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"amount":1.0,"base":"AUD","date":"2025-05-01","rates":{"USD":0.6412}}`))
	}))
	defer server.Close()
	service := &CurrencyService{BaseURL: server.URL}

	result, err := service.Convert(context.Background(), structs.ConvertParam{Base: "aud", Target: "usd", Amount: "10"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Formatted != "6.41" || result.Result != 6.41 || result.Rate != 0.6412 {
		t.Fatalf("result = %+v", result)
	}

	for _, amount := range []string{"ten", "", "NaN", "Inf", "-Inf", "Infinity", "1e400"} {
		if _, err := service.Convert(context.Background(), structs.ConvertParam{Base: "AUD", Target: "USD", Amount: amount}); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %q err = %v", amount, err)
		}
	}
	if _, err := service.Convert(context.Background(), structs.ConvertParam{Base: "", Target: "USD", Amount: "1"}); !errors.Is(err, ErrMissingCode) {
		t.Fatalf("code err = %v", err)
	}
}

func TestConvertMissingRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"amount":1.0,"base":"AUD","rates":{}}`))
	}))
	defer server.Close()
	service := &CurrencyService{BaseURL: server.URL}

	if _, err := service.Convert(context.Background(), structs.ConvertParam{Base: "AUD", Target: "EUR", Amount: "1"}); !errors.Is(err, ErrRateNotFound) {
		t.Fatalf("err = %v", err)
	}
}
