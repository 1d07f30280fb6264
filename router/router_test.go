package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/models"
	"nutritrack-go-worker/services/auth"
	"nutritrack-go-worker/services/classroom"
	"nutritrack-go-worker/services/clinician"
	"nutritrack-go-worker/services/currency"
	"nutritrack-go-worker/services/fruit"
	"nutritrack-go-worker/services/nutricoach"
	"nutritrack-go-worker/services/post"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type fakeGenerator struct{}

func (fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "Keep going with fruit.", nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := database.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	male := 7.5
	if err := database.DB.Create(&models.Patient{UserID: "1", PhoneNumber: "61436567890", Sex: "Male", FruitHeifaScoreMale: &male}).Error; err != nil {
		t.Fatal(err)
	}

	generator := fakeGenerator{}
	return Router(Services{
		Auth:       &auth.AuthService{Secret: []byte("secret"), TTL: time.Hour},
		Fruit:      &fruit.FruitService{BaseURL: "http://127.0.0.1:1"},
		Generator:  generator,
		NutriCoach: nutricoach.NewNutriCoachService(generator, nil),
		Clinician:  &clinician.ClinicianService{Key: "dollar-entry-apples", Generator: generator},
		Currency:   &currency.CurrencyService{BaseURL: "http://127.0.0.1:1"},
		Post:       &post.PostService{Reachable: func(context.Context) bool { return false }, Now: time.Now},
		Classroom:  classroom.NewClassroomService(),
	})
}

func do(t *testing.T, route *gin.Engine, method, path string, body interface{}, header map[string]string) (int, envelope) {
	t.Helper()
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for key, value := range header {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	route.ServeHTTP(rec, req)

	var out envelope
	json.Unmarshal(rec.Body.Bytes(), &out)
	return rec.Code, out
}

func TestProbe(t *testing.T) {
	route := setup(t)
	if code, _ := do(t, route, http.MethodGet, "/read-probe", nil, nil); code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
}

func TestPatientFlow(t *testing.T) {
	route := setup(t)

	if code, _ := do(t, route, http.MethodGet, "/api/v1/patients/me", nil, nil); code != http.StatusUnauthorized {
		t.Fatalf("anonymous code = %d", code)
	}

	code, res := do(t, route, http.MethodPost, "/api/v1/auth/login", map[string]string{"user_id": "1", "password": "Secret1!"}, nil)
	if code != http.StatusUnauthorized || res.Success {
		t.Fatalf("unclaimed login = %d %+v", code, res)
	}

	claim := map[string]string{
		"user_id":          "1",
		"phone_number":     "61436567890",
		"name":             "jane",
		"password":         "Secret1!",
		"confirm_password": "Secret1!",
	}
	if code, _ := do(t, route, http.MethodPost, "/api/v1/auth/claim", claim, nil); code != http.StatusBadRequest {
		t.Fatalf("invalid name code = %d", code)
	}
	claim["name"] = "Jane"
	code, res = do(t, route, http.MethodPost, "/api/v1/auth/claim", claim, nil)
	if code != http.StatusOK {
		t.Fatalf("claim = %d %+v", code, res)
	}
	var result struct {
		Token string `json:"token"`
	}
	json.Unmarshal(res.Data, &result)
	bearer := map[string]string{"Authorization": "Bearer " + result.Token}

	if code, _ := do(t, route, http.MethodGet, "/api/v1/patients/me", nil, bearer); code != http.StatusOK {
		t.Fatalf("me code = %d", code)
	}
	if code, _ := do(t, route, http.MethodGet, "/api/v1/insights", nil, bearer); code != http.StatusOK {
		t.Fatalf("insights code = %d", code)
	}

	code, res = do(t, route, http.MethodGet, "/api/v1/nutricoach/fruit-score", nil, bearer)
	var score struct {
		Score   float64 `json:"score"`
		Optimal bool    `json:"optimal"`
	}
	json.Unmarshal(res.Data, &score)
	if code != http.StatusOK || score.Score != 7.5 || score.Optimal {
		t.Fatalf("fruit score = %d %+v", code, score)
	}
	if code, _ := do(t, route, http.MethodPost, "/api/v1/nutricoach/tips", nil, bearer); code != http.StatusOK {
		t.Fatalf("tip code = %d", code)
	}
	if code, _ := do(t, route, http.MethodPost, "/api/v1/nutricoach/tips/async", nil, bearer); code != http.StatusServiceUnavailable {
		t.Fatalf("async tip without queue = %d", code)
	}

	questionnaire := map[string]interface{}{
		"selected_food_categories": []string{"Fruits"},
		"persona":                  "Balance Seeker",
		"biggest_meal_time":        "12:00",
		"sleep_time":               "22:00",
		"wake_up_time":             "07:00",
	}
	if code, _ := do(t, route, http.MethodPost, "/api/v1/questionnaire", questionnaire, bearer); code != http.StatusOK {
		t.Fatalf("questionnaire code = %d", code)
	}

	if code, _ := do(t, route, http.MethodPut, "/api/v1/auth/route", map[string]string{"route": "settings"}, bearer); code != http.StatusOK {
		t.Fatalf("route code = %d", code)
	}
	if code, _ := do(t, route, http.MethodPost, "/api/v1/auth/logout", nil, bearer); code != http.StatusOK {
		t.Fatalf("logout code = %d", code)
	}
	if code, _ := do(t, route, http.MethodGet, "/api/v1/patients/me", nil, bearer); code != http.StatusUnauthorized {
		t.Fatalf("after logout code = %d", code)
	}
}

func TestClinicianRoutes(t *testing.T) {
	route := setup(t)

	if code, _ := do(t, route, http.MethodGet, "/api/v1/clinician/averages", nil, nil); code != http.StatusUnauthorized {
		t.Fatalf("missing key code = %d", code)
	}
	if code, _ := do(t, route, http.MethodPost, "/api/v1/clinician/login", map[string]string{"key": "nope"}, nil); code != http.StatusUnauthorized {
		t.Fatalf("bad login code = %d", code)
	}
	key := map[string]string{"X-Clinician-Key": "dollar-entry-apples"}
	if code, _ := do(t, route, http.MethodGet, "/api/v1/clinician/averages", nil, key); code != http.StatusOK {
		t.Fatalf("averages code = %d", code)
	}
	code, res := do(t, route, http.MethodGet, "/api/v1/clinician/patterns", nil, key)
	if code != http.StatusOK {
		t.Fatalf("patterns = %d %+v", code, res)
	}
}

func TestPublicRoutes(t *testing.T) {
	route := setup(t)

	for _, amount := range []string{"abc", "NaN", "Inf"} {
		if code, _ := do(t, route, http.MethodGet, "/api/v1/currency/convert?base=AUD&target=USD&amount="+amount, nil, nil); code != http.StatusBadRequest {
			t.Fatalf("currency amount %s code = %d", amount, code)
		}
	}
	if code, _ := do(t, route, http.MethodPost, "/api/v1/posts", nil, nil); code != http.StatusOK {
		t.Fatalf("offline post code = %d", code)
	}
	if code, _ := do(t, route, http.MethodPost, "/api/v1/classroom/students", map[string]string{"student_id": "s1", "student_name": "Ann", "student_password": "pw"}, nil); code != http.StatusCreated {
		t.Fatalf("add student code = %d", code)
	}
	if code, _ := do(t, route, http.MethodPost, "/api/v1/classroom/students/s1/quiz", map[string]bool{"q1": true}, nil); code != http.StatusCreated {
		t.Fatalf("quiz code = %d", code)
	}
	if code, _ := do(t, route, http.MethodGet, "/api/v1/classroom/students/s9", nil, nil); code != http.StatusNotFound {
		t.Fatalf("unknown student code = %d", code)
	}
	if code, _ := do(t, route, http.MethodPost, "/api/v1/genai/prompt", map[string]string{"prompt": "hi"}, nil); code != http.StatusOK {
		t.Fatalf("prompt code = %d", code)
	}
}
