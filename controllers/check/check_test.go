package check

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/enums"
	"nutritrack-go-worker/services/activityLog"
	"testing"

	"github.com/gin-gonic/gin"
)

type fixedCounter int

func (f fixedCounter) ActiveJobs() int { return int(f) }

func TestCheckAliveReportsJobs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := database.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	RegisterJobs(fixedCounter(2))
	t.Cleanup(func() { RegisterJobs(nil) })

	if err := activityLog.Insert(enums.JobReceived, "queue", enums.QueuePostSync, "start"); err != nil {
		t.Fatal(err)
	}

	route := gin.New()
	route.GET("/check-live", CheckAlive)
	w := httptest.NewRecorder()
	route.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/check-live", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var response AliveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatal(err)
	}
	if response.Info.Database != "ok" || response.Info.ActiveJobs != 2 {
		t.Fatalf("info = %+v", response.Info)
	}
	if response.Info.LastJobAt == nil {
		t.Fatal("last job time missing")
	}
	if response.Messsage != "main thread alive, queue consumer disabled" {
		t.Fatalf("message = %q", response.Messsage)
	}
}
