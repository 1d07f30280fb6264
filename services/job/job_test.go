package job

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/enums"
	"nutritrack-go-worker/models"
	"nutritrack-go-worker/services/activityLog"
	"nutritrack-go-worker/services/nutricoach"
	"nutritrack-go-worker/services/post"
	"nutritrack-go-worker/structs"
	"sync"
	"testing"
)

type fakeStarter struct {
	params []structs.JobQueueParam
}

func (f *fakeStarter) Start(ctx context.Context, param structs.JobQueueParam) []structs.ErrorModel {
	f.params = append(f.params, param)
	return nil
}

type fakeGenerator struct{}

func (fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "Eat an apple.", nil
}

type callbackServer struct {
	*httptest.Server
	mu    sync.Mutex
	paths []string
	body  []byte
}

func newCallbackServer() *callbackServer {
	c := &callbackServer{}
	c.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := ioutil.ReadAll(r.Body)
		c.mu.Lock()
		c.paths = append(c.paths, r.URL.Path)
		c.body = body
		c.mu.Unlock()
	}))
	return c
}

func setup(t *testing.T) {
	t.Helper()
	db, err := database.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
}

func message(t *testing.T, param structs.JobQueueParam) []byte {
	t.Helper()
	body, err := json.Marshal(param)
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestHandleMismatchedQueue(t *testing.T) {
	setup(t)
	app := newCallbackServer()
	defer app.Close()
	starter := &fakeStarter{}
	dispatcher := &Dispatcher{AppAPI: app.URL, Jobs: map[string]Factory{enums.QueuePostSync: func() Starter { return starter }}}

	body := message(t, structs.JobQueueParam{TaskID: 9, QueueType: enums.QueueNutriCoachTip})
	if err := dispatcher.Handle(context.Background(), enums.QueuePostSync, body); err != nil {
		t.Fatal(err)
	}
	if len(starter.params) != 0 {
		t.Fatal("mismatched job was started")
	}
	if len(app.paths) != 1 || app.paths[0] != "/api/v1/workerCallback/mismatchQueue" {
		t.Fatalf("callbacks = %v", app.paths)
	}
	var response structs.MismatchQueueResponse
	json.Unmarshal(app.body, &response)
	if response.TaskId != 9 || response.Queue != enums.QueuePostSync {
		t.Fatalf("mismatch body = %s", app.body)
	}
}

func TestHandleDispatchesAndNotifies(t *testing.T) {
	setup(t)
	app := newCallbackServer()
	defer app.Close()
	starter := &fakeStarter{}
	dispatcher := &Dispatcher{AppAPI: app.URL, Jobs: map[string]Factory{enums.QueuePostSync: func() Starter { return starter }}}

	body := message(t, structs.JobQueueParam{TaskID: 4, Type: enums.ProcessAll, QueueType: enums.QueuePostSync})
	if err := dispatcher.Handle(context.Background(), enums.QueuePostSync, body); err != nil {
		t.Fatal(err)
	}
	if len(starter.params) != 1 || starter.params[0].TaskID != 4 {
		t.Fatalf("started = %+v", starter.params)
	}
	if len(app.paths) != 1 || app.paths[0] != "/api/v1/workerCallback/post-sync" {
		t.Fatalf("callbacks = %v", app.paths)
	}
	if dispatcher.ActiveJobs() != 0 {
		t.Fatalf("active jobs = %d", dispatcher.ActiveJobs())
	}
	logs, _ := activityLog.Latest(enums.JobReceived, 1)
	if len(logs) != 1 {
		t.Fatal("received log missing")
	}

	if err := dispatcher.Handle(context.Background(), enums.QueuePostSync, []byte("{")); err == nil {
		t.Fatal("bad json accepted")
	}
	if err := dispatcher.Handle(context.Background(), enums.QueuePatientImport, message(t, structs.JobQueueParam{QueueType: enums.QueuePatientImport})); err == nil {
		t.Fatal("unregistered queue accepted")
	}
}

func TestHandleBuildsJobPerMessage(t *testing.T) {
	setup(t)
	var mu sync.Mutex
	var built []*fakeStarter
	dispatcher := &Dispatcher{Jobs: map[string]Factory{enums.QueuePostSync: func() Starter {
		mu.Lock()
		defer mu.Unlock()
		s := &fakeStarter{}
		built = append(built, s)
		return s
	}}}

	var wg sync.WaitGroup
	for i := uint(1); i <= 2; i++ {
		wg.Add(1)
		go func(taskID uint) {
			defer wg.Done()
			body := message(t, structs.JobQueueParam{TaskID: taskID, QueueType: enums.QueuePostSync})
			if err := dispatcher.Handle(context.Background(), enums.QueuePostSync, body); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	if len(built) != 2 {
		t.Fatalf("jobs built = %d, want 2", len(built))
	}
	for _, s := range built {
		if len(s.params) != 1 {
			t.Fatalf("job ran %d messages", len(s.params))
		}
	}
	if dispatcher.ActiveJobs() != 0 {
		t.Fatalf("active jobs = %d", dispatcher.ActiveJobs())
	}
}

func TestTipJobAll(t *testing.T) {
	setup(t)
	for _, id := range []string{"1", "2", "3"} {
		database.DB.Create(&models.Patient{UserID: id, Sex: "Male"})
	}
	coach := nutricoach.NewNutriCoachService(fakeGenerator{}, nil)
	job := &TipJobService{Coach: coach}

	errs := job.Start(context.Background(), structs.JobQueueParam{Type: enums.ProcessAll, QueueType: enums.QueueNutriCoachTip})
	if len(errs) != 0 {
		t.Fatalf("errors = %+v", errs)
	}
	count := 0
	database.DB.Model(&models.NutriCoachTip{}).Count(&count)
	if count != 3 {
		t.Fatalf("tips = %d", count)
	}

	job = &TipJobService{Coach: coach}
	errs = job.Start(context.Background(), structs.JobQueueParam{Type: enums.ProcessSingle, PatientID: "404"})
	if len(errs) != 1 || errs[0].PatientID != "404" {
		t.Fatalf("errors = %+v", errs)
	}
	logs, _ := activityLog.Latest(enums.JobTip, 2)
	if len(logs) != 2 {
		t.Fatalf("tip logs = %d", len(logs))
	}
}

func TestPostSyncJob(t *testing.T) {
	setup(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"postId":"p1","content":"hi"}]`))
	}))
	defer server.Close()
	job := &PostSyncJobService{Posts: &post.PostService{BaseURL: server.URL}}

	if errs := job.Start(context.Background(), structs.JobQueueParam{Type: enums.ProcessAll}); len(errs) != 0 {
		t.Fatalf("errors = %+v", errs)
	}
	count := 0
	database.DB.Model(&models.Post{}).Count(&count)
	if count != 1 {
		t.Fatalf("posts = %d", count)
	}
}
