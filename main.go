package main

import (
	"context"
	"fmt"
	"net/http"
	"nutritrack-go-worker/controllers/check"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/enums"
	"nutritrack-go-worker/router"
	"nutritrack-go-worker/services"
	"nutritrack-go-worker/services/activityLog"
	"nutritrack-go-worker/services/job"
	"nutritrack-go-worker/services/nutricoach"
	"nutritrack-go-worker/services/patient"
	"nutritrack-go-worker/services/rabbitmq"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/utils"
	"strings"
	"sync"

	logLib "nutritrack-go-worker/services/log"

	"github.com/sirupsen/logrus"
)

func main() {

	var envService utils.EnvService
	envService.InitEnv()
	fmt.Println("config loaded...")

	database.InitDatabasePool()
	defer database.Close()
	trackLog.LogTrackInit()
	_ = activityLog.Insert(enums.JobInit, "worker", "main", "nutritrack-worker init")

	defer func() {
		var logService logLib.LogService
		logwr := logService.LoggerInit("main")
		logwr.WithFields(logrus.Fields{"task": "main", "name": "main"}).Error("worker shutdown")
		crashEmailAlert()

		fmt.Println("worker shutdown")
	}()

	config := utils.GetConfig()

	var patientService patient.PatientService
	if stats, err := patientService.InitializeIfNeeded(config.Import.PatientCSV); err != nil {
		trackLog.Error(fmt.Sprintf("patient import: %s", err.Error()), true)
	} else {
		trackLog.Info(fmt.Sprintf("patients ready: %d", stats.TotalPatient), true)
	}

	queues := []string{enums.QueuePatientImport, enums.QueueNutriCoachTip, enums.QueuePostSync}

	var publisher nutricoach.Publisher
	var conn *rabbitmq.Connection
	if config.RabbitMQ.Enable == 1 {
		conn = rabbitmq.NewConnection(check.ConnectionName, queues)
		if err := conn.Reconnect(); err != nil {
			panic(err)
		}
		publisher = conn
	}

	svc := router.NewServices(publisher)
	route := router.Router(svc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := route.Run(fmt.Sprintf(":%d", config.Router.Port)); err != nil {
			trackLog.Error("router: "+err.Error(), true)
		}
	}()

	if conn != nil {
		dispatcher := job.NewDispatcher(map[string]job.Factory{
			enums.QueuePatientImport: func() job.Starter { return &job.ImportJobService{CSVPath: config.Import.PatientCSV} },
			enums.QueueNutriCoachTip: func() job.Starter { return &job.TipJobService{Coach: svc.NutriCoach} },
			enums.QueuePostSync:      func() job.Starter { return &job.PostSyncJobService{Posts: svc.Post} },
		})
		check.RegisterJobs(dispatcher)
		wg.Add(1)
		go NutriTrackQueue(conn, dispatcher)
	}

	wg.Wait()
}

// NutriTrackQueue consumes every job queue; it returns only if consuming
// cannot start.
func NutriTrackQueue(conn *rabbitmq.Connection, dispatcher *job.Dispatcher) {
	trackLog.Info(fmt.Sprintf(" [ %s ] [ %s ] Waiting for messages. To exit press CTRL+C", check.ConnectionName, strings.Join(conn.Queues, " ")), true)
	if err := conn.HandleConsumedDeliveries(dispatcher.Handler); err != nil {
		panic(err)
	}
}

func crashEmailAlert() {
	api := utils.GetConfig().Email.APIUrl
	if api == "" {
		return
	}
	if _, err := services.HttpRequest(context.Background(), http.MethodPost, api, nil, "nutritrack worker shutdown"); err != nil {
		trackLog.Error("crash email alert: "+err.Error(), false)
	}
}
