package check

import (
	"encoding/json"
	"fmt"
	"net/http"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/enums"
	"nutritrack-go-worker/services/activityLog"
	"nutritrack-go-worker/services/rabbitmq"
	"nutritrack-go-worker/services/trackLog"
	"runtime"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// ConnectionName is the rabbitmq pool entry the worker consumes on.
const ConnectionName = "nutritrack"

type AliveResponse struct {
	Success  bool      `json:"success"`
	Messsage string    `json:"message"`
	Info     CheckInfo `json:"info"`
}

type CheckInfo struct {
	Database   string     `json:"database"`
	Queues     []string   `json:"queue"`
	RoutineNum int        `json:"routine_num"`
	ActiveJobs int        `json:"active_jobs"`
	LastJobAt  *time.Time `json:"last_job_at"`
}

// JobCounter is satisfied by the queue dispatcher.
type JobCounter interface {
	ActiveJobs() int
}

var (
	jobs   JobCounter
	jobsMu sync.Mutex
)

// RegisterJobs makes the running job count part of the liveness report.
func RegisterJobs(counter JobCounter) {
	jobsMu.Lock()
	defer jobsMu.Unlock()
	jobs = counter
}

func jobCounter() JobCounter {
	jobsMu.Lock()
	defer jobsMu.Unlock()
	return jobs
}

func CheckAlive(c *gin.Context) {
	resMsg := "main thread alive"
	checkInfo := CheckInfo{Database: "ok"}

	if database.DB == nil {
		checkInfo.Database = "not initialized"
	} else if err := database.DB.DB().Ping(); err != nil {
		checkInfo.Database = err.Error()
		trackLog.Error("database ping: "+err.Error(), false)
	} else if logs, err := activityLog.Latest(enums.JobReceived, 1); err == nil && len(logs) == 1 {
		checkInfo.LastJobAt = logs[0].CreatedAt
	}
	if counter := jobCounter(); counter != nil {
		checkInfo.ActiveJobs = counter.ActiveJobs()
	}

	rabbitConn := rabbitmq.GetConnection(ConnectionName)
	if rabbitConn != nil {
		if !rabbitConn.Connected() {
			resMsg = "Api detect Connection lost, Reconnecting.."
			trackLog.Error(resMsg, false)
			if err := rabbitConn.Reconnect(); err != nil {
				resMsg = fmt.Sprintf("reconnect rabbit fail: %s", err.Error())
				trackLog.Error(resMsg, false)
			}
		}
		for _, q := range rabbitConn.Queues {
			queue, queueErr := rabbitConn.Inspect(q)
			if queueErr != nil {
				resMsg = fmt.Sprintf("Queue[%s] error: %s", q, queueErr.Error())
				trackLog.Error(resMsg, false)
			} else {
				queueJson, _ := json.Marshal(queue)
				checkInfo.Queues = append(checkInfo.Queues, string(queueJson))
				trackLog.Info(fmt.Sprintf("Queue[%s]: %s", q, queueJson), false)
			}
		}
		// give a pending close notification a second to arrive
		select {
		case err := <-rabbitConn.ApiErr:
			trackLog.Error(fmt.Sprintf("api error: %s", err.Error()), false)
			if err := rabbitConn.Reconnect(); err != nil {
				resMsg = fmt.Sprintf("reconnect rabbit fail: %s", err.Error())
				trackLog.Error(resMsg, false)
			}
		case <-time.After(time.Second * 1):
		}
	} else {
		resMsg = "main thread alive, queue consumer disabled"
	}

	checkInfo.RoutineNum = runtime.NumGoroutine()
	trackLog.Info(fmt.Sprintf("goroutine number: %d", checkInfo.RoutineNum), false)

	c.JSON(http.StatusOK, AliveResponse{true, resMsg, checkInfo})
}
