package job

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"nutritrack-go-worker/enums"
	"nutritrack-go-worker/services"
	"nutritrack-go-worker/services/activityLog"
	"nutritrack-go-worker/services/rabbitmq"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/structs"
	"nutritrack-go-worker/utils"
	"strings"
	"sync"

	"github.com/streadway/amqp"
)

// Starter is implemented by every job service.
type Starter interface {
	Start(ctx context.Context, param structs.JobQueueParam) []structs.ErrorModel
}

// Factory builds a fresh Starter for each consumed message.
type Factory func() Starter

// Dispatcher routes consumed messages to the job registered for the queue.
type Dispatcher struct {
	AppAPI string
	Jobs   map[string]Factory

	mu         sync.Mutex
	activeJobs int
}

func NewDispatcher(jobs map[string]Factory) *Dispatcher {
	return &Dispatcher{AppAPI: utils.GetConfig().Server.AppAPI, Jobs: jobs}
}

// Handler consumes deliveries of one queue until the channel closes.
func (d *Dispatcher) Handler(c *rabbitmq.Connection, q string, deliveries <-chan amqp.Delivery) {
	for delivery := range deliveries {
		trackLog.Info(fmt.Sprintf("Queue[%s] received: %s", q, string(delivery.Body)), true)
		if err := d.Handle(context.Background(), q, delivery.Body); err != nil {
			trackLog.Error(fmt.Sprintf("Queue[%s] %s", q, err.Error()), true)
		}
	}
}

// Handle decodes one message and runs its job. A message whose queue_type
// does not match the queue it arrived on is reported and dropped.
func (d *Dispatcher) Handle(ctx context.Context, q string, body []byte) error {
	var param structs.JobQueueParam
	if err := json.Unmarshal(body, &param); err != nil {
		return fmt.Errorf("decode job: %w", err)
	}

	if q != param.QueueType {
		d.notifyMismatchQueue(ctx, param.TaskID, q, param.QueueType)
		return nil
	}

	newJob, ok := d.Jobs[q]
	if !ok {
		return fmt.Errorf("no job registered for queue %s", q)
	}

	d.mu.Lock()
	d.activeJobs++
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.activeJobs--
		d.mu.Unlock()
	}()

	_ = activityLog.Insert(enums.JobReceived, "queue", q, fmt.Sprintf("(%d), queue name: %s, start...", param.TaskID, q))
	errs := newJob().Start(ctx, param)
	if len(errs) != 0 {
		trackLog.Error(fmt.Sprintf("Queue[%s] task %d finished with %d errors", q, param.TaskID, len(errs)), true)
	}
	d.jobDoneNotify(ctx, q, param)
	return nil
}

// ActiveJobs reports how many jobs are running.
func (d *Dispatcher) ActiveJobs() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.activeJobs
}

func (d *Dispatcher) callbackURL(path string) string {
	if d.AppAPI == "" {
		return ""
	}
	return strings.TrimRight(d.AppAPI, "/") + "/api/v1/workerCallback/" + path
}

func (d *Dispatcher) notifyMismatchQueue(ctx context.Context, taskID uint, queue, queueType string) {
	endpoint := d.callbackURL("mismatchQueue")
	trackLog.Info(fmt.Sprintf("[MismatchQueue] task_id: %d, mismatch queue: %s, queue_type: %s, callback url: %s", taskID, queue, queueType, endpoint), true)
	if endpoint == "" {
		return
	}
	body := structs.MismatchQueueResponse{TaskId: taskID, Queue: queue}
	if _, err := services.HttpRequest(ctx, http.MethodPost, endpoint, nil, body); err != nil {
		trackLog.Error(err.Error(), true)
	}
}

func (d *Dispatcher) jobDoneNotify(ctx context.Context, queue string, param structs.JobQueueParam) {
	endpoint := d.callbackURL(queue)
	if endpoint == "" {
		return
	}
	trackLog.Info(fmt.Sprintf("callback url %s task_id %d", endpoint, param.TaskID), false)
	if _, err := services.HttpRequest(ctx, http.MethodPost, endpoint, nil, param); err != nil {
		trackLog.Error(err.Error(), true)
	}
}
