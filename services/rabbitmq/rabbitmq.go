package rabbitmq

import (
	"encoding/json"
	"errors"
	"fmt"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/utils"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

//Connection is the connection created
type Connection struct {
	name    string
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Queues  []string
	Err     chan error
	ApiErr  chan error
	mu      sync.Mutex
}

var (
	connectionPool = make(map[string]*Connection)
	poolMutex      sync.Mutex
)

//NewConnection returns the new connection object
func NewConnection(name string, queues []string) *Connection {
	poolMutex.Lock()
	defer poolMutex.Unlock()
	if c, ok := connectionPool[name]; ok {
		return c
	}
	c := &Connection{
		name:   name,
		Queues: queues,
		Err:    make(chan error, 1),
		ApiErr: make(chan error, 1),
	}
	connectionPool[name] = c
	return c
}

//GetConnection returns the connection which was instantiated
func GetConnection(name string) *Connection {
	poolMutex.Lock()
	defer poolMutex.Unlock()
	return connectionPool[name]
}

// retryDelay is the pause between failed reconnect attempts.
var retryDelay = 60 * time.Second

// connect and bindQueue expect c.mu to be held.
func (c *Connection) connect() error {
	var err error
	domain := utils.GetConfig().RabbitMQ.Domain
	c.Conn, err = amqp.Dial(domain)
	if err != nil {
		return fmt.Errorf("Error in creating rabbitmq connection with %s : %s", domain, err.Error())
	}
	closed := c.Conn.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		<-closed
		notify(c.Err, errors.New("Connection Closed"))
		notify(c.ApiErr, errors.New("Api detect Connection Closed"))
	}()
	c.Channel, err = c.Conn.Channel()
	if err != nil {
		return fmt.Errorf("Channel: %s", err)
	}
	return nil
}

func notify(ch chan error, err error) {
	select {
	case ch <- err:
	default:
	}
}

func (c *Connection) bindQueue() error {
	for _, q := range c.Queues {
		if _, err := c.Channel.QueueDeclare(q, true, false, false, false, nil); err != nil {
			return fmt.Errorf("error in declaring the queue %s", err)
		}
	}
	return nil
}

// Reconnect reconnects the connection. An open connection is kept as is, so
// the consumer loop and the health check may both call it.
func (c *Connection) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Conn != nil && !c.Conn.IsClosed() {
		return nil
	}
	if err := c.connect(); err != nil {
		return err
	}
	return c.bindQueue()
}

// Connected reports whether the broker connection is open.
func (c *Connection) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn != nil && !c.Conn.IsClosed()
}

// Inspect reports the state of queue q.
func (c *Connection) Inspect(q string) (amqp.Queue, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Channel == nil {
		return amqp.Queue{}, errors.New("rabbitmq channel is not open")
	}
	return c.Channel.QueueInspect(q)
}

func (c *Connection) Consume() (map[string]<-chan amqp.Delivery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Channel == nil {
		return nil, errors.New("rabbitmq channel is not open")
	}
	m := make(map[string]<-chan amqp.Delivery)
	for _, q := range c.Queues {
		deliveries, err := c.Channel.Consume(q, "", true, false, false, false, nil)
		if err != nil {
			return nil, err
		}
		m[q] = deliveries
	}
	return m, nil
}

// Publish sends data as a persistent JSON message to queue.
func (c *Connection) Publish(queue string, data interface{}) error {
	body, err := json.Marshal(data)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Channel == nil {
		return errors.New("rabbitmq channel is not open")
	}
	return c.Channel.Publish("", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

// HandleConsumedDeliveries runs fn for every queue and blocks. After the
// connection closes it reconnects once and restarts fn on fresh delivery
// channels for all queues. It returns only if consuming cannot start.
func (c *Connection) HandleConsumedDeliveries(fn func(*Connection, string, <-chan amqp.Delivery)) error {
	deliveries, err := c.Consume()
	if err != nil {
		return err
	}
	superviseDeliveries(c.Err, deliveries, func() (map[string]<-chan amqp.Delivery, error) {
		if err := c.Reconnect(); err != nil {
			return nil, err
		}
		return c.Consume()
	}, func(q string, d <-chan amqp.Delivery) {
		fn(c, q, d)
	})
	return nil
}

// superviseDeliveries returns when errs is closed.
func superviseDeliveries(errs <-chan error, deliveries map[string]<-chan amqp.Delivery,
	resubscribe func() (map[string]<-chan amqp.Delivery, error), handle func(string, <-chan amqp.Delivery)) {
	for {
		for q, d := range deliveries {
			trackLog.Info(fmt.Sprintf("[HandleConsumedDeliveries] Queue[%s] consuming", q), true)
			go handle(q, d)
		}
		err, ok := <-errs
		if !ok {
			return
		}
		trackLog.Error(fmt.Sprintf("[HandleConsumedDeliveries] %s, reconnecting", err.Error()), true)
		for {
			var resubErr error
			if deliveries, resubErr = resubscribe(); resubErr == nil {
				break
			}
			trackLog.Error("reconnect: "+resubErr.Error(), true)
			time.Sleep(retryDelay)
		}
		trackLog.Info("try ok", false)
	}
}
