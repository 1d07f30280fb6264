package log

import (
	"fmt"
	"net"
	"nutritrack-go-worker/utils"
	"os"
	"path"
	"time"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"
)

const serviceName = "nutritrack-golang-worker"

type LogService struct{}

// LoggerInit builds a logger writing to logs/<date>/<name>.log, plus the
// ELK and logstash hooks when they are enabled.
func (l *LogService) LoggerInit(name string) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if src, err := openLogFile(name); err != nil {
		fmt.Println(err.Error())
	} else {
		logger.Out = src
	}

	config := utils.GetConfig().Log

	if config.ElkEnable == 1 {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{config.ElkURL},
		})
		if err != nil {
			logger.Debug(err.Error())
		} else {
			hook, err := elogrus.NewAsyncElasticHook(client, serviceName, logrus.DebugLevel, config.ElkIndex)
			if err != nil {
				logger.Debug(err.Error())
			} else {
				logger.Hooks.Add(hook)
			}
		}
	}

	if config.LogstashEnable == 1 {
		conn, err := net.Dial("udp", config.LogstashURL)
		if err != nil {
			logger.Debug(err)
		} else {
			hook := logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": serviceName}))
			logger.Hooks.Add(hook)
		}
	}

	return logger
}

func openLogFile(name string) (*os.File, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	logFilePath := path.Join(dir, "logs", time.Now().Format("2006-01-02"))
	if err := os.MkdirAll(logFilePath, 0777); err != nil {
		return nil, err
	}
	return os.OpenFile(path.Join(logFilePath, name+".log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
}
