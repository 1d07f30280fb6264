package utils

import (
	"fmt"
	"nutritrack-go-worker/structs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var EnvConfig *structs.EnviromentModel

type EnvService struct{}

func (e *EnvService) InitEnv() {
	e.loadConfig()
	e.configToModel()
}

func (e *EnvService) loadConfig() {
	// .env is optional, it only seeds the process environment
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	e.setDefaults()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {

			// no config.yml, fall back to environment variables
			viper.AutomaticEnv()
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		} else {

			// config.yml exists but could not be read
			panic(fmt.Errorf("Fatal error config file: %s \n", err))
		}
	}
}

func (e *EnvService) setDefaults() {
	viper.SetDefault("database.client", "sqlite3")
	viper.SetDefault("database.name", "nutritrack.db")
	viper.SetDefault("database.max_idle", 5)
	viper.SetDefault("database.max_open_conn", 10)
	viper.SetDefault("database.max_life_time", "5m")
	viper.SetDefault("concurrentAmount", 4)
	viper.SetDefault("router.port", 8080)
	viper.SetDefault("auth.token_ttl_hours", 72)
	viper.SetDefault("auth.clinician_key", "dollar-entry-apples")
	viper.SetDefault("import.patient_csv", "assets/data.csv")
	viper.SetDefault("fruit.base_url", "https://www.fruityvice.com")
	viper.SetDefault("currency.base_url", "https://api.frankfurter.dev")
	viper.SetDefault("tweet.base_url", "http://34.129.121.193:3000")
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
}

func (e *EnvService) configToModel() {
	var config structs.EnviromentModel
	config.Database.Client = viper.GetString("database.client")
	config.Database.Host = viper.GetString("database.host")
	config.Database.User = viper.GetString("database.user")
	config.Database.Password = viper.GetString("database.password")
	config.Database.Db = viper.GetString("database.name")
	config.Database.MaxIdle = uint(viper.GetInt("database.max_idle"))
	config.Database.MaxOpenConn = uint(viper.GetInt("database.max_open_conn"))
	config.Database.MaxLifeTime = viper.GetString("database.max_life_time")
	config.Database.Params = viper.GetString("database.params")
	config.Database.Port = viper.GetString("database.port")
	config.Database.LogEnable = viper.GetInt("database.log_enable")
	config.ConcurrentAmount = viper.GetInt("concurrentAmount")
	config.RabbitMQ.Enable = viper.GetInt("rabbitmq.enable")
	config.RabbitMQ.Domain = viper.GetString("rabbitmq.domain")
	config.Log.ElkEnable = viper.GetInt("log.elk.enable")
	config.Log.ElkIndex = viper.GetString("log.elk.index")
	config.Log.ElkURL = viper.GetString("log.elk.url")
	config.Log.LogstashEnable = viper.GetInt("log.logstash.enable")
	config.Log.LogstashURL = viper.GetString("log.logstash.url")
	config.Log.LogstashIndex = viper.GetString("log.logstash.index")
	config.Email.APIUrl = viper.GetString("email.api_url")
	config.Server.AppAPI = viper.GetString("server.app_api")
	config.Router.Port = viper.GetInt("router.port")
	config.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	config.Auth.TokenTTLHours = viper.GetInt("auth.token_ttl_hours")
	config.Auth.ClinicianKey = viper.GetString("auth.clinician_key")
	config.Import.PatientCSV = viper.GetString("import.patient_csv")
	config.Fruit.BaseURL = viper.GetString("fruit.base_url")
	config.Currency.BaseURL = viper.GetString("currency.base_url")
	config.Tweet.BaseURL = viper.GetString("tweet.base_url")
	config.Gemini.BaseURL = viper.GetString("gemini.base_url")
	config.Gemini.APIKey = viper.GetString("gemini.api_key")
	config.Gemini.Model = viper.GetString("gemini.model")
	EnvConfig = &config
}

// GetConfig returns the loaded config, or an empty one when InitEnv never ran.
func GetConfig() *structs.EnviromentModel {
	if EnvConfig == nil {
		return &structs.EnviromentModel{}
	}
	return EnvConfig
}
