package database

import (
	"fmt"
	"nutritrack-go-worker/models"
	"nutritrack-go-worker/utils"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var DB *gorm.DB

// InitDatabasePool opens the configured database into DB and migrates it.
func InitDatabasePool() {
	config := utils.GetConfig().Database

	db, err := Open(config.Client, dsn())
	if err != nil {
		panic(fmt.Errorf("connect database: %s", err))
	}

	if config.MaxIdle > 0 {
		db.DB().SetMaxIdleConns(int(config.MaxIdle))
	}
	if config.MaxOpenConn > 0 && config.Client != "sqlite3" {
		db.DB().SetMaxOpenConns(int(config.MaxOpenConn))
	}
	if lifeTime, err := time.ParseDuration(config.MaxLifeTime); err == nil {
		db.DB().SetConnMaxLifetime(lifeTime)
	}
	db.LogMode(config.LogEnable == 1)

	if err := Migrate(db); err != nil {
		panic(fmt.Errorf("migrate database: %s", err))
	}
	DB = db
}

// Open connects with the given gorm dialect. sqlite is limited to a single
// connection so in-memory databases are shared by every query.
func Open(client, source string) (*gorm.DB, error) {
	db, err := gorm.Open(client, source)
	if err != nil {
		return nil, err
	}
	if client == "sqlite3" {
		db.DB().SetMaxOpenConns(1)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Patient{},
		&models.FoodIntake{},
		&models.FoodIntakeQuestionnaire{},
		&models.NutriCoachTip{},
		&models.Session{},
		&models.ActivityLog{},
		&models.Post{},
		&models.Student{},
		&models.QuizAttempt{},
	).Error
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}

func dsn() string {
	config := utils.GetConfig().Database
	if config.Client == "mysql" {
		source := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", config.User, config.Password, config.Host, config.Port, config.Db)
		if config.Params != "" {
			source += "?" + config.Params
		}
		return source
	}
	return config.Db
}

// OpenMemory replaces DB with a migrated in-memory sqlite database.
func OpenMemory() (*gorm.DB, error) {
	db, err := Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	DB = db
	return db, nil
}
