package database

import (
	"fmt"
	"log"
	"time"

	"github.com/vaibhavkumar/portfolio-api/config"
	"github.com/vaibhavkumar/portfolio-api/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage is the document-store adapter the handlers talk to. One
// implementation backed by GORM; tests swap in the SQLite variant.
type Storage interface {
	// Settings (singleton)
	GetSettings() (*model.Setting, error)
	UpsertSettings(fields SettingFields) (*model.Setting, error)
	CountSettings() (int64, error)

	// Projects
	ListProjects() ([]model.Project, error)
	CreateProject(p model.Project) (*model.Project, error)
	UpdateProject(id int64, fields ProjectFields) error
	DeleteProject(id int64) error

	// Blogs
	ListBlogs() ([]model.Blog, error)
	CreateBlog(b model.Blog) (*model.Blog, error)
	DeleteBlog(id int64) error

	// Contacts
	ListContacts() ([]model.Contact, error)
	CreateContact(ct model.Contact) (*model.Contact, error)

	Init() error
	Close() error
	HealthCheck() error
	GetDB() interface{}
}

type GORMStore struct {
	db *gorm.DB
}

// StartGORM initializes a GORM connection to PostgreSQL
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	// Build DSN (Data Source Name)
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	// Open GORM connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true,
	})
	if err != nil {
		log.Println("Unable to connect to PostgreSQL with GORM:", err)
		return nil, err
	}

	// Get underlying *sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL Database with GORM.")

	return &GORMStore{db: db}, nil
}

// StartSQLite opens a SQLite-backed store. Used by the test suite and for
// local development without a running Postgres.
func StartSQLite(dsn string) (*GORMStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return &GORMStore{db: db}, nil
}

// Init runs the AutoMigrate to create/update tables
func (s *GORMStore) Init() error {
	err := s.db.AutoMigrate(
		&model.Setting{},
		&model.Project{},
		&model.Blog{},
		&model.Contact{},

		// Audit & logging models
		&model.CronJobLog{},
	)
	if err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Println("Closing GORM database connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM DB instance for use in seeding/cron setup
func (s *GORMStore) GetDB() interface{} {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
