package config

import (
	"fmt"
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jpvaldivia/norteexpreso/internal/models"
)

type Config struct {
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"norteexpreso"`

	JWTSecret     string        `envconfig:"JWT_SECRET" required:"true"`
	TokenValidity time.Duration `envconfig:"TOKEN_VALIDITY" default:"8h"`

	Port string `envconfig:"PORT" default:"8080"`

	SeedAdminPassword string `envconfig:"SEED_ADMIN_PASSWORD"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
}

// createSoldSeatIndex installs the partial unique index backing the
// seat-uniqueness invariant: at most one sold ticket per (trip, seat).
func createSoldSeatIndex(db *gorm.DB) error {
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_tickets_sold_seat
		 ON tickets (trip_id, seat_number) WHERE status = 'sold'`,
	).Error
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := enableUUIDExtension(db); err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Person{},
		&models.Customer{},
		&models.Staff{},
		&models.Driver{},
		&models.User{},
		&models.Route{},
		&models.Bus{},
		&models.Trip{},
		&models.Ticket{},
	)
	if err != nil {
		return nil, err
	}

	if err := createSoldSeatIndex(db); err != nil {
		return nil, err
	}

	seedAdminUser(db, cfg.SeedAdminPassword)

	return db, nil
}

func seedAdminUser(db *gorm.DB, password string) {
	if password == "" {
		return
	}

	var existing models.User
	if result := db.Where("username = ?", "admin").First(&existing); result.Error == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash seed admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Status:       models.UserActive,
		Role:         models.RoleAdministrator,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to seed admin user: %v", err)
	}
}
