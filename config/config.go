package config

import (
	"os"

	"restaurant-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs admin session tokens
var JWTSecret []byte

// AdminEmail / AdminPasswordHash are the credentials accepted by the admin login
var (
	AdminEmail        string
	AdminPasswordHash []byte
)

// StrictTotals, when enabled, rejects orders whose client-supplied total
// does not match the sum of the resolved line items. Off by default: the
// stock behavior is to trust the client's total.
var StrictTotals bool

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present) and populates package-level settings.
func Load() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}

	JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_api_dev_secret"))
	AdminEmail = getEnv("ADMIN_EMAIL", "admin@restaurant.local")
	StrictTotals = os.Getenv("STRICT_TOTALS") == "true"

	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		AdminPasswordHash = []byte(hash)
	} else if pw := os.Getenv("ADMIN_PASSWORD"); pw != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Fatal("failed to hash admin password")
		}
		AdminPasswordHash = hashed
	} else {
		logrus.Warn("no admin password configured, admin login is disabled")
	}
}

// InitDB opens the SQLite database and migrates all models.
func InitDB() {
	path := getEnv("DATABASE_PATH", "restaurant.db")

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err := Migrate(DB); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}

	logrus.WithField("path", path).Info("database connected and migrated")
}

// Migrate runs auto-migration for every model on the given handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Booking{},
		&models.Payment{},
	)
}
