package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-pos-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_pos")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures the demo partner and the room type taxonomy exist.
func SeedDatabase() {
	var partnerCount int64
	DB.Model(&models.Partner{}).Count(&partnerCount)
	if partnerCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("partner123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default partner password: %v", err)
		} else {
			partner := models.Partner{
				Name:     "Demo Partner",
				Email:    "partner@hotel.local",
				Password: string(hash),
			}
			if err := DB.Create(&partner).Error; err != nil {
				log.Printf("warning: failed to create default partner: %v", err)
			} else {
				log.Println("Default partner seeded")
			}
		}
	}

	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: "Standard", Description: "Standard Room", MaxGuests: 2},
			{TypeName: "Superior", Description: "Superior Room", MaxGuests: 3},
			{TypeName: "Deluxe", Description: "Deluxe Room", MaxGuests: 4},
			{TypeName: "Connecting", Description: "Connecting Room", MaxGuests: 5},
		}
		DB.Create(&roomTypes)
		log.Println("RoomTypes seeded")
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Partner{},
		&models.Summary{},
		&models.RoomType{},
		&models.Building{},
		&models.Tag{},
		&models.Room{},
		&models.HotelProfile{},
		&models.CheckInOrder{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
