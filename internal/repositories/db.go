// Package repositories provides the data access layer. It defines the
// Store contract consumed by the services and its GORM-backed
// implementation.
package repositories

import (
	"log"
	"os"
	"time"

	"walletledger/internal/config"
	"walletledger/internal/models"
	"walletledger/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB

// CacheService is the shared Redis-backed wallet cache, nil when Redis
// is disabled.
var CacheService *cache.CacheService

// InitDB initializes the PostgreSQL connection, configures pooling,
// runs migrations and sets up the Redis cache service.
func InitDB() error {
	if err := initPostgres(); err != nil {
		return err
	}

	if config.GetBoolEnv("REDIS_ENABLED", true) {
		redisCfg := &cache.RedisConfig{
			Host:     config.GetEnv("REDIS_HOST", "localhost"),
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		}
		CacheService = cache.NewCacheService(cache.NewRedisClient(redisCfg), 24*time.Hour)
	}

	return DB.AutoMigrate(
		&models.Wallet{},
		&models.Transaction{},
	)
}

func initPostgres() error {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "walletledger") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=" + config.GetEnv("DB_SSLMODE", "disable")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(config.GetIntEnv("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(config.GetIntEnv("DB_MAX_OPEN_CONNS", 100))
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	// Ignore "record not found" noise; missing wallets are an expected
	// outcome, not a fault.
	db.Logger = logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !config.IsProduction(),
		},
	)

	DB = db
	log.Println("PostgreSQL connected")
	return nil
}
