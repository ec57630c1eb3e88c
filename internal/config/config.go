package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	ServerPort int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PrimaryKey        string
	BackupKey         string
	Latency           time.Duration
	LocalStorageQuota int64

	SuccessMessageDuration time.Duration
	ErrorMessageDuration   time.Duration
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CATALOG_PRIMARY_KEY", "media_catalog")
	viper.SetDefault("CATALOG_BACKUP_KEY", "media_catalog_backup")
	viper.SetDefault("CATALOG_LATENCY_MS", 300)
	viper.SetDefault("LOCAL_STORAGE_QUOTA_BYTES", 5*1024*1024)
	viper.SetDefault("MESSAGE_SUCCESS_SECONDS", 3)
	viper.SetDefault("MESSAGE_ERROR_SECONDS", 5)

	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}
	if viper.GetInt("CATALOG_LATENCY_MS") < 0 {
		return nil, fmt.Errorf("CATALOG_LATENCY_MS must not be negative")
	}
	if viper.GetString("CATALOG_PRIMARY_KEY") == viper.GetString("CATALOG_BACKUP_KEY") {
		return nil, fmt.Errorf("CATALOG_PRIMARY_KEY and CATALOG_BACKUP_KEY must differ")
	}

	return &Settings{
		ServerPort:             viper.GetInt("SERVER_PORT"),
		RedisAddr:              viper.GetString("REDIS_ADDR"),
		RedisPassword:          viper.GetString("REDIS_PASSWORD"),
		RedisDB:                viper.GetInt("REDIS_DB"),
		PrimaryKey:             viper.GetString("CATALOG_PRIMARY_KEY"),
		BackupKey:              viper.GetString("CATALOG_BACKUP_KEY"),
		Latency:                time.Duration(viper.GetInt("CATALOG_LATENCY_MS")) * time.Millisecond,
		LocalStorageQuota:      viper.GetInt64("LOCAL_STORAGE_QUOTA_BYTES"),
		SuccessMessageDuration: time.Duration(viper.GetInt("MESSAGE_SUCCESS_SECONDS")) * time.Second,
		ErrorMessageDuration:   time.Duration(viper.GetInt("MESSAGE_ERROR_SECONDS")) * time.Second,
	}, nil
}
