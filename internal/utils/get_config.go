package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// App
	AppURL  string `yaml:"APP_URL"`
	AppPort string `yaml:"APP_PORT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Redis
	RedisAddr     string `yaml:"REDIS_ADDR"`
	RedisPassword string `yaml:"REDIS_PASSWORD"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Midtrans configuration
	ClientKey string `yaml:"CLIENT_KEY"`
	ServerKey string `yaml:"SERVER_KEY"`
	IsProd    bool   `yaml:"IsProd"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Background jobs
	RepriceIntervalMinutes int `yaml:"REPRICE_INTERVAL_MINUTES"`
	NotifyIntervalHours    int `yaml:"NOTIFY_INTERVAL_HOURS"`
	NotifyWindowDays       int `yaml:"NOTIFY_WINDOW_DAYS"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Keys some libraries read straight from the environment
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("SERVER_KEY", config.ServerKey)
	os.Setenv("CLIENT_KEY", config.ClientKey)
	os.Setenv("IS_PROD", getBoolString(config.IsProd))
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func GetConfig(key string) string {
	switch key {
	case "APP_URL":
		return config.AppURL
	case "APP_PORT":
		return config.AppPort
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "REDIS_ADDR":
		return config.RedisAddr
	case "REDIS_PASSWORD":
		return config.RedisPassword
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "CLIENT_KEY":
		return config.ClientKey
	case "SERVER_KEY":
		return config.ServerKey
	case "IsProd":
		return getBoolString(config.IsProd)
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

// GetConfigInt returns numeric job settings with a fallback for keys
// absent from config.yaml.
func GetConfigInt(key string, fallback int) int {
	var v int
	switch key {
	case "REPRICE_INTERVAL_MINUTES":
		v = config.RepriceIntervalMinutes
	case "NOTIFY_INTERVAL_HOURS":
		v = config.NotifyIntervalHours
	case "NOTIFY_WINDOW_DAYS":
		v = config.NotifyWindowDays
	}
	if v <= 0 {
		return fallback
	}
	return v
}
