package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything read from the environment. It is built once in
// main and handed to the packages that need it.
type Config struct {
	Port        string
	DatabaseURL string

	AdminFullName string
	AdminEmail    string
	AdminPassword string
	JWTSecret     string

	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	EmailSender      string
	ContactRecipient string

	CloudinaryURL string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		AdminFullName: getEnv("ADMIN_FULL_NAME", "Geko Admin"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),

		SMTPHost:         os.Getenv("EMAIL_HOST"),
		SMTPPort:         getEnv("EMAIL_PORT", "587"),
		SMTPUsername:     os.Getenv("EMAIL_HOST_USER"),
		SMTPPassword:     os.Getenv("EMAIL_HOST_PASSWORD"),
		EmailSender:      os.Getenv("EMAIL_HOST_USER"),
		ContactRecipient: getEnv("CONTACT_RECIPIENT", "gekoeducation@gmail.com"),

		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
