package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"vpgquote/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587 // STARTTLS; use 465 with SMTP_SSL=true for SMTPS
	}

	cfg := services.SMTPConfig{
		Host:       envOr("SMTP_HOST", "smtp.gmail.com"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"), // use app password if 2FA is enabled
		From:       envOr("SMTP_FROM", "noreply@vpg.be"),
		FromName:   envOr("SMTP_FROM_NAME", "VPG"),
		UseSSL:     os.Getenv("SMTP_SSL") == "true",
		RequireTLS: true,

		AppName:        envOr("APP_NAME", "VPG"),
		QuoteRecipient: envOr("QUOTE_RECIPIENT", "info@vpg.be"),

		TestMode:      os.Getenv("EMAIL_TEST_MODE") == "true",
		TestRecipient: os.Getenv("EMAIL_TEST_RECIPIENT"),
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
