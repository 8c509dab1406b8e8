// Package config loads process configuration from .env and the
// environment.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/spotfurnish/quotegen/pricing"
	"github.com/spotfurnish/quotegen/quote"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Company  quote.Company
	Fees     pricing.FeeConfig
	Assets   AssetsConfig
	Node     int64 // snowflake node ID, distinct per process
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

// DSN builds the PostgreSQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone)
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

type AssetsConfig struct {
	// FontDir holds Helvetica.ttf and Helvetica-Bold.ttf.
	FontDir string
	LogoURL string
	// DebugLayoutDir, when set, receives per-order layout JSON dumps.
	DebugLayoutDir string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	viper.SetDefault("APP_NAME", "quotegen")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", false)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "quotegen")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("EMAIL_HOST", "smtp.gmail.com")
	viper.SetDefault("EMAIL_PORT", 587)
	viper.SetDefault("EMAIL_FROM_NAME", "Spot Furnish Rentals")
	viper.SetDefault("COMPANY_NAME", "Spot Furnish Rentals")
	viper.SetDefault("COMPANY_ADDRESS", "8th Main, Ramamurthy Nagar main Road|Bengaluru, Karnataka 560016")
	viper.SetDefault("COMPANY_PHONES", "+91 8123096928|+91 9844723432")
	viper.SetDefault("BANK_NAME", "AXIS Bank")
	viper.SetDefault("ACCOUNT_NAME", "Preethi Yogesh Navandar")
	viper.SetDefault("ACCOUNT_NUMBER", "919010043469563")
	viper.SetDefault("IFSC_CODE", "UTIB0003569")
	viper.SetDefault("UPI_ID", "9844723432")
	viper.SetDefault("DEPOSIT_MONTHS", 2)
	viper.SetDefault("TRANSPORTATION_FEE", "750")
	viper.SetDefault("ADVANCE_TOKEN_AMOUNT", "1000")
	viper.SetDefault("FONT_DIR", "assets/fonts")
	viper.SetDefault("LOGO_URL", "assets/logo.jpeg")
	viper.SetDefault("DEBUG_LAYOUT_DIR", "")
	viper.SetDefault("SNOWFLAKE_NODE", 1)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		SMTP: SMTPConfig{
			Host:      viper.GetString("EMAIL_HOST"),
			Port:      viper.GetInt("EMAIL_PORT"),
			Username:  viper.GetString("SMTP_USER"),
			Password:  viper.GetString("SMTP_PASS"),
			FromName:  viper.GetString("EMAIL_FROM_NAME"),
			FromEmail: viper.GetString("SMTP_USER"),
		},
		Company: quote.Company{
			Name:          viper.GetString("COMPANY_NAME"),
			AddressLines:  splitList(viper.GetString("COMPANY_ADDRESS")),
			Phones:        splitList(viper.GetString("COMPANY_PHONES")),
			BankName:      viper.GetString("BANK_NAME"),
			AccountName:   viper.GetString("ACCOUNT_NAME"),
			AccountNumber: viper.GetString("ACCOUNT_NUMBER"),
			IFSC:          viper.GetString("IFSC_CODE"),
			UPI:           viper.GetString("UPI_ID"),
		},
		Fees: pricing.FeeConfig{
			DepositMonths:      viper.GetInt("DEPOSIT_MONTHS"),
			TransportationFee:  mustDecimal("TRANSPORTATION_FEE"),
			AdvanceTokenAmount: mustDecimal("ADVANCE_TOKEN_AMOUNT"),
		},
		Assets: AssetsConfig{
			FontDir:        viper.GetString("FONT_DIR"),
			LogoURL:        viper.GetString("LOGO_URL"),
			DebugLayoutDir: viper.GetString("DEBUG_LAYOUT_DIR"),
		},
		Node: viper.GetInt64("SNOWFLAKE_NODE"),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func mustDecimal(key string) decimal.Decimal {
	d, err := decimal.NewFromString(viper.GetString(key))
	if err != nil {
		log.Printf("Warning: %s is not a valid amount, using 0: %v", key, err)
		return decimal.Zero
	}
	return d
}
