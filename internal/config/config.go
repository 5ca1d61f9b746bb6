package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config carries everything the server needs: upstream credentials,
// infrastructure addresses and the pricing policy knobs.
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`

	// Optional: rate-table overrides are loaded from here when set.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// Optional: quote cache; an in-memory cache is used when empty.
	RedisAddr string `mapstructure:"REDIS_ADDR"`

	AmadeusClientID     string `mapstructure:"AMADEUS_CLIENT_ID"`
	AmadeusClientSecret string `mapstructure:"AMADEUS_CLIENT_SECRET"`
	AmadeusHostname     string `mapstructure:"AMADEUS_HOSTNAME"`
	GSAAPIKey           string `mapstructure:"GSA_API_KEY"`

	// UpstreamTimeoutSeconds bounds every pricing-source call.
	UpstreamTimeoutSeconds int `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`

	// Policy knobs; see the module DefaultPolicy functions for meanings.
	ContingencyRate    float64 `mapstructure:"CONTINGENCY_RATE"`
	FixedIncidentals   float64 `mapstructure:"FIXED_INCIDENTALS"`
	RentalClassUplift  float64 `mapstructure:"RENTAL_CLASS_UPLIFT"`
	MembershipDiscount float64 `mapstructure:"RENTAL_MEMBERSHIP_DISCOUNT"`
	HolidaySurcharge   float64 `mapstructure:"HOLIDAY_SURCHARGE"`
	MealBaseDailyRate  float64 `mapstructure:"MEAL_BASE_DAILY_RATE"`
}

// LoadConfig reads the .env file at path and the process environment.
func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("AMADEUS_HOSTNAME", "test")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 10)
	viper.SetDefault("CONTINGENCY_RATE", 0.10)
	viper.SetDefault("FIXED_INCIDENTALS", 50.0)
	viper.SetDefault("RENTAL_CLASS_UPLIFT", 0.15)
	viper.SetDefault("RENTAL_MEMBERSHIP_DISCOUNT", 0.12)
	viper.SetDefault("HOLIDAY_SURCHARGE", 50.0)
	viper.SetDefault("MEAL_BASE_DAILY_RATE", 65.0)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No .env file found.")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
