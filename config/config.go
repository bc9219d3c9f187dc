package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"redihair-backend/i18n"
	"redihair-backend/services"
)

// Config is the process configuration, read from the environment
// (godotenv loads .env first in main).
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DB_URL" required:"true"`

	TimeZone      string `envconfig:"TIMEZONE" default:"Europe/Tirane"`
	OpeningTime   string `envconfig:"OPENING_TIME" default:"09:00"`
	ClosingTime   string `envconfig:"CLOSING_TIME" default:"21:00"`
	ClosedWeekday string `envconfig:"CLOSED_WEEKDAY" default:"Monday"`

	DefaultLang  string `envconfig:"DEFAULT_LANG" default:"en"`
	FlashHashKey string `envconfig:"FLASH_HASH_KEY" default:"redi-hair-studio-flash-key"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Schedule builds the booking window from the configured strings.
func (c *Config) Schedule() (services.Schedule, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return services.Schedule{}, fmt.Errorf("invalid TIMEZONE %q: %w", c.TimeZone, err)
	}
	day, err := parseWeekday(c.ClosedWeekday)
	if err != nil {
		return services.Schedule{}, err
	}
	return services.Schedule{
		Open:      c.OpeningTime,
		Close:     c.ClosingTime,
		ClosedDay: day,
		Location:  loc,
	}, nil
}

// Lang returns the default display language.
func (c *Config) Lang() i18n.Lang {
	return i18n.Parse(c.DefaultLang)
}

func parseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid CLOSED_WEEKDAY %q", name)
}
