package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.AppPort != "8080" || cfg.StoreDriver != "memory" || cfg.SessionDriver != "memory" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.BookingWindowMonths != 3 || cfg.BookingSessionTTLMinutes != 10 {
		t.Errorf("booking defaults: %+v", cfg)
	}
}

func TestDurationsFallBack(t *testing.T) {
	saved := AppConfig
	defer func() { AppConfig = saved }()

	AppConfig = Config{}
	if SessionTTL() != 10*time.Minute || TokenTTL() != 24*time.Hour {
		t.Errorf("zero config: session %v, token %v", SessionTTL(), TokenTTL())
	}
	if Location() != time.UTC {
		t.Errorf("empty timezone should be UTC")
	}

	AppConfig = Config{BookingSessionTTLMinutes: 30, TokenTTLHours: 2, Timezone: "Not/AZone"}
	if SessionTTL() != 30*time.Minute || TokenTTL() != 2*time.Hour {
		t.Errorf("configured: session %v, token %v", SessionTTL(), TokenTTL())
	}
	if Location() != time.UTC {
		t.Errorf("unknown timezone should fall back to UTC")
	}
}
