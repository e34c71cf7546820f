package middleware

import (
	"testing"

	"wayfare/config"
)

func TestGetLimiterUsesConfiguredRate(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	defer func() { config.AppConfig.MaxRequestsPerMin = prev }()

	config.AppConfig.MaxRequestsPerMin = 42
	limiter := limiterStore.getLimiter("10.0.0.1")
	if limiter.Burst() != 42 {
		t.Fatalf("burst %d, want the configured 42", limiter.Burst())
	}

	// Unset config falls back to the default rate.
	config.AppConfig.MaxRequestsPerMin = 0
	limiter = limiterStore.getLimiter("10.0.0.2")
	if limiter.Burst() != 100 {
		t.Fatalf("burst %d, want the default 100", limiter.Burst())
	}
}

func TestGetLimiterReusesPerIP(t *testing.T) {
	a := limiterStore.getLimiter("10.0.0.3")
	b := limiterStore.getLimiter("10.0.0.3")
	if a != b {
		t.Fatalf("expected the same limiter instance for one IP")
	}
}
