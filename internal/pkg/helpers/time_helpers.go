package helpers

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDurationOr parses a Go duration string such as "1h30m". An empty value
// yields fallback silently; a malformed one yields fallback with a warning.
func ParseDurationOr(value string, fallback time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		log.Warn().Err(err).Str("value", value).Dur("fallback", fallback).Msg("Invalid duration, using fallback")
		return fallback
	}
	return duration
}
