package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrWrongCredentials    = errors.New("wrong username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrWeatherNotConfigured is returned when the user has no stored
	// geocode or API key for the weather provider.
	ErrWeatherNotConfigured = errors.New("weather is not configured")

	// ErrNoWeatherData is returned when the provider answers successfully
	// but carries no live weather record.
	ErrNoWeatherData = errors.New("weather data is unavailable")
)

// QuickCommandConflictError is returned when a search-engine create or update
// would reuse a quick command (case-insensitively) already assigned to another
// engine of the same owner. It names the conflicting engine so that the
// client can report which engine holds the command.
type QuickCommandConflictError struct {
	Command    string
	EngineName string
}

func (e *QuickCommandConflictError) Error() string {
	return fmt.Sprintf("quick command %q is already assigned to %q", e.Command, e.EngineName)
}

// WeatherProviderError carries the mapped message of an upstream weather
// provider failure.
type WeatherProviderError struct {
	Infocode string
	Message  string
}

func (e *WeatherProviderError) Error() string {
	return e.Message
}
