package models

import (
	"encoding/json"
	"strings"
	"time"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, credential data, and the per-user dashboard
// settings (weather geocode/key and container layout).
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST never leave the server process; it is excluded from JSON.
	PasswordHash string `json:"-"`

	// Avatar is an optional URL of the user's avatar image.
	Avatar string `json:"avatar"`

	// WeatherAdcode is the Amap administrative district code used for
	// weather lookups. Empty until the user configures weather.
	WeatherAdcode string `json:"weather_adcode"`

	// WeatherKey is the user's Amap API key. The raw value is stored as-is
	// but is always masked before being returned to a client.
	WeatherKey string `json:"weather_key"`

	// ContainerConfig is the serialized dashboard layout configuration
	// as persisted in the database (a JSON text column).
	ContainerConfig string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ContainerConfig describes which dashboard containers are visible for a user.
// It is stored serialized in the users.container_config text column.
type ContainerConfig struct {
	ShowWeather   bool `json:"showWeather"`
	ShowHotSearch bool `json:"showHotSearch"`
	ShowBookmark  bool `json:"showBookmark"`
}

// DefaultContainerConfig returns the layout applied when a user has no stored
// configuration or the stored value cannot be parsed: everything visible.
func DefaultContainerConfig() ContainerConfig {
	return ContainerConfig{
		ShowWeather:   true,
		ShowHotSearch: true,
		ShowBookmark:  true,
	}
}

// ParseContainerConfig deserializes a stored container_config value.
// An empty or malformed value silently falls back to the default shape.
func ParseContainerConfig(stored string) ContainerConfig {
	if stored == "" {
		return DefaultContainerConfig()
	}

	var cfg ContainerConfig
	if err := json.Unmarshal([]byte(stored), &cfg); err != nil {
		return DefaultContainerConfig()
	}

	return cfg
}

// maskVisible is the number of characters left readable at each end of a
// masked weather key.
const maskVisible = 6

// MaskWeatherKey renders a stored Amap key safe for returning to a client.
// Keys longer than twelve characters keep their first and last six characters
// with the middle replaced by asterisks, preserving the original length.
// Shorter keys are returned unchanged.
func MaskWeatherKey(key string) string {
	if len(key) <= 2*maskVisible {
		return key
	}

	return key[:maskVisible] + strings.Repeat("*", len(key)-2*maskVisible) + key[len(key)-maskVisible:]
}

// UserSummary is the client-facing projection of a user record: the weather
// key is masked and the container config is returned parsed.
type UserSummary struct {
	ID              int64           `json:"id"`
	Username        string          `json:"username"`
	Avatar          string          `json:"avatar"`
	WeatherAdcode   string          `json:"weather_adcode"`
	WeatherKey      string          `json:"weather_key"`
	ContainerConfig ContainerConfig `json:"container_config"`
}

// Summary builds the client-facing projection of the user.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:              u.ID,
		Username:        u.Username,
		Avatar:          u.Avatar,
		WeatherAdcode:   u.WeatherAdcode,
		WeatherKey:      MaskWeatherKey(u.WeatherKey),
		ContainerConfig: ParseContainerConfig(u.ContainerConfig),
	}
}

// UserUpdate carries the optional fields of a partial user update.
// A nil field leaves the stored value untouched.
type UserUpdate struct {
	Avatar          *string          `json:"avatar"`
	WeatherAdcode   *string          `json:"weather_adcode"`
	WeatherKey      *string          `json:"weather_key"`
	ContainerConfig *ContainerConfig `json:"container_config"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
