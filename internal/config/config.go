// Package config reads announcer settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/KirkDiggler/announcer/internal/audio"
	"github.com/joho/godotenv"
)

// Defaults
const (
	DefaultAddr           = "127.0.0.1:3000"
	DefaultRequestTimeout = 10 * time.Second
	DefaultRedisKey       = "announcer:player"
)

// Config holds every runtime setting
type Config struct {
	// Addr the update endpoint listens on
	Addr string

	// Device is a substring of the output device name, empty for the default
	Device string

	// CuesFile is the YAML cue override file
	CuesFile string

	// Overlap policy for clips that start while another is playing
	Overlap audio.OverlapPolicy

	// MaxVoices caps simultaneous clips in mix mode
	MaxVoices int

	// SessionStartCue announces the first update of a new player
	SessionStartCue bool

	// RequestTimeout bounds each request
	RequestTimeout time.Duration

	// Redis backs the player store when RedisAddr is set
	RedisAddr     string
	RedisPassword string
	RedisKey      string

	// Discord relay, enabled when both are set
	DiscordToken     string
	DiscordChannelID string
}

// DiscordEnabled returns true if announcements should be relayed to Discord
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

// Load reads the env files then the environment. Without files the default
// .env is read when present; named files must exist. Variables already set in
// the environment win over file values. Values are parsed, not validated: call
// Validate once any flag overrides have been applied.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	overlap, err := audio.ParseOverlapPolicy(getEnv("ANNOUNCER_OVERLAP", string(audio.OverlapMix)))
	if err != nil {
		return nil, fmt.Errorf("ANNOUNCER_OVERLAP: %w", err)
	}

	maxVoices, err := getEnvInt("ANNOUNCER_MAX_VOICES", audio.DefaultMaxVoices)
	if err != nil {
		return nil, err
	}

	sessionStart, err := getEnvBool("ANNOUNCER_SESSION_START_CUE", false)
	if err != nil {
		return nil, err
	}

	timeout, err := getEnvDuration("ANNOUNCER_REQUEST_TIMEOUT", DefaultRequestTimeout)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:             getEnv("ANNOUNCER_ADDR", DefaultAddr),
		Device:           getEnv("ANNOUNCER_DEVICE", ""),
		CuesFile:         getEnv("ANNOUNCER_CUES_FILE", ""),
		Overlap:          overlap,
		MaxVoices:        maxVoices,
		SessionStartCue:  sessionStart,
		RequestTimeout:   timeout,
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisKey:         getEnv("REDIS_KEY", DefaultRedisKey),
		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		DiscordChannelID: getEnv("DISCORD_CHANNEL_ID", ""),
	}

	return cfg, nil
}

// Validate checks the final settings
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address cannot be empty")
	}

	if _, err := audio.ParseOverlapPolicy(string(c.Overlap)); err != nil {
		return err
	}

	if c.MaxVoices < 1 {
		return fmt.Errorf("max voices must be at least 1, got %d", c.MaxVoices)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}

	if (c.DiscordToken == "") != (c.DiscordChannelID == "") {
		return errors.New("DISCORD_TOKEN and DISCORD_CHANNEL_ID must be set together")
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, value)
	}
	return parsed, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, value)
	}
	return parsed, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, value)
	}
	return parsed, nil
}
