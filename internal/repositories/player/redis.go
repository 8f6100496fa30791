package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/announcer/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Default Redis key holding the player hash
	defaultPlayerKey = "announcer:player"

	nameField  = "name"
	killsField = "kills"
)

// swapScript reads the previous record and writes the new one in a single
// script execution, so concurrent swaps never interleave.
var swapScript = redis.NewScript(`
local prev = redis.call('HMGET', KEYS[1], 'name', 'kills')
redis.call('HSET', KEYS[1], 'name', ARGV[1], 'kills', ARGV[2])
return {prev[1] or '', prev[2] or '0'}
`)

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Key is the hash key holding the player record (optional)
	Key string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	key    string
}

// NewRedis creates a new Redis-backed player repository. Any record left by a
// previous process is cleared so tracking always starts idle.
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	key := cfg.Key
	if key == "" {
		key = defaultPlayerKey
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if err := cfg.RedisClient.Del(context.Background(), key).Err(); err != nil {
		return nil, fmt.Errorf("failed to clear player record: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		key:    key,
	}, nil
}

// SwapPlayer atomically replaces the player hash and returns the previous values
func (r *redisRepository) SwapPlayer(ctx context.Context, input *SwapPlayerInput) (*SwapPlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	values, err := swapScript.Run(ctx, r.client, []string{r.key},
		input.Player.Name,
		strconv.FormatUint(uint64(input.Player.Kills), 10),
	).StringSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to swap player: %w", err)
	}

	if len(values) != 2 {
		return nil, fmt.Errorf("unexpected swap reply length %d", len(values))
	}

	previous, err := parsePlayer(values[0], values[1])
	if err != nil {
		return nil, err
	}

	return &SwapPlayerOutput{
		Previous: previous,
	}, nil
}

// GetPlayer reads the player hash
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.PlayerState, error) {
	values, err := r.client.HMGet(ctx, r.key, nameField, killsField).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	// Missing fields come back as nil, which is the idle state
	name, _ := values[0].(string)
	kills, _ := values[1].(string)

	player, err := parsePlayer(name, kills)
	if err != nil {
		return nil, err
	}

	return &player, nil
}

func parsePlayer(name, kills string) (models.PlayerState, error) {
	if kills == "" {
		kills = "0"
	}

	parsed, err := strconv.ParseUint(kills, 10, 16)
	if err != nil {
		return models.PlayerState{}, fmt.Errorf("failed to parse stored kills %q: %w", kills, err)
	}

	return models.PlayerState{
		Name:  name,
		Kills: uint16(parsed),
	}, nil
}
