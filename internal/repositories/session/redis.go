package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	// Key pattern: sheet_session:{session_id}:{history|resources}
	sessionKeyPrefix = "sheet_session:"
	historySuffix    = "history"
	resourcesSuffix  = "resources"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedis creates a Redis backed session repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) AppendHistory(ctx context.Context, input AppendHistoryInput) (*AppendHistoryOutput, error) {
	if err := validateAppend(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal history entry")
	}

	key := r.buildKey(input.SessionID, historySuffix)

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, int64(input.Limit-1))
	pipe.Expire(ctx, key, r.ttl)
	size := pipe.LLen(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append history entry")
	}

	return &AppendHistoryOutput{
		Size: int(size.Val()),
	}, nil
}

func (r *redisRepository) ListHistory(ctx context.Context, input ListHistoryInput) (*ListHistoryOutput, error) {
	if err := validateSessionID(input.SessionID); err != nil {
		return nil, err
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	raw, err := r.client.LRange(ctx, r.buildKey(input.SessionID, historySuffix), 0, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read history")
	}

	entries := make([]*entities.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry entities.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal history entry")
		}
		entries = append(entries, &entry)
	}

	return &ListHistoryOutput{
		Entries: entries,
	}, nil
}

func (r *redisRepository) ClearHistory(ctx context.Context, input ClearHistoryInput) (*ClearHistoryOutput, error) {
	if err := validateSessionID(input.SessionID); err != nil {
		return nil, err
	}

	key := r.buildKey(input.SessionID, historySuffix)

	pipe := r.client.TxPipeline()
	size := pipe.LLen(ctx, key)
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to clear history")
	}

	return &ClearHistoryOutput{
		EntriesDeleted: int(size.Val()),
	}, nil
}

func (r *redisRepository) GetResources(ctx context.Context, input GetResourcesInput) (*GetResourcesOutput, error) {
	if err := validateSessionID(input.SessionID); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, r.buildKey(input.SessionID, resourcesSuffix)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("session resources not found")
		}
		return nil, errors.Wrapf(err, "failed to get resources from Redis")
	}

	var resources entities.Resources
	if err := json.Unmarshal([]byte(data), &resources); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal resources")
	}

	return &GetResourcesOutput{
		Resources: resources,
	}, nil
}

func (r *redisRepository) SaveResources(ctx context.Context, input SaveResourcesInput) error {
	if err := validateSessionID(input.SessionID); err != nil {
		return err
	}

	data, err := json.Marshal(input.Resources)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal resources")
	}

	err = r.client.Set(ctx, r.buildKey(input.SessionID, resourcesSuffix), data, r.ttl).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to store resources in Redis")
	}

	return nil
}

// buildKey creates the Redis key for one part of a session
func (r *redisRepository) buildKey(sessionID, part string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, sessionID, part)
}
