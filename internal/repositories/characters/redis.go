package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fableforge/gamemaster/internal/domain/character"
	apperr "github.com/fableforge/gamemaster/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// indexKey is the set holding every stored player ID
const indexKey = "characters"

// redisRepo implements Repository using Redis. Each character is stored as
// JSON under character:<playerID> with the player ID added to an index set.
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{client: cfg.Client}
}

// key generates the Redis key for a character
func (r *redisRepo) key(playerID string) string {
	return fmt.Sprintf("character:%s", playerID)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.PlayerID == "" {
		return apperr.InvalidArgument("character player ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(char.PlayerID)).Result()
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to check character existence")
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("character for player '%s' already exists", char.PlayerID).
			WithMeta("player_id", char.PlayerID)
	}

	return r.Save(ctx, char)
}

// Get retrieves a character by player ID
func (r *redisRepo) Get(ctx context.Context, playerID string) (*character.Character, error) {
	if playerID == "" {
		return nil, apperr.InvalidArgument("player ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(playerID)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("character for player '%s' not found", playerID).
			WithMeta("player_id", playerID)
	}
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get character")
	}

	var char character.Character
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &char); unmarshalErr != nil {
		return nil, apperr.Wrapf(unmarshalErr, "failed to unmarshal character '%s'", playerID)
	}

	return &char, nil
}

// Save upserts the full record and keeps the index set current
func (r *redisRepo) Save(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.PlayerID == "" {
		return apperr.InvalidArgument("character player ID is required")
	}

	jsonData, err := json.Marshal(char)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal character")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.PlayerID), string(jsonData), 0)
	pipe.SAdd(ctx, indexKey, char.PlayerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to save character")
	}

	return nil
}

// List retrieves every stored character, ordered by player ID
func (r *redisRepo) List(ctx context.Context) ([]*character.Character, error) {
	playerIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to list character IDs")
	}

	chars := make([]*character.Character, len(playerIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range playerIDs {
		g.Go(func() error {
			char, err := r.Get(ctx, id)
			if err != nil {
				return apperr.Wrapf(err, "failed to get character '%s'", id)
			}
			chars[i] = char
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(chars, func(i, j int) bool {
		return chars[i].PlayerID < chars[j].PlayerID
	})

	return chars, nil
}
