package spells

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rune-caster/internal/catalog"
	"github.com/KirkDiggler/rune-caster/internal/errors"
)

// indexKey is the set of every stored spell key
const indexKey = "spells"

// Data represents the serialized form of a spell in Redis
type Data struct {
	catalog.SpellData
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed spell repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = realTime{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
	}
}

// key generates the Redis key for a spell
func (r *redisRepo) key(spellKey string) string {
	return fmt.Sprintf("spell:%s", spellKey)
}

// Create stores a new spell
func (r *redisRepo) Create(ctx context.Context, spell *catalog.SpellData) error {
	if err := validate(spell); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(spell.Key)).Result()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to check spell existence")
	}
	if exists > 0 {
		return errors.AlreadyExistsf("spell with key '%s' already exists", spell.Key).
			WithMeta("spell_key", spell.Key)
	}

	now := r.timeProvider.Now()
	jsonData, err := json.Marshal(Data{SpellData: *spell, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return errors.Wrap(err, "failed to marshal spell")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(spell.Key), string(jsonData), 0)
	pipe.SAdd(ctx, indexKey, spell.Key)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create spell")
	}

	return nil
}

// Get retrieves a spell by key
func (r *redisRepo) Get(ctx context.Context, key string) (*catalog.SpellData, error) {
	data, err := r.getData(ctx, key)
	if err != nil {
		return nil, err
	}
	return &data.SpellData, nil
}

func (r *redisRepo) getData(ctx context.Context, key string) (*Data, error) {
	if key == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return nil, errors.NotFoundf("spell with key '%s' not found", key).
			WithMeta("spell_key", key)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get spell")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to unmarshal spell").
			WithMeta("spell_key", key)
	}
	return &data, nil
}

// List returns every stored spell sorted by key
func (r *redisRepo) List(ctx context.Context) ([]*catalog.SpellData, error) {
	keys, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list spell keys")
	}

	spells := make([]*catalog.SpellData, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			spell, err := r.Get(ctx, key)
			if err != nil {
				return errors.Wrapf(err, "failed to get spell %s", key)
			}
			spells[i] = spell
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(spells, func(i, j int) bool { return spells[i].Key < spells[j].Key })
	return spells, nil
}

// Update replaces an existing spell, keeping its creation time
func (r *redisRepo) Update(ctx context.Context, spell *catalog.SpellData) error {
	if err := validate(spell); err != nil {
		return err
	}

	existing, err := r.getData(ctx, spell.Key)
	if err != nil {
		return err
	}

	jsonData, err := json.Marshal(Data{
		SpellData: *spell,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: r.timeProvider.Now(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal spell")
	}

	if err := r.client.Set(ctx, r.key(spell.Key), string(jsonData), 0).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to update spell")
	}
	return nil
}

// Delete removes a spell and its index entry
func (r *redisRepo) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.InvalidArgument("spell key is required")
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.key(key))
	pipe.SRem(ctx, indexKey, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete spell")
	}

	if del.Val() == 0 {
		return errors.NotFoundf("spell with key '%s' not found", key).
			WithMeta("spell_key", key)
	}
	return nil
}
