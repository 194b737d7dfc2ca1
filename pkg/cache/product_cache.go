package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

const (
	// ProductCacheTTL is the time-to-live for cached products.
	ProductCacheTTL = 24 * time.Hour

	productCacheKeyPrefix = "product"

	// KindFloor is the kind segment used for floor product keys.
	KindFloor = "floor"

	// breakerTrips is the run of consecutive Redis failures that opens the
	// breaker; while open, calls fail fast and readers go to the database.
	breakerTrips   = 5
	breakerTimeout = 30 * time.Second
)

// CachedFloorProduct is the read model stored in Redis as a hash.
// Decimal fields are kept in their exact string form.
type CachedFloorProduct struct {
	ID              uuid.UUID
	SKU             string
	Name            string
	SideACm         string
	SideBCm         string
	PiecesPerBox    int
	AreaPerBoxM2    string
	Finish          string
	CollectionColor string
	PricePerM2      string
	StockBoxes      int
	MinStockBoxes   int
	Active          bool
	UpdatedAt       time.Time
}

// setIfGeneration writes the hash only while the product's generation still
// matches the one the reader saw before loading from the database.
// KEYS: hash, generation. ARGV: generation, ttl seconds, field/value pairs.
var setIfGeneration = redis.NewScript(`
local g = redis.call('GET', KEYS[2]) or '0'
if g ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[1], unpack(ARGV, 3))
redis.call('EXPIRE', KEYS[1], ARGV[2])
return 1
`)

// ProductCache provides read/write operations for product cache entries.
// Key format: "product:{kind}:{id}", with the generation counter at
// "product:{kind}:{id}:gen". Every Delete bumps the generation so a reader
// that loaded the database before the delete cannot write its copy back.
type ProductCache struct {
	client  *RedisClient
	breaker *gobreaker.CircuitBreaker
}

// NewProductCache creates a ProductCache backed by the given RedisClient.
func NewProductCache(r *RedisClient) *ProductCache {
	return &ProductCache{
		client: r,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "product-cache",
			MaxRequests: 1,
			Timeout:     breakerTimeout,
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= breakerTrips
			},
		}),
	}
}

// BreakerState reports "closed", "half-open" or "open".
func (c *ProductCache) BreakerState() string {
	return c.breaker.State().String()
}

func (c *ProductCache) guard(fn func() error) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	return err
}

// GetFloor retrieves a cached floor product with the product's current
// generation. On a miss it returns redis.Nil together with the generation,
// which the caller hands to SetFloor after loading the database.
func (c *ProductCache) GetFloor(ctx context.Context, id uuid.UUID) (*CachedFloorProduct, int64, error) {
	var (
		vals map[string]string
		gen  int64
	)
	err := c.guard(func() error {
		pipe := c.client.Client().Pipeline()
		hash := pipe.HGetAll(ctx, ProductKey(KindFloor, id))
		genCmd := pipe.Get(ctx, generationKey(KindFloor, id))
		if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		var err error
		if vals, err = hash.Result(); err != nil {
			return err
		}
		gen, err = genCmd.Int64()
		if errors.Is(err, redis.Nil) {
			gen, err = 0, nil
		}
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, gen, redis.Nil
	}
	p, err := decodeFloor(vals)
	return p, gen, err
}

// SetFloor writes a floor product hash and its TTL when gen is still the
// product's generation. It reports false when a Delete got there first.
func (c *ProductCache) SetFloor(ctx context.Context, p *CachedFloorProduct, gen int64) (bool, error) {
	args := append([]any{gen, int64(ProductCacheTTL / time.Second)}, encodeFloor(p)...)
	var written int64
	err := c.guard(func() (err error) {
		written, err = setIfGeneration.Run(ctx, c.client.Client(),
			[]string{ProductKey(KindFloor, p.ID), generationKey(KindFloor, p.ID)}, args...).Int64()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("cache set: %w", err)
	}
	return written == 1, nil
}

// Delete removes a cached product of any kind and bumps its generation in
// one MULTI/EXEC.
func (c *ProductCache) Delete(ctx context.Context, kind string, id uuid.UUID) error {
	genKey := generationKey(kind, id)
	if err := c.guard(func() error {
		pipe := c.client.Client().TxPipeline()
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, ProductCacheTTL)
		pipe.Del(ctx, ProductKey(kind, id))
		_, err := pipe.Exec(ctx)
		return err
	}); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// ProductKey builds the Redis key: "product:{kind}:{id}"
func ProductKey(kind string, id uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", productCacheKeyPrefix, kind, id)
}

func generationKey(kind string, id uuid.UUID) string {
	return ProductKey(kind, id) + ":gen"
}

func encodeFloor(p *CachedFloorProduct) []any {
	return []any{
		"id", p.ID.String(),
		"sku", p.SKU,
		"name", p.Name,
		"side_a_cm", p.SideACm,
		"side_b_cm", p.SideBCm,
		"pieces_per_box", strconv.Itoa(p.PiecesPerBox),
		"area_per_box_m2", p.AreaPerBoxM2,
		"finish", p.Finish,
		"collection_color", p.CollectionColor,
		"price_per_m2", p.PricePerM2,
		"stock_boxes", strconv.Itoa(p.StockBoxes),
		"min_stock_boxes", strconv.Itoa(p.MinStockBoxes),
		"active", strconv.FormatBool(p.Active),
		"updated_at", p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func decodeFloor(vals map[string]string) (*CachedFloorProduct, error) {
	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	pieces, err := strconv.Atoi(vals["pieces_per_box"])
	if err != nil {
		return nil, fmt.Errorf("cache parse pieces_per_box: %w", err)
	}
	stock, err := strconv.Atoi(vals["stock_boxes"])
	if err != nil {
		return nil, fmt.Errorf("cache parse stock_boxes: %w", err)
	}
	minStock, err := strconv.Atoi(vals["min_stock_boxes"])
	if err != nil {
		return nil, fmt.Errorf("cache parse min_stock_boxes: %w", err)
	}
	active, err := strconv.ParseBool(vals["active"])
	if err != nil {
		return nil, fmt.Errorf("cache parse active: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}

	return &CachedFloorProduct{
		ID:              id,
		SKU:             vals["sku"],
		Name:            vals["name"],
		SideACm:         vals["side_a_cm"],
		SideBCm:         vals["side_b_cm"],
		PiecesPerBox:    pieces,
		AreaPerBoxM2:    vals["area_per_box_m2"],
		Finish:          vals["finish"],
		CollectionColor: vals["collection_color"],
		PricePerM2:      vals["price_per_m2"],
		StockBoxes:      stock,
		MinStockBoxes:   minStock,
		Active:          active,
		UpdatedAt:       updatedAt,
	}, nil
}
