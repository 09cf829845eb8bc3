package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/scores"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/utils"
)

// ScoreHotCache is an optional read-through layer in front of the score_cache
// table. All methods are nil-receiver safe so callers never branch on whether
// redis is configured; the database row stays the source of truth.
type ScoreHotCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewScoreHotCache connects using REDIS_ADDR. An empty address returns
// (nil, nil): the caller runs without a hot cache.
func NewScoreHotCache(log *logger.Logger) (*ScoreHotCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(utils.GetEnv("REDIS_ADDR", "", log))
	if addr == "" {
		return nil, nil
	}

	ttl := time.Duration(utils.GetEnvAsInt("SCORE_CACHE_TTL_SECONDS", 600, log)) * time.Second

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &ScoreHotCache{
		log: log.With("service", "ScoreHotCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func scoreKey(deptID int, academicYear string) string {
	return fmt.Sprintf("score:%d:%s", deptID, academicYear)
}

// Get returns the cached summary, or nil on miss. Decode failures count as
// misses; a stale or corrupt hot entry must never mask the database row.
func (c *ScoreHotCache) Get(ctx context.Context, deptID int, academicYear string) *scores.ScoreSummary {
	if c == nil {
		return nil
	}
	raw, err := c.rdb.Get(ctx, scoreKey(deptID, academicYear)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("Hot cache read failed", "error", err)
		}
		return nil
	}
	var s scores.ScoreSummary
	if err := json.Unmarshal(raw, &s); err != nil {
		c.log.Warn("Hot cache entry corrupt, ignoring", "error", err)
		return nil
	}
	s.FromCache = true
	return &s
}

// Set stores the whole summary as one value; partial updates are never
// written.
func (c *ScoreHotCache) Set(ctx context.Context, s scores.ScoreSummary) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		c.log.Warn("Hot cache encode failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, scoreKey(s.DeptID, s.AcademicYear), raw, c.ttl).Err(); err != nil {
		c.log.Warn("Hot cache write failed", "error", err)
	}
}

// Delete drops the hot entry; called on every invalidation before the table
// row is touched.
func (c *ScoreHotCache) Delete(ctx context.Context, deptID int, academicYear string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, scoreKey(deptID, academicYear)).Err(); err != nil {
		c.log.Warn("Hot cache delete failed", "error", err)
	}
}

func (c *ScoreHotCache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
