package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
	"github.com/yungbote/zoomtube-backend/internal/platform/youtube"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Connect dials Redis and pings it. Callers own Close.
func Connect(ctx context.Context, log *logger.Logger, cfg RedisConfig) (*goredis.Client, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Info("Connected to Redis", "addr", addr, "db", cfg.DB)
	return rdb, nil
}

// TrackCache stores caption track listings per video id.
type TrackCache struct {
	rdb    goredis.Cmdable
	log    *logger.Logger
	ttl    time.Duration
	prefix string
}

func NewTrackCache(log *logger.Logger, rdb goredis.Cmdable, ttl time.Duration) *TrackCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TrackCache{
		rdb:    rdb,
		log:    log.With("cache", "TrackCache"),
		ttl:    ttl,
		prefix: "zoomtube:tracks:",
	}
}

func (c *TrackCache) key(videoID string) string { return c.prefix + videoID }

// GetTracks reports ok=false on a miss.
func (c *TrackCache) GetTracks(ctx context.Context, videoID string) ([]youtube.Track, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(videoID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get tracks: %w", err)
	}
	var tracks []youtube.Track
	if err := json.Unmarshal(raw, &tracks); err != nil {
		// Unreadable entries are treated as misses and overwritten.
		c.log.Warn("Dropping unreadable track cache entry", "video_id", videoID, "error", err)
		return nil, false, nil
	}
	return tracks, true, nil
}

func (c *TrackCache) SetTracks(ctx context.Context, videoID string, tracks []youtube.Track) error {
	raw, err := json.Marshal(tracks)
	if err != nil {
		return err
	}
	if err := c.rdb.Set(ctx, c.key(videoID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set tracks: %w", err)
	}
	return nil
}
