package services

import (
	"context"

	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
	"github.com/yungbote/zoomtube-backend/internal/platform/youtube"
)

// CaptionSource is the external captions service as the services see it.
// *youtube.TimedTextClient satisfies it.
type CaptionSource interface {
	FetchCaptions(ctx context.Context, videoID, lang string) (*youtube.TimedText, error)
	ListTracks(ctx context.Context, videoID string) ([]youtube.Track, error)
	DefaultLang() string
}

// TrackCache keeps caption track listings between requests.
type TrackCache interface {
	GetTracks(ctx context.Context, videoID string) ([]youtube.Track, bool, error)
	SetTracks(ctx context.Context, videoID string, tracks []youtube.Track) error
}

type cachedCaptionSource struct {
	CaptionSource
	cache TrackCache
	log   *logger.Logger
}

// NewCachedCaptionSource serves ListTracks from cache when possible. Cache
// errors degrade to a direct lookup. Empty listings are not cached since
// captions may be added to a video later.
func NewCachedCaptionSource(log *logger.Logger, inner CaptionSource, cache TrackCache) CaptionSource {
	return &cachedCaptionSource{
		CaptionSource: inner,
		cache:         cache,
		log:           log.With("service", "CachedCaptionSource"),
	}
}

func (c *cachedCaptionSource) ListTracks(ctx context.Context, videoID string) ([]youtube.Track, error) {
	tracks, ok, err := c.cache.GetTracks(ctx, videoID)
	if err != nil {
		c.log.Warn("Track cache read failed", "video_id", videoID, "error", err)
	}
	if ok {
		return tracks, nil
	}
	tracks, err = c.CaptionSource.ListTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if len(tracks) > 0 {
		if err := c.cache.SetTracks(ctx, videoID, tracks); err != nil {
			c.log.Warn("Track cache write failed", "video_id", videoID, "error", err)
		}
	}
	return tracks, nil
}
