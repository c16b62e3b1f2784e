package service

import (
	"context"
	"encoding/json"
	"time"

	"go-iptv-portal/model"
	"go-iptv-portal/repository"
)

const channelCacheKey = "channels:catalog"

// ChannelService serves the public projection of the channel catalog,
// utilizing a cache-aside strategy when a cache client is configured.
type ChannelService struct {
	repo     repository.IChannelRepository
	cache    ICacheClient
	cacheTTL time.Duration
}

// NewChannelService creates a ChannelService. A nil cache disables caching;
// every call then reads through to the repository.
func NewChannelService(repo repository.IChannelRepository, cache ICacheClient, cacheTTL time.Duration) *ChannelService {
	return &ChannelService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// ListChannels returns the catalog projected down to public fields. The
// projection happens before anything touches the cache, so the cache never
// holds fields a client must not see.
func (s *ChannelService) ListChannels() ([]model.ChannelSummary, error) {
	ctx := context.Background()

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, channelCacheKey).Result(); err == nil {
			var summaries []model.ChannelSummary
			if err := json.Unmarshal([]byte(cached), &summaries); err == nil {
				return summaries, nil
			}
		}
	}

	channels, err := s.repo.GetChannels()
	if err != nil {
		return nil, err
	}

	summaries := make([]model.ChannelSummary, 0, len(channels))
	for _, ch := range channels {
		summaries = append(summaries, ch.Summary())
	}

	if s.cache != nil {
		if data, err := json.Marshal(summaries); err == nil {
			s.cache.Set(ctx, channelCacheKey, data, s.cacheTTL)
		}
	}

	return summaries, nil
}
