package duplicate

import (
	"issue-intelligence/internal/gateway"
	"issue-intelligence/pkg/log"
)

// Config tunes the detector. Zero values take the defaults.
type Config struct {
	CacheSize  int // bounded LRU entries, default 2048
	Dimensions int // embedding vector size, default 1024
}

const (
	defaultCacheSize  = 2048
	defaultDimensions = 1024
)

type service struct {
	gw    gateway.ModelGateway
	cache *embeddingCache
	dims  int
	l     log.Logger
}

// New creates the duplicate detection Service.
func New(l log.Logger, gw gateway.ModelGateway, cfg Config) (Service, error) {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.Dimensions <= 0 {
		cfg.Dimensions = defaultDimensions
	}

	cache, err := newEmbeddingCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	return &service{
		gw:    gw,
		cache: cache,
		dims:  cfg.Dimensions,
		l:     l,
	}, nil
}
