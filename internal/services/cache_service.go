package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"weather-widget/internal/kafka"
)

const DefaultTTL = 10 * time.Minute

// CacheService is a cache-aside lookup. Fresh results are published to Kafka
// when a producer is set (a syncer writes them back), otherwise written to
// the cache directly. Both cache and producer may be nil.
type CacheService[T any] struct {
	cache    Cache
	producer kafka.Publisher
	fetcher  Fetcher[T]
	ttl      time.Duration
}

func NewCacheService[T any](
	cache Cache,
	producer kafka.Publisher,
	fetcher Fetcher[T],
) *CacheService[T] {
	return &CacheService[T]{
		cache:    cache,
		producer: producer,
		fetcher:  fetcher,
		ttl:      DefaultTTL,
	}
}

func (s *CacheService[T]) Get(ctx context.Context, params ...string) (*T, error) {
	key := s.fetcher.CacheKey(params...)

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var result T
			if json.Unmarshal(data, &result) == nil {
				log.Printf("Cache HIT: %s", key)
				return &result, nil
			}
		}
	}

	result, err := s.fetcher.Fetch(ctx, params...)
	if err != nil {
		return nil, err
	}

	switch {
	case s.producer != nil:
		s.producer.PublishJSON(key, result)
	case s.cache != nil:
		s.store(ctx, key, result)
	}

	return result, nil
}

func (s *CacheService[T]) store(ctx context.Context, key string, result *T) {
	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("Marshal error: %v", err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		log.Printf("Cache SET error %s: %v", key, err)
	}
}
