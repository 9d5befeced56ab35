package services

import "context"

type Fetcher[T any] interface {
	CacheKey(params ...string) string
	Fetch(ctx context.Context, params ...string) (*T, error)
}
