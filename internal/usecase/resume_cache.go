package usecase

import (
	"context"
	"time"
)

type ResumeCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func resumeCacheKey(id string) string {
	return "resumes:" + id
}
