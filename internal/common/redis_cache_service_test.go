package common

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestRedisCacheService_UnreachableIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	svc := NewRedisCacheService(client)
	defer svc.Close()

	svc.Set("DEST_LHR", map[string]string{"city": "London"}, NoExpiration)

	if _, found := svc.Get("DEST_LHR"); found {
		t.Error("Expected miss when Redis is unreachable")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := svc.Ping(ctx); err == nil {
		t.Error("Expected ping error when Redis is unreachable")
	}
}
