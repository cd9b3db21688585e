package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"petStayWs/internal/modules/booking/domain"
	"petStayWs/internal/shared/normalization"
)

const unavailableDatesKey = "petstay:unavailable-dates"

// RedisFallback mirrors the unavailable-date set into redis so the registry
// can keep answering when the booking API is unreachable. The mirror is read
// only as a fallback and is never preferred over a successful remote fetch.
type RedisFallback struct {
	client *redis.Client
}

// NewRedisFallback wraps an existing client. Returns nil when the client is
// nil so callers can wire the mirror optionally and degrade gracefully.
func NewRedisFallback(client *redis.Client) *RedisFallback {
	if client == nil {
		return nil
	}
	return &RedisFallback{client: client}
}

// NewRedisClient connects to redis using the given address and credentials.
// Returns nil when the server cannot be reached; the fallback mirror is then
// simply disabled.
func NewRedisClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

// SaveUnavailableDates replaces the mirrored set wholesale.
func (f *RedisFallback) SaveUnavailableDates(ctx context.Context, days []time.Time) error {
	members := make([]any, 0, len(days))
	for _, day := range days {
		if key := domain.FormatAPIDate(day); key != "" {
			members = append(members, key)
		}
	}
	pipe := f.client.TxPipeline()
	pipe.Del(ctx, unavailableDatesKey)
	if len(members) > 0 {
		pipe.SAdd(ctx, unavailableDatesKey, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("mirror unavailable dates: %w", err)
	}
	return nil
}

// LoadUnavailableDates reads the mirrored set.
func (f *RedisFallback) LoadUnavailableDates(ctx context.Context) ([]time.Time, error) {
	members, err := f.client.SMembers(ctx, unavailableDatesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read unavailable dates mirror: %w", err)
	}
	days := make([]time.Time, 0, len(members))
	for _, member := range members {
		if day, ok := domain.NormalizeDate(normalization.AsString(member)); ok {
			days = append(days, day)
		}
	}
	return days, nil
}
