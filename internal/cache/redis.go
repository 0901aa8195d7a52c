package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/flynow/config"
	"github.com/Domenick1991/flynow/internal/domain"
	"github.com/redis/go-redis/v9"
)

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

// FlightCache keeps the flight list in redis for the configured TTL.
type FlightCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewFlightCache(client *redis.Client, flightsTTL time.Duration) *FlightCache {
	return &FlightCache{client: client, flightsTTL: flightsTTL}
}

func (c *FlightCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *FlightCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

func (c *FlightCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// TokenStore is the redis-backed access-token registry shared across
// replicas. Tokens carry no expiry.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Add(ctx context.Context, token string) error {
	return s.client.Set(ctx, tokenKey(token), "issued", 0).Err()
}

func (s *TokenStore) Exists(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func flightsKey() string {
	return "cache:flights"
}

func tokenKey(token string) string {
	return "token:" + token
}
