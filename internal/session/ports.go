package session

import (
	"context"
	"time"

	tokenIssuer "todolist/pkg/jwt"

	"github.com/redis/go-redis/v9"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RedisClient . RedisClient
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CookieSigner signs the session id carried by the cookie. Implemented by pkg/jwt.
type CookieSigner interface {
	Issue(data tokenIssuer.TokenInfo) (string, error)
	ValidateSubject(token, audience string) (string, error)
}
