package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the journal depends on. Single-node and
// cluster clients both satisfy it.
type Client interface {
	redis.UniversalClient
}

// IsNil reports whether err is the go-redis missing-key sentinel
func IsNil(err error) bool {
	return err == redis.Nil
}
