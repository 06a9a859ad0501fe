package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the connection handed to the session repository and the
// session store check
type Client interface {
	redis.UniversalClient
}
