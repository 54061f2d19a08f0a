// Package redis provides Redis client initialization and health checking for the Redis
// pub/sub source.
//
// Connect creates a go-redis client, validates the connection URL and verifies
// connectivity with PING, retrying with exponential backoff:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	orders := source.Redis(client, []string{"orders"})
//
// # Configuration
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//	}
//
// Both redis:// and rediss:// (TLS) URLs are accepted; go-redis query parameters such
// as dial_timeout are honored.
//
// # Health Checking
//
//	check := redis.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		log.Error("redis unhealthy", logger.Error(err))
//	}
//
// # Error Handling
//
//   - ErrFailedToParseRedisConnString: the connection URL is malformed
//   - ErrRedisNotReady: Redis did not answer PING within the retry budget
//   - ErrEmptyConnectionURL: no connection URL was provided
//   - ErrHealthcheckFailed: the health check ping failed
package redis
