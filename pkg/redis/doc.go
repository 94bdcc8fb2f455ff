// Package redis connects to the optional Redis server that lets dashboard
// replicas share the data-quality summary cache.
//
// Redis is off unless REDIS_URL is set; callers check Config.Enabled and fall
// back to an in-process cache otherwise.
//
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer client.Close()
//
//		storage := redis.NewStorageWithConfig(client, cfg)
//		cache := quality.NewRedisCache(storage, 30*time.Second)
//	}
//
// Storage prefixes every key, so Reset clears only what it wrote.
package redis
