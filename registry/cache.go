/*
 *     Copyright 2024 The Mltemplate Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"

	"github.com/mltemplate/mltemplate/pkg/config"
	"github.com/mltemplate/mltemplate/registry/mlflow"
)

const (
	// Run prefix of cache key.
	RunNamespace = "run"
)

// Cache is cache client of terminated runs.
type Cache struct {
	*cache.Cache
	TTL time.Duration
}

// NewCache returns a two level cache, redis is skipped when no address is configured.
func NewCache(cfg config.CacheConfig) *Cache {
	opts := &cache.Options{
		LocalCache: cache.NewTinyLFU(cfg.Local.Size, cfg.Local.TTL),
	}

	if len(cfg.Redis.Addrs) > 0 {
		opts.Redis = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    cfg.Redis.Addrs,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	return &Cache{
		Cache: cache.New(opts),
		TTL:   cfg.Redis.TTL,
	}
}

// GetRun returns the cached run, the second value is false on a miss.
func (c *Cache) GetRun(ctx context.Context, runID string) (*mlflow.Run, bool) {
	var run mlflow.Run
	if err := c.Get(ctx, MakeRunCacheKey(runID), &run); err != nil {
		return nil, false
	}

	return &run, true
}

// SetRun caches a run if it reached a terminal status.
func (c *Cache) SetRun(ctx context.Context, run *mlflow.Run) error {
	if !run.Info.Status.IsTerminated() {
		return nil
	}

	return c.Set(&cache.Item{
		Ctx:   ctx,
		Key:   MakeRunCacheKey(run.Info.RunID),
		Value: run,
		TTL:   c.TTL,
	})
}

// Make cache key.
func MakeCacheKey(namespace string, id string) string {
	return fmt.Sprintf("registry:%s:%s", namespace, id)
}

// Make cache key for run.
func MakeRunCacheKey(runID string) string {
	return MakeCacheKey(RunNamespace, runID)
}
