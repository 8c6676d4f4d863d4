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

package model

import (
	"sync"

	"github.com/mltemplate/mltemplate/internal/mlerrors"
)

// Cache owns the loaded models and the default model. Entries are never evicted.
type Cache struct {
	mu         sync.RWMutex
	models     map[string]Model
	defaultKey string
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		models: map[string]Model{},
	}
}

// Key returns the "name/version" key of a model.
func Key(name, version string) string {
	return name + "/" + version
}

// Store adds the model and makes it the default.
func (c *Cache) Store(m Model) string {
	key := Key(m.Name(), m.Version())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.models[key] = m
	c.defaultKey = key
	return key
}

// Resolve returns the model stored under key, falling back to the default model.
func (c *Cache) Resolve(key string) (Model, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if m, ok := c.models[key]; ok && key != "" {
		return m, nil
	}

	if m, ok := c.models[c.defaultKey]; ok {
		return m, nil
	}

	return nil, mlerrors.ErrNoModelLoaded
}

// Default returns the key of the default model, empty when none is loaded.
func (c *Cache) Default() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.defaultKey
}

// Keys returns the keys of all loaded models.
func (c *Cache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.models))
	for key := range c.models {
		keys = append(keys, key)
	}

	return keys
}
