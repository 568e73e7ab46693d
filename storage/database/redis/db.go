// Package redisdb provides Redis-backed repositories. Each store persists its
// full collection state as one namespaced record, rewritten synchronously on
// every mutation; the in-memory collection stays authoritative so a failed
// write never breaks an operation.
package redisdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"github.com/darasa-app/darasa/core"
)

func Open() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     core.Conf.Redis.Addr,
		Password: core.Conf.Redis.Password,
		DB:       core.Conf.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrap(err, "pinging redis")
	}
	return client, nil
}

// loadState restores a store's collection state from its record.
// A missing record leaves dest zero-valued: a fresh, empty store.
func loadState(client *redis.Client, key string, dest interface{}) error {
	data, err := client.Get(context.Background(), key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return errors.Wrapf(err, "loading %s", key)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return errors.Wrapf(err, "decoding %s", key)
	}
	return nil
}

// persistState rewrites a store's full collection state. Best-effort: failures
// are logged, never surfaced to the mutating operation.
func persistState(client *redis.Client, logger core.Logger, key string, state interface{}) {
	data, err := json.Marshal(state)
	if err != nil {
		logger.Error(fmt.Sprintf("encoding %s", key), err)
		return
	}
	if err := client.Set(context.Background(), key, data, 0).Err(); err != nil {
		logger.Error(fmt.Sprintf("persisting %s", key), err)
	}
}
