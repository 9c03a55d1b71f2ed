// Package redis stores registry entries in a Redis hash, one field per
// instance. Use it when instances do not share a filesystem (containers,
// multiple hosts behind one registry).
package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/runreg/store"
)

var ErrNilClient = errors.New("redis store: nil client")

type Store struct {
	rdb         goredis.UniversalClient
	key         string
	closeClient bool
}

var _ store.Store = (*Store)(nil)

type Config struct {
	Client goredis.UniversalClient

	// Namespace isolates independent registries sharing one Redis.
	// Empty means "default".
	Namespace string

	// CloseClient should be true only if this store exclusively owns the
	// client.
	CloseClient bool
}

func New(cfg Config) (*Store, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	ns := cfg.Namespace
	if ns == "" {
		ns = "default"
	}
	return &Store{
		rdb:         cfg.Client,
		key:         "runreg:" + ns,
		closeClient: cfg.CloseClient,
	}, nil
}

func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	return s.rdb.HSet(ctx, s.key, name, data).Err()
}

func (s *Store) Delete(ctx context.Context, name string) error {
	// HDel on a missing field is a no-op, which matches the Store contract.
	return s.rdb.HDel(ctx, s.key, name).Err()
}

func (s *Store) List(ctx context.Context) (map[string][]byte, error) {
	raw, err := s.rdb.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(raw))
	for name, data := range raw {
		out[name] = []byte(data)
	}
	return out, nil
}

// Close releases the underlying client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (s *Store) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
