package advicestore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/aqisense/aqi-sense/internal/domain/advice"
)

// ValkeyStore shares the advice cache across replicas using a
// Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "advice"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements advice.Store.
func (s *ValkeyStore) Get(ctx context.Context, key string) (advice.Advice, bool, error) {
	cmd := s.client.B().Get().Key(s.entryKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return advice.Advice{}, false, nil
		}
		return advice.Advice{}, false, err
	}
	var value advice.Advice
	if err := json.Unmarshal([]byte(payload), &value); err != nil {
		return advice.Advice{}, false, err
	}
	return value, true, nil
}

// Save implements advice.Store.
func (s *ValkeyStore) Save(ctx context.Context, key string, value advice.Advice, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	builder := s.client.B().Set().Key(s.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(key string) string {
	return fmt.Sprintf("%s:entry:%s", s.prefix, key)
}

var _ advice.Store = (*ValkeyStore)(nil)
