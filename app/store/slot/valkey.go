package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/valkey-io/valkey-go"
)

// Valkey keeps values as plain strings in valkey (or redis)
type Valkey struct {
	client valkey.Client
}

// NewValkey connects to the valkey server at addr (host:port)
func NewValkey(addr string) (*Valkey, error) {
	if addr == "" {
		return nil, errors.New("valkey address is not set")
	}
	client, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{addr}})
	if err != nil {
		return nil, fmt.Errorf("failed to create valkey client: %w", err)
	}
	return &Valkey{client: client}, nil
}

// NewValkeyWithClient wraps an existing client
func NewValkeyWithClient(client valkey.Client) *Valkey {
	return &Valkey{client: client}
}

// Get returns the value stored under key
func (v *Valkey) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := v.client.Do(ctx, v.client.B().Get().Key(key).Build()).AsBytes()
	if valkey.IsValkeyNil(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return data, nil
}

// Put sets the value without expiration
func (v *Valkey) Put(ctx context.Context, key string, data []byte) error {
	if err := v.client.Do(ctx, v.client.B().Set().Key(key).Value(valkey.BinaryString(data)).Build()).Error(); err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

// Driver returns DriverValkey
func (v *Valkey) Driver() Driver { return DriverValkey }

// Close closes the client
func (v *Valkey) Close() error {
	v.client.Close()
	return nil
}
