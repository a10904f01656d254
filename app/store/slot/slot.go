// Package slot provides persistent single-value holders used by the employee store.
// Each driver keeps opaque byte values under string keys and reports a missing key with ErrNotFound.
package slot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNotFound returned by Get if nothing was stored under the key
var ErrNotFound = errors.New("slot value not found")

// Driver is the kind of slot backend
type Driver string

// supported drivers
const (
	DriverMemory   Driver = "memory"
	DriverFile     Driver = "file"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverValkey   Driver = "valkey"
	DriverS3       Driver = "s3"
)

// Slot is a key-value holder with driver info, closed when not needed anymore
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Driver() Driver
	io.Closer
}

// Config defines slot backend and its parameters. Only fields of the selected driver are used.
type Config struct {
	Driver Driver
	Path   string // file directory or sqlite db path
	URL    string // postgres connection string or valkey address
	S3     S3Config
}

// Open makes a slot for the configured driver
func Open(ctx context.Context, cfg Config) (Slot, error) {
	switch Driver(strings.ToLower(string(cfg.Driver))) {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		return NewFile(cfg.Path)
	case DriverSQLite, "":
		return NewSQLite(ctx, cfg.Path)
	case DriverPostgres:
		return NewPostgres(ctx, cfg.URL)
	case DriverValkey:
		return NewValkey(cfg.URL)
	case DriverS3:
		return NewS3(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported slot driver %q", cfg.Driver)
	}
}
