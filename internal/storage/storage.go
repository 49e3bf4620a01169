package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/parkgrid-hq/parkgrid-service-clients/internal/domain"
)

// Package storage provides the local status DB abstraction.

// Store persists probe outcomes per service.
type Store interface {
	Close() error
	LastStatus(service string) (domain.ServiceStatus, bool, error)
	RecordStatus(status domain.ServiceStatus) error
	History(service string, limit int) ([]domain.ServiceStatus, error)
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	HistoryTTL      time.Duration
	CleanupInterval time.Duration
}

const (
	defaultHistoryTTL      = 7 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.HistoryTTL <= 0 {
		opts.HistoryTTL = defaultHistoryTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error { return nil }
func (noopStore) LastStatus(string) (domain.ServiceStatus, bool, error) {
	return domain.ServiceStatus{}, false, nil
}
func (noopStore) RecordStatus(domain.ServiceStatus) error { return nil }
func (noopStore) History(string, int) ([]domain.ServiceStatus, error) {
	return nil, nil
}
