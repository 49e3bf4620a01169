package storage

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/parkgrid-hq/parkgrid-service-clients/internal/domain"
)

const (
	latestBucket  = "status_latest"
	historyBucket = "status_history"
	historyTSLen  = 8
)

// boltStore implements a Store backed by BoltDB. The latest bucket
// keeps one record per service; the history bucket is time-ordered
// (8-byte big-endian unix-nano prefix) so expired entries cluster at
// the front of the cursor.
type boltStore struct {
	db              *bolt.DB
	cleanupMu       sync.Mutex
	lastCleanup     atomic.Int64
	historyTTL      time.Duration
	cleanupInterval time.Duration
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string, opts Options) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(latestBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists([]byte(historyBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}

	store := &boltStore{
		db:              db,
		historyTTL:      opts.HistoryTTL,
		cleanupInterval: opts.CleanupInterval,
	}
	store.lastCleanup.Store(time.Now().Unix())
	return store, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// LastStatus returns the most recently recorded status for a service.
func (b *boltStore) LastStatus(service string) (domain.ServiceStatus, bool, error) {
	if b == nil || b.db == nil {
		return domain.ServiceStatus{}, false, nil
	}

	var (
		status domain.ServiceStatus
		found  bool
	)
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(latestBucket))
		if bucket == nil {
			return fmt.Errorf("latest bucket missing")
		}
		value := bucket.Get([]byte(service))
		if value == nil {
			return nil
		}
		if err := json.Unmarshal(value, &status); err != nil {
			return fmt.Errorf("decode status for %q: %w", service, err)
		}
		found = true
		return nil
	})
	return status, found, err
}

// RecordStatus stores the status as the latest for its service and
// appends it to the history.
func (b *boltStore) RecordStatus(status domain.ServiceStatus) error {
	if b == nil || b.db == nil {
		return nil
	}

	now := time.Now()
	if status.CheckedAt.IsZero() {
		status.CheckedAt = now.UTC()
	}
	if err := b.maybeCleanupExpired(now); err != nil {
		return err
	}

	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("encode status: %w", err)
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		latest := tx.Bucket([]byte(latestBucket))
		if latest == nil {
			return fmt.Errorf("latest bucket missing")
		}
		if err := latest.Put([]byte(status.Service), payload); err != nil {
			return err
		}

		history := tx.Bucket([]byte(historyBucket))
		if history == nil {
			return fmt.Errorf("history bucket missing")
		}
		return history.Put(historyKey(status.Service, status.CheckedAt), payload)
	})
}

// History returns up to limit most recent records for a service,
// newest first. A non-positive limit returns everything retained.
func (b *boltStore) History(service string, limit int) ([]domain.ServiceStatus, error) {
	if b == nil || b.db == nil {
		return nil, nil
	}

	var out []domain.ServiceStatus
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(historyBucket))
		if bucket == nil {
			return fmt.Errorf("history bucket missing")
		}

		cursor := bucket.Cursor()
		for k, v := cursor.Last(); k != nil; k, v = cursor.Prev() {
			if !keyMatchesService(k, service) {
				continue
			}
			var status domain.ServiceStatus
			if err := json.Unmarshal(v, &status); err != nil {
				return fmt.Errorf("decode history entry: %w", err)
			}
			out = append(out, status)
			if limit > 0 && len(out) >= limit {
				return nil
			}
		}
		return nil
	})
	return out, err
}

// maybeCleanupExpired prunes history entries older than the TTL on a
// fixed cadence to avoid unbounded growth.
func (b *boltStore) maybeCleanupExpired(now time.Time) error {
	if b == nil || b.db == nil {
		return nil
	}

	last := time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	b.cleanupMu.Lock()
	defer b.cleanupMu.Unlock()

	last = time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	cutoff := now.Add(-b.historyTTL)
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(historyBucket))
		if bucket == nil {
			return fmt.Errorf("history bucket missing")
		}

		cursor := bucket.Cursor()
		for k, _ := cursor.First(); k != nil; k, _ = cursor.Next() {
			ts, ok := decodeHistoryTimestamp(k)
			if ok && ts.After(cutoff) {
				// Keys are time-ordered; everything after this is younger.
				break
			}
			if err := cursor.Delete(); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		b.lastCleanup.Store(now.Unix())
	}
	return err
}

// historyKey builds a time-ordered key: big-endian unix-nano prefix
// followed by the service name.
func historyKey(service string, ts time.Time) []byte {
	buf := make([]byte, historyTSLen+len(service))
	binary.BigEndian.PutUint64(buf, uint64(ts.UnixNano()))
	copy(buf[historyTSLen:], service)
	return buf
}

func keyMatchesService(key []byte, service string) bool {
	return len(key) >= historyTSLen && bytes.Equal(key[historyTSLen:], []byte(service))
}

// decodeHistoryTimestamp extracts the timestamp prefix from a history key.
func decodeHistoryTimestamp(key []byte) (time.Time, bool) {
	if len(key) < historyTSLen {
		return time.Time{}, false
	}
	nanos := int64(binary.BigEndian.Uint64(key[:historyTSLen]))
	if nanos <= 0 {
		return time.Time{}, false
	}
	return time.Unix(0, nanos), true
}
