// Package history keeps submitted lines in a bbolt database and exposes them
// as a completion source.
package history

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"
	bolt "go.etcd.io/bbolt"

	"github.com/oakwood-commons/listmenu/internal/limiter"
)

const bucketCmd = "cmd"

// ErrNotFound is returned when no entry has the requested sequence number.
var ErrNotFound = errors.New("history entry not found")

// Entry is one recorded line.
type Entry struct {
	Seq  int
	Text string
}

// Store is a bbolt-backed command history.
type Store struct {
	db  *bolt.DB
	log logr.Logger
}

// Open opens or creates the database at path, creating parent directories
// as needed.
func Open(path string, log logr.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open history %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history: %w", err)
	}
	log.V(1).Info("history opened", "path", path)
	return &Store{db: db, log: log}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add appends a line and returns its sequence number.
func (s *Store) Add(text string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		var err error
		seq, err = put(tx.Bucket([]byte(bucketCmd)), text)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add history entry: %w", err)
	}
	return int(seq), nil
}

func put(b *bolt.Bucket, text string) (uint64, error) {
	seq, err := b.NextSequence()
	if err != nil {
		return 0, err
	}
	return seq, b.Put(marshalSeq(seq), []byte(text))
}

// Import appends every non-blank line read from r in a single transaction
// and returns how many were added.
func (s *Store) Import(r io.Reader) (int, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read history input: %w", err)
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		for _, line := range lines {
			if _, err := put(b, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import history: %w", err)
	}
	s.log.V(1).Info("history imported", "entries", len(lines))
	return len(lines), nil
}

// Get returns the line with the given sequence number.
func (s *Store) Get(seq int) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketCmd)).Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNotFound
		}
		text = string(v)
		return nil
	})
	return text, err
}

// Delete removes the line with the given sequence number.
func (s *Store) Delete(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		key := marshalSeq(uint64(seq))
		if b.Get(key) == nil {
			return ErrNotFound
		}
		return b.Delete(key)
	})
}

// Len returns the number of stored lines.
func (s *Store) Len() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucketCmd)).Stats().KeyN
		return nil
	})
	return n, err
}

// List returns entries oldest first, windowed by the limiter configuration.
func (s *Store) List(window limiter.Config) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketCmd)).ForEach(func(k, v []byte) error {
			entries = append(entries, Entry{Seq: int(unmarshalSeq(k)), Text: string(v)})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return limiter.Apply(window, entries), nil
}

// walkNewest calls fn for each entry from newest to oldest until it returns false.
func (s *Store) walkNewest(fn func(Entry) bool) error {
	return s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketCmd)).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if !fn(Entry{Seq: int(unmarshalSeq(k)), Text: string(v)}) {
				return nil
			}
		}
		return nil
	})
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
