// Package jsonstore is the durable record store: one JSON file per
// collection, replaced whole on every write. There are no row-level
// transactions; callers get atomicity per collection via the temp-file rename
// in SaveAll and serialization via per-collection locks.
package jsonstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"studiobook/internal/infra"
)

type Collection string

const (
	CollectionRequests Collection = "booking-requests"
	CollectionBookings Collection = "bookings"
	CollectionUsers    Collection = "users"
	CollectionStudios  Collection = "studios"
	CollectionFollows  Collection = "follows"
)

// envelopeKeys maps a collection to the wrapper key inside its file, matching
// the historical file shapes ({"bookings": [...]} and so on).
var envelopeKeys = map[Collection]string{
	CollectionRequests: "bookingRequests",
	CollectionBookings: "bookings",
	CollectionUsers:    "users",
	CollectionStudios:  "studios",
	CollectionFollows:  "follows",
}

type Store struct {
	dir    string
	logger *slog.Logger

	mu    sync.Mutex
	locks map[Collection]*sync.Mutex
}

func NewStore(dir string, logger *slog.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
		locks:  make(map[Collection]*sync.Mutex),
	}
}

func (s *Store) path(c Collection) string {
	return filepath.Join(s.dir, string(c)+".json")
}

func (s *Store) lock(c Collection) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[c]
	if !ok {
		l = &sync.Mutex{}
		s.locks[c] = l
	}
	return l
}

// Load reads a whole collection. A missing file is an empty collection, not
// an error. Legacy bare-array files (no envelope) are accepted.
func Load[T any](s *Store, c Collection) ([]T, error) {
	data, err := os.ReadFile(s.path(c))
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, infra.WrapStoreErr(s.logger, infra.KindPersistenceFailure, "read collection "+string(c), err)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err == nil {
		raw, ok := envelope[envelopeKeys[c]]
		if !ok {
			return []T{}, nil
		}
		var records []T
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, infra.WrapStoreErr(s.logger, infra.KindCorruptData, "decode collection "+string(c), err)
		}
		return records, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindCorruptData, "decode collection "+string(c), err)
	}
	return records, nil
}

// SaveAll replaces the collection under its lock. The payload lands in a
// temp file first and is renamed into place, so readers never observe a torn
// write.
func SaveAll[T any](s *Store, c Collection, records []T) error {
	l := s.lock(c)
	l.Lock()
	defer l.Unlock()
	return saveLocked(s, c, records)
}

// saveLocked writes the collection file. Callers hold the collection lock.
func saveLocked[T any](s *Store, c Collection, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.MarshalIndent(map[string][]T{envelopeKeys[c]: records}, "", "  ")
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindPersistenceFailure, "encode collection "+string(c), err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindPersistenceFailure, "create data dir", err)
	}

	tmp, err := os.CreateTemp(s.dir, string(c)+"-*.tmp")
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindPersistenceFailure, "create temp file for "+string(c), err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return infra.WrapStoreErr(s.logger, infra.KindPersistenceFailure, "write collection "+string(c), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return infra.WrapStoreErr(s.logger, infra.KindPersistenceFailure, "flush collection "+string(c), err)
	}
	if err := os.Rename(tmpName, s.path(c)); err != nil {
		os.Remove(tmpName)
		return infra.WrapStoreErr(s.logger, infra.KindPersistenceFailure, "replace collection "+string(c), err)
	}
	return nil
}

// Update runs a read-modify-write cycle under the collection's lock. The
// store has no row locking, so every mutation of a collection goes through
// here to prevent lost updates between concurrent writers.
func Update[T any](s *Store, c Collection, fn func(records []T) ([]T, error)) error {
	l := s.lock(c)
	l.Lock()
	defer l.Unlock()

	records, err := Load[T](s, c)
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return saveLocked(s, c, updated)
}

// Backup copies the collection file aside before destructive maintenance.
// Returns the backup path, or "" when there is nothing to back up.
func (s *Store) Backup(c Collection, suffix string) (string, error) {
	src := s.path(c)
	data, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", infra.WrapStoreErr(s.logger, infra.KindPersistenceFailure, "read collection for backup", err)
	}
	dst := src + ".backup." + suffix
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", infra.WrapStoreErr(s.logger, infra.KindPersistenceFailure, "write backup file", err)
	}
	return dst, nil
}
