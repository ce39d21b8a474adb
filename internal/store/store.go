// Package store persists users and readings as indented JSON collections.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/johnconnor-sec/seer-go/internal/errors"
	"github.com/johnconnor-sec/seer-go/internal/output"
	"github.com/johnconnor-sec/seer-go/internal/tarot"
)

// Collection names double as file names under Data/.
const (
	UsersCollection    = "users"
	ReadingsCollection = "readings"
)

// User is a registered traveller.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	LastLogin    time.Time `json:"last_login"`
}

// DataService keeps users and readings in memory and writes each change through.
// Failures to read start a collection empty. A failed write is logged and
// returned, and the in-memory collection keeps its last saved state.
type DataService struct {
	dir    string
	logger *output.Logger

	mu       sync.Mutex
	users    []User
	readings []tarot.Reading
}

// NewDataService opens (creating if needed) <dataDir>/Data and loads both collections.
func NewDataService(dataDir string, logger *output.Logger) (*DataService, error) {
	dir := filepath.Join(dataDir, "Data")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.StorageWriteError(dir, err)
	}

	s := &DataService{
		dir:    dir,
		logger: logger.Component("store"),
	}
	s.users = LoadAll[User](s, UsersCollection)
	s.readings = LoadAll[tarot.Reading](s, ReadingsCollection)
	return s, nil
}

// Path returns the file backing a collection.
func (s *DataService) Path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// LoadAll reads a collection. A missing or unreadable file yields an empty list.
func LoadAll[T any](s *DataService, collection string) []T {
	path := s.Path(collection)
	log := s.logger.WithField("path", path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Info("collection file not found, starting empty")
		return []T{}
	}
	if err != nil {
		log.WithError(errors.Wrap(err, errors.StorageRead, "read failed")).Error("failed to load collection")
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.WithError(errors.Wrap(err, errors.StorageRead, "decode failed")).Error("failed to load collection")
		return []T{}
	}
	if items == nil {
		items = []T{}
	}

	log.Debug(fmt.Sprintf("loaded %d items", len(items)))
	return items
}

// SaveAll replaces a collection on disk. The file is swapped in by rename.
func SaveAll[T any](s *DataService, collection string, items []T) error {
	start := time.Now()
	path := s.Path(collection)
	log := s.logger.WithField("path", path)

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		log.WithError(err).Error("failed to encode collection")
		return errors.Wrap(err, errors.InternalError, "Failed to encode "+collection)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.WithError(err).Error("failed to save collection")
		return errors.StorageWriteError(path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		log.WithError(err).Error("failed to save collection")
		return errors.StorageWriteError(path, err)
	}

	log.LogDuration(fmt.Sprintf("saved %d items", len(items)), time.Since(start))
	return nil
}

// GetUser finds a user by name, ignoring case.
func (s *DataService) GetUser(username string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return User{}, false
}

// SaveUser inserts or replaces the user with the same ID and writes users.json.
func (s *DataService) SaveUser(user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.users), func(u User) bool { return u.ID == user.ID })
	next = append(next, user)
	if err := SaveAll(s, UsersCollection, next); err != nil {
		return err
	}
	s.users = next
	return nil
}

// AllUsers returns a copy of every user.
func (s *DataService) AllUsers() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.users)
}

// SaveReading appends a reading and writes readings.json.
func (s *DataService) SaveReading(reading tarot.Reading) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(slices.Clone(s.readings), reading)
	if err := SaveAll(s, ReadingsCollection, next); err != nil {
		return err
	}
	s.readings = next
	return nil
}

// UserReadings returns the user's readings, newest first.
func (s *DataService) UserReadings(userID uuid.UUID) []tarot.Reading {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []tarot.Reading
	for _, r := range s.readings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b tarot.Reading) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out
}
