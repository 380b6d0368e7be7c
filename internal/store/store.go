// Package store owns the activity log and keeps its persisted copy in sync.
//
// The log is read from a single slot once, when the store is loaded, and the
// whole log is written back after every successful mutation. There is no
// delta persistence and no schema version in the stored value.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"

	"github.com/balkashynov/safehours/internal/db"
	"github.com/balkashynov/safehours/internal/models"
)

// DefaultKey is the slot the log lives in unless configured otherwise
const DefaultKey = "activities"

var (
	// ErrIncompleteRecord is returned by Add when a field is empty. The log is unchanged.
	ErrIncompleteRecord = errors.New("activity record is incomplete")

	// ErrIndexOutOfRange is returned by Delete for an index outside the log. The log is unchanged.
	ErrIndexOutOfRange = errors.New("activity index out of range")

	// ErrMalformedLog is returned by Load when the stored value cannot be decoded.
	// The store still ends up holding an empty log.
	ErrMalformedLog = errors.New("stored activity log is malformed")

	// ErrPersist wraps write failures. The in-memory log has already been replaced.
	ErrPersist = errors.New("failed to persist activity log")
)

// Store holds the activity log. It is not safe for concurrent use.
type Store struct {
	slot   db.Slot
	key    string
	logger *slog.Logger
	log    models.ActivityLog
}

// New creates a store over slot. Call Load before reading records.
func New(slot db.Slot, key string, logger *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	return &Store{
		slot:   slot,
		key:    key,
		logger: logger,
		log:    models.ActivityLog{},
	}
}

// Load reads the persisted log. A missing slot yields an empty log and no error.
func (s *Store) Load() error {
	s.log = models.ActivityLog{}

	data, err := s.slot.Get(s.key)
	if errors.Is(err, db.ErrNotFound) {
		s.logger.Debug("no stored activity log", "key", s.key)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read activity log: %w", err)
	}

	var log models.ActivityLog
	if err := json.Unmarshal(data, &log); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedLog, err)
	}
	if log == nil {
		// a stored JSON null decodes to a nil slice
		log = models.ActivityLog{}
	}

	s.log = log
	s.logger.Debug("loaded activity log", "key", s.key, "records", len(log))
	return nil
}

// Records returns a copy of the log in display order
func (s *Store) Records() models.ActivityLog {
	out := make(models.ActivityLog, len(s.log))
	copy(out, s.log)
	return out
}

// Len returns the number of records in the log
func (s *Store) Len() int {
	return len(s.log)
}

// Add appends candidate, re-sorts and persists.
// An incomplete candidate leaves the log untouched.
func (s *Store) Add(candidate models.ActivityRecord) (models.ActivityLog, error) {
	if !candidate.Complete() {
		return s.Records(), ErrIncompleteRecord
	}

	next := make(models.ActivityLog, 0, len(s.log)+1)
	next = append(next, s.log...)
	next = append(next, candidate)

	err := s.commit(next)
	s.logger.Info("added activity",
		"date", candidate.Date,
		"start", candidate.Start,
		"end", candidate.End,
		"activity", candidate.Activity)
	return s.Records(), err
}

// Delete removes the record at index (display order), re-sorts and persists.
// An index outside the log leaves it untouched.
func (s *Store) Delete(index int) (models.ActivityLog, error) {
	if index < 0 || index >= len(s.log) {
		return s.Records(), fmt.Errorf("%w: %d (log has %d records)", ErrIndexOutOfRange, index, len(s.log))
	}

	removed := s.log[index]
	next := make(models.ActivityLog, 0, len(s.log)-1)
	next = append(next, s.log[:index]...)
	next = append(next, s.log[index+1:]...)

	err := s.commit(next)
	s.logger.Info("deleted activity", "index", index, "date", removed.Date, "start", removed.Start)
	return s.Records(), err
}

// Replace swaps the whole log for records, sorted, and persists it
func (s *Store) Replace(records models.ActivityLog) error {
	next := make(models.ActivityLog, len(records))
	copy(next, records)
	return s.commit(next)
}

// commit sorts next, installs it as the current log and writes it out
func (s *Store) commit(next models.ActivityLog) error {
	Sort(next)
	s.log = next

	data, err := json.Marshal(s.log)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := s.slot.Put(s.key, data); err != nil {
		s.logger.Warn("failed to persist activity log", "key", s.key, "error", err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// Sort orders log most recent first by (date, start).
// Records sharing a key keep their relative order.
func Sort(log models.ActivityLog) {
	sort.SliceStable(log, func(i, j int) bool {
		return log[i].SortKey() > log[j].SortKey()
	})
}

// IsSorted reports whether log is in display order
func IsSorted(log models.ActivityLog) bool {
	for i := 1; i < len(log); i++ {
		if log[i-1].SortKey() < log[i].SortKey() {
			return false
		}
	}
	return true
}
