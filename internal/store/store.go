package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"personal-scheduler/internal/model"
)

var ErrInvalidInterval = errors.New("start time must be before end time")

// Store holds the full schedule in memory and mirrors every mutation to a
// single JSON file. One process, one writer; no locking.
type Store struct {
	path         string
	log          *zap.Logger
	appointments []model.Appointment

	now func() time.Time // swapped in tests
}

// New opens the store at path and loads it once. A missing file means an
// empty schedule.
func New(path string, logger *zap.Logger) *Store {
	s := &Store{path: path, log: logger, now: time.Now}
	s.Load()
	return s
}

// Load reads the backing file into memory. A corrupt file is logged and
// replaced by an empty schedule; the process never aborts on bad input.
func (s *Store) Load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("read schedule file", zap.String("path", s.path), zap.Error(err))
		}
		s.appointments = nil
		return
	}
	apts, err := decode(data)
	if err != nil {
		s.log.Warn("corrupt schedule file, starting empty",
			zap.String("path", s.path), zap.Error(err))
		s.appointments = nil
		return
	}
	s.appointments = apts
}

// Save overwrites the backing file with the full collection in store
// order. On failure the in-memory state is untouched; the mutation is
// simply not durable until a later save succeeds.
func (s *Store) Save() error {
	apts := s.appointments
	if apts == nil {
		apts = []model.Appointment{}
	}
	data, err := json.MarshalIndent(apts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Warn("save schedule file", zap.String("path", s.path), zap.Error(err))
		return fmt.Errorf("save schedule: %w", err)
	}
	return nil
}

// decode parses the file and validates each record against the schema.
// Unknown fields and records missing required fields make the whole file
// corrupt; optional fields default to empty strings.
func decode(data []byte) ([]model.Appointment, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var apts []model.Appointment
	if err := dec.Decode(&apts); err != nil {
		return nil, err
	}
	for i, a := range apts {
		if a.ID == "" {
			return nil, fmt.Errorf("record %d: missing id", i)
		}
		if a.Title == "" {
			return nil, fmt.Errorf("record %d: missing title", i)
		}
		if !a.EndTime.After(a.StartTime) {
			return nil, fmt.Errorf("record %d: start time not before end time", i)
		}
	}
	return apts, nil
}
