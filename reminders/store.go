package reminders

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medremind/med-reminder-api/models"
)

// ErrIndexOutOfRange is returned when a positional mark-taken targets a
// slot past the end of the list
var ErrIndexOutOfRange = errors.New("reminder index out of range")

// ErrReminderNotFound is returned when a removal targets an unknown id
var ErrReminderNotFound = errors.New("reminder not found")

// Store persists the reminder list as one JSON document on disk. The whole
// list is read and rewritten on every mutation, so a single mutex
// serializes access. A missing or corrupt file reads as an empty list.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a reminder store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) load() []models.Reminder {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return []models.Reminder{}
	}
	var reminders []models.Reminder
	if err := json.Unmarshal(b, &reminders); err != nil {
		return []models.Reminder{}
	}
	return reminders
}

func (s *Store) save(reminders []models.Reminder) error {
	b, err := json.Marshal(reminders)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0644)
}

// Add appends a reminder, assigning an id and the creation date if unset,
// and returns the stored record
func (s *Store) Add(reminder models.Reminder) (models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reminder.ID == "" {
		reminder.ID = uuid.New().String()
	}
	if reminder.DateAdded == "" {
		reminder.DateAdded = time.Now().Format(time.RFC3339)
	}

	reminders := append(s.load(), reminder)
	if err := s.save(reminders); err != nil {
		return models.Reminder{}, err
	}
	return reminder, nil
}

// List returns every stored reminder in insertion order
func (s *Store) List() []models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// MarkTaken flips the reminder at the given position to taken. Position,
// not id: the reminder list screen addresses rows by index.
func (s *Store) MarkTaken(index int) (models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminders := s.load()
	if index < 0 || index >= len(reminders) {
		return models.Reminder{}, ErrIndexOutOfRange
	}

	reminders[index].Taken = true
	if err := s.save(reminders); err != nil {
		return models.Reminder{}, err
	}
	return reminders[index], nil
}

// Remove deletes the reminder with the given id
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminders := s.load()
	kept := make([]models.Reminder, 0, len(reminders))
	found := false
	for _, r := range reminders {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return ErrReminderNotFound
	}
	return s.save(kept)
}
