package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// summaryFile is the on-disk shape of the preference summary.
type summaryFile struct {
	Preferences Counters `json:"preferences"`
}

// FileStore keeps the preference summary in a JSON file and the raw
// feedback log in a JSONL file alongside it. Reads always go to disk so
// the files stay the source of truth across processes.
type FileStore struct {
	summaryPath string
	logPath     string
	mu          sync.RWMutex
}

// NewFileStore creates a file-backed store. The files are created lazily
// on first write.
func NewFileStore(summaryPath, logPath string) *FileStore {
	return &FileStore{
		summaryPath: summaryPath,
		logPath:     logPath,
	}
}

func (s *FileStore) Load(ctx context.Context) (Counters, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.summaryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Counters{}, nil
		}
		return nil, fmt.Errorf("failed to read feedback summary: %w", err)
	}

	var summary summaryFile
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse feedback summary: %w", err)
	}
	if summary.Preferences == nil {
		summary.Preferences = Counters{}
	}
	return summary.Preferences, nil
}

func (s *FileStore) Save(ctx context.Context, counters Counters) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(summaryFile{Preferences: counters}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal feedback summary: %w", err)
	}
	if err := os.WriteFile(s.summaryPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write feedback summary: %w", err)
	}
	return nil
}

func (s *FileStore) Append(ctx context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := json.Marshal(newLogEntry(event))
	if err != nil {
		return fmt.Errorf("failed to marshal feedback event: %w", err)
	}

	f, err := os.OpenFile(s.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open feedback log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append feedback event: %w", err)
	}
	return nil
}
