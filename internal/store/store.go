package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"lingrow/internal/logger"
)

const (
	DefaultPath = "saved_texts.json"
	component   = "Store"
)

var ErrMalformed = errors.New("malformed store file")

// Store appends entries to a JSON array file. The whole file is rewritten in
// place on every save; there is no cross-process locking.
type Store struct {
	path   string
	logger logger.Logger
	now    func() time.Time
	mu     sync.Mutex
}

type Option func(*Store)

// WithClock overrides time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(path string, log logger.Logger, opts ...Option) *Store {
	if path == "" {
		path = DefaultPath
	}
	if log == nil {
		log = logger.Nop{}
	}
	s := &Store{path: path, logger: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Path() string {
	return s.path
}

// Read returns every entry in file order. A missing file is an empty store.
func (s *Store) Read() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return []Entry{}, fmt.Errorf("read store: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return []Entry{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Load is Read with failures absorbed: anything unreadable is an empty store.
func (s *Store) Load() []Entry {
	entries, err := s.Read()
	if err != nil {
		s.logger.Warning(component, "store unreadable, treating as empty", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
	}
	return entries
}

// Save appends a new entry stamped with the current time and rewrites the file.
func (s *Store) Save(title, original string, suggestions interface{}) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.Load()
	entry := Entry{
		Title:       title,
		Original:    original,
		Suggestions: suggestions,
		Timestamp:   epochSeconds(s.now()),
	}
	entries = append(entries, entry)

	data, err := Encode(entries)
	if err != nil {
		return Entry{}, fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return Entry{}, fmt.Errorf("write store: %w", err)
	}

	s.logger.Debug(component, "entry saved", map[string]interface{}{
		"path":    s.path,
		"title":   title,
		"entries": len(entries),
	})
	return entry, nil
}

// Recent returns up to n entries, newest first. n <= 0 returns all of them.
func (s *Store) Recent(n int) []Entry {
	entries := s.Load()
	if n <= 0 || n > len(entries) {
		n = len(entries)
	}
	recent := make([]Entry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		recent = append(recent, entries[i])
	}
	return recent
}

// Encode renders entries in the store file format: two-space indented JSON
// with non-ASCII and HTML characters written literally.
func Encode(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into literal runes. Other escapes are copied as is.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c != '\\' || i+1 >= len(data) {
			out = append(out, c)
			continue
		}
		if data[i+1] == 'u' && i+6 <= len(data) {
			switch string(data[i+2 : i+6]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, c, data[i+1])
		i++
	}
	return out
}
