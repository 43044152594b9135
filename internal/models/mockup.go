package models

import (
	"image"
	"path/filepath"
	"sync"
	"time"
)

// UntitledTitle is the save title used while no image is loaded.
const UntitledTitle = "untitled"

// Mockup is one decoded image plus the thumbnails the home screen shows.
type Mockup struct {
	Path     string
	Format   string
	Image    image.Image
	Logo     image.Image
	Card     image.Image
	LoadTime time.Time
}

// Width and Height of the decoded source image.
func (m *Mockup) Width() int  { return m.Image.Bounds().Dx() }
func (m *Mockup) Height() int { return m.Image.Bounds().Dy() }

// MockupState holds the image shown by one window.
type MockupState struct {
	mu      sync.RWMutex
	current *Mockup
}

func NewMockupState() *MockupState {
	return &MockupState{}
}

// Set replaces the current mockup. A nil mockup clears the state.
func (s *MockupState) Set(m *Mockup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = m
}

// Current returns the loaded mockup, or nil.
func (s *MockupState) Current() *Mockup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *MockupState) Loaded() bool {
	return s.Current() != nil
}

// Title is the base name of the loaded image path, or UntitledTitle.
func (s *MockupState) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.current.Path == "" {
		return UntitledTitle
	}
	return filepath.Base(s.current.Path)
}
