package models

import (
	"sync"

	"lingrow/internal/suggest"
)

// DraftState remembers the last preview shown in a write window.
type DraftState struct {
	mu      sync.RWMutex
	kind    suggest.Kind
	preview string
	set     bool
}

func NewDraftState() *DraftState {
	return &DraftState{}
}

func (d *DraftState) SetPreview(kind suggest.Kind, preview string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.kind = kind
	d.preview = preview
	d.set = true
}

// Preview returns the last preview and its kind. ok is false before the first suggestion.
func (d *DraftState) Preview() (kind suggest.Kind, preview string, ok bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.kind, d.preview, d.set
}

func (d *DraftState) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.kind = 0
	d.preview = ""
	d.set = false
}
