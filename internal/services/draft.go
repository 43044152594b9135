package services

import (
	"fmt"
	"strings"

	"lingrow/internal/logger"
	"lingrow/internal/models"
	"lingrow/internal/store"
	"lingrow/internal/suggest"
)

const draftComponent = "DraftService"

// Preview is a labelled suggestion as shown in the write window.
type Preview struct {
	Kind    suggest.Kind
	Input   string
	Output  string
	Text    string
	Changes []suggest.Change
}

// FormatPreview renders the header line followed by the suggestion.
func FormatPreview(kind suggest.Kind, output string) string {
	return fmt.Sprintf("--- %s ---\n%s", kind, output)
}

// DraftService runs suggestions and saves drafts to the store.
type DraftService struct {
	store  *store.Store
	draft  *models.DraftState
	logger logger.Logger
}

func NewDraftService(st *store.Store, draft *models.DraftState, log logger.Logger) *DraftService {
	if log == nil {
		log = logger.Nop{}
	}
	return &DraftService{store: st, draft: draft, logger: log}
}

// Suggest rewrites the trimmed text. ok is false when there is nothing to rewrite.
func (ds *DraftService) Suggest(kind suggest.Kind, text string) (Preview, bool) {
	input := strings.TrimSpace(text)
	if input == "" {
		return Preview{}, false
	}

	output, err := suggest.Apply(kind, input)
	if err != nil {
		ds.logger.Warning(draftComponent, "suggestion failed", map[string]interface{}{
			"kind":  kind.String(),
			"error": err.Error(),
		})
		return Preview{}, false
	}

	p := Preview{
		Kind:    kind,
		Input:   input,
		Output:  output,
		Text:    FormatPreview(kind, output),
		Changes: suggest.Diff(input, output),
	}
	ds.draft.SetPreview(kind, p.Text)
	ds.logger.Debug(draftComponent, "suggestion shown", map[string]interface{}{
		"kind":  kind.String(),
		"chars": len(input),
	})
	return p, true
}

// Save stores the trimmed original with {"preview": trimmed preview}.
func (ds *DraftService) Save(title, original, preview string) (store.Entry, error) {
	suggestions := map[string]interface{}{
		"preview": strings.TrimSpace(preview),
	}
	entry, err := ds.store.Save(title, strings.TrimSpace(original), suggestions)
	if err != nil {
		return store.Entry{}, fmt.Errorf("failed to save draft: %w", err)
	}
	ds.logger.Info(draftComponent, "draft saved", map[string]interface{}{
		"title": title,
		"path":  ds.store.Path(),
	})
	return entry, nil
}

// Recent returns the newest saved entries.
func (ds *DraftService) Recent(n int) []store.Entry {
	return ds.store.Recent(n)
}

func (ds *DraftService) Store() *store.Store {
	return ds.store
}
