package suggest

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

type ChangeType int

const (
	Equal ChangeType = iota
	Insert
	Delete
)

// Change is one run of a character diff between an original text and a
// suggestion.
type Change struct {
	Type ChangeType
	Text string
}

// Diff returns the semantically cleaned character diff turning original into
// rewritten.
func Diff(original, rewritten string) []Change {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, rewritten, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	changes := make([]Change, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		var ct ChangeType
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			ct = Insert
		case diffmatchpatch.DiffDelete:
			ct = Delete
		default:
			ct = Equal
		}
		changes = append(changes, Change{Type: ct, Text: d.Text})
	}
	return changes
}

// Rewritten rebuilds the new text from a diff.
func Rewritten(changes []Change) string {
	var out []byte
	for _, c := range changes {
		if c.Type != Delete {
			out = append(out, c.Text...)
		}
	}
	return string(out)
}

// Original rebuilds the old text from a diff.
func Original(changes []Change) string {
	var out []byte
	for _, c := range changes {
		if c.Type != Insert {
			out = append(out, c.Text...)
		}
	}
	return string(out)
}
