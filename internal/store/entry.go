package store

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Entry is one saved snippet. Entries are never modified after they are
// written.
type Entry struct {
	Title       string      `json:"title"`
	Original    string      `json:"original"`
	Suggestions interface{} `json:"suggestions"`
	Timestamp   float64     `json:"timestamp"`
}

// Time converts the epoch-seconds timestamp.
func (e Entry) Time() time.Time {
	sec := int64(e.Timestamp)
	nsec := int64((e.Timestamp - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

// Preview returns the "preview" member of a map-shaped suggestions value.
func (e Entry) Preview() (string, bool) {
	m, ok := e.Suggestions.(map[string]interface{})
	if !ok {
		return "", false
	}
	p, ok := m["preview"].(string)
	return p, ok
}

// MarshalJSON writes the timestamp as a float literal even for whole
// seconds, so 1700000000 is stored as 1700000000.0.
func (e Entry) MarshalJSON() ([]byte, error) {
	type plain Entry
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(struct {
		plain
		Timestamp json.Number `json:"timestamp"`
	}{plain(e), json.Number(formatSeconds(e.Timestamp))})
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func formatSeconds(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
