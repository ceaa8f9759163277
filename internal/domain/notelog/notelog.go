// Package notelog reads and writes the technician note history stored in the
// order's notes field.
//
// Two encodings exist in stored data:
//   - structured: a JSON array of {content, timestamp, author}
//   - legacy: free plain text, read as a single note
//
// Serialize always writes the structured form, so every save migrates a
// legacy record.
package notelog

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
)

var ErrEmptyContent = errors.New("note content is empty")

var now = time.Now

type record struct {
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Author    string     `json:"author,omitempty"`
}

// Parse decodes raw into notes. Empty input yields no notes. Input that is not
// a structured list becomes one legacy note stamped with fallback (or now when
// fallback is zero) and authored by the system.
func Parse(raw string, fallback time.Time) []entities.Note {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []entities.Note{}
	}

	if notes, ok := decodeStructured(trimmed); ok {
		return notes
	}

	ts := fallback
	if ts.IsZero() {
		ts = now()
	}
	return []entities.Note{{
		Content:   trimmed,
		Timestamp: ts,
		Author:    entities.DefaultNoteAuthor,
	}}
}

func decodeStructured(raw string) ([]entities.Note, bool) {
	if !strings.HasPrefix(raw, "[") {
		return nil, false
	}
	var records []record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, false
	}

	notes := make([]entities.Note, 0, len(records))
	for _, r := range records {
		content := strings.TrimSpace(r.Content)
		if content == "" {
			continue
		}
		n := entities.Note{
			Content: content,
			Author:  strings.TrimSpace(r.Author),
		}
		if n.Author == "" {
			n.Author = entities.DefaultNoteAuthor
		}
		if r.Timestamp != nil && !r.Timestamp.IsZero() {
			n.Timestamp = *r.Timestamp
		} else {
			n.Timestamp = now()
		}
		notes = append(notes, n)
	}
	return notes, true
}

// Serialize encodes notes in the structured form, in the order given.
func Serialize(notes []entities.Note) string {
	if len(notes) == 0 {
		return ""
	}
	records := make([]record, len(notes))
	for i, n := range notes {
		ts := n.Timestamp.UTC()
		records[i] = record{Content: n.Content, Timestamp: &ts, Author: n.Author}
	}
	b, err := json.Marshal(records)
	if err != nil {
		// time.Time and strings always marshal
		return ""
	}
	return string(b)
}

// Append returns a new slice with one more note. Blank content is rejected.
func Append(notes []entities.Note, content, author string) ([]entities.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = entities.DefaultNoteAuthor
	}

	out := make([]entities.Note, len(notes), len(notes)+1)
	copy(out, notes)
	return append(out, entities.Note{
		Content:   content,
		Timestamp: now(),
		Author:    author,
	}), nil
}

// SortForDisplay returns a copy ordered most recent first.
func SortForDisplay(notes []entities.Note) []entities.Note {
	out := append([]entities.Note(nil), notes...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Latest returns the most recent note.
func Latest(notes []entities.Note) (entities.Note, bool) {
	if len(notes) == 0 {
		return entities.Note{}, false
	}
	latest := notes[0]
	for _, n := range notes[1:] {
		if n.Timestamp.After(latest.Timestamp) {
			latest = n
		}
	}
	return latest, true
}
