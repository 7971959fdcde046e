package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimestampLayout is the display format used across the sheets,
// day-first as the back office reads it.
const TimestampLayout = "02/01/2006 15:04:05"

// Now formats the current time for sheet cells.
func Now() string {
	return time.Now().Format(TimestampLayout)
}

// DescriptionEntry is one line of a step's note history.
type DescriptionEntry struct {
	Timestamp string `json:"timestamp"`
	Author    string `json:"author"`
	Content   string `json:"content"`
}

// descriptionLine matches "1. [02/01/2025 10:30:00] name: text".
var descriptionLine = regexp.MustCompile(`^\d+\.\s*\[(.*?)\]\s*(.*?):\s*(.*)$`)

// FormatDescriptionHistory serializes entries into the numbered single-cell
// form, one entry per line.
func FormatDescriptionHistory(entries []DescriptionEntry) string {
	if len(entries) == 0 {
		return ""
	}
	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("%d. [%s] %s: %s",
			i+1, entry.Timestamp, entry.Author, entry.Content))
	}
	return strings.Join(lines, "\n")
}

// ParseDescriptionHistory reads a serialized history cell back into entries.
// Lines that do not match the numbered form are dropped; hand-edited cells
// keep whatever entries still parse.
func ParseDescriptionHistory(cell string) []DescriptionEntry {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	var entries []DescriptionEntry
	for _, line := range strings.Split(cell, "\n") {
		m := descriptionLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		entries = append(entries, DescriptionEntry{
			Timestamp: m[1],
			Author:    strings.TrimSpace(m[2]),
			Content:   m[3],
		})
	}
	return entries
}

// AppendDescription adds a new entry stamped with the current time.
func AppendDescription(entries []DescriptionEntry, author, content string) []DescriptionEntry {
	return append(entries, DescriptionEntry{
		Timestamp: Now(),
		Author:    author,
		Content:   content,
	})
}
