// Package scores persists finished runs. An Adapter writes to the remote
// scores service when it can and falls back to a bounded local store when
// it cannot; callers always get a result value tagged with the tier that
// served them, never an error.
package scores

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Limits shared by the client, the local store and the scores service.
const (
	MaxNameLen      = 20          // Player names are cut to this many runes
	DefaultName     = "Anonymous" // Used when the name is blank
	LocalCapacity   = 50          // Entries kept by the local store
	LeaderboardSize = 10          // Entries returned by Load
)

// RunResult is one finished run as stored and exchanged over the wire.
type RunResult struct {
	ID         string    `json:"id"`
	PlayerName string    `json:"playerName"`
	Score      int       `json:"score"`
	Level      int       `json:"level"`
	Date       time.Time `json:"date"`
	Timestamp  int64     `json:"timestamp"` // Unix milliseconds
	IsLocal    bool      `json:"isLocal,omitempty"`
}

// Submission is the payload posted to the scores service.
type Submission struct {
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
	Level      int    `json:"level"`
}

// Normalize trims and truncates the name and clamps score to >= 0 and
// level to >= 1. Out-of-range input is corrected, never rejected.
func Normalize(name string, score, level int) Submission {
	return Submission{
		PlayerName: NormalizeName(name),
		Score:      max(0, score),
		Level:      max(1, level),
	}
}

// NormalizeName trims whitespace and cuts the name to MaxNameLen runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLen]))
	}
	if name == "" {
		return DefaultName
	}
	return name
}
