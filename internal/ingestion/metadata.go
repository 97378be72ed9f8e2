package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Metadata describes an ingested batch of raw material
type Metadata struct {
	Timestamp   string `json:"timestamp"` // RFC3339 format
	Hash        string `json:"hash"`      // SHA256 hex digest of the combined text
	RecordCount int    `json:"record_count"`
	WordCount   int    `json:"word_count"`
	// Language is a coarse hint ("latin", "cyrillic", "mixed") so output can be
	// written in the same language as the bulk of the material
	Language string `json:"language,omitempty"`
}

// NewMetadata creates Metadata for the combined batch text with current timestamp
func NewMetadata(combinedText string, recordCount int) *Metadata {
	return &Metadata{
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Hash:        computeHash(combinedText),
		RecordCount: recordCount,
		WordCount:   len(strings.Fields(combinedText)),
		Language:    DetectScript(combinedText),
	}
}

// DetectScript returns the dominant script of the text: "latin", "cyrillic",
// or "mixed" when neither clearly dominates. Empty text yields "".
func DetectScript(text string) string {
	var latin, cyrillic int
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Latin, r):
			latin++
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		}
	}

	total := latin + cyrillic
	if total == 0 {
		return ""
	}
	switch {
	case float64(latin)/float64(total) >= 0.75:
		return "latin"
	case float64(cyrillic)/float64(total) >= 0.75:
		return "cyrillic"
	}
	return "mixed"
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
