package extraction

import (
	"regexp"
	"strings"
)

var (
	sentenceEndRe = regexp.MustCompile(`([.!?]+)(\s+|$)`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// splitParagraphs splits cleaned text into non-empty paragraph spans.
// Markdown headings are dropped: they label material, they are not material.
func splitParagraphs(text string) []string {
	blocks := strings.Split(text, "\n\n")
	paragraphs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		var keep []string
		for _, line := range strings.Split(block, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			keep = append(keep, trimmed)
		}
		if len(keep) == 0 {
			continue
		}
		paragraphs = append(paragraphs, strings.Join(keep, "\n"))
	}
	return paragraphs
}

// splitSentences splits a span into sentences on terminal punctuation.
// Bullet lines count as sentences of their own.
func splitSentences(span string) []string {
	var sentences []string
	for _, line := range strings.Split(span, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")

		rest := line
		for {
			loc := sentenceEndRe.FindStringIndex(rest)
			if loc == nil {
				break
			}
			sentence := strings.TrimSpace(rest[:loc[1]])
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			rest = rest[loc[1]:]
		}
		if trimmed := strings.TrimSpace(rest); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// normalizeForGrounding lowercases and collapses whitespace so substring
// checks survive line wrapping and bullet markers.
func normalizeForGrounding(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "- ", " ")
	text = strings.ReplaceAll(text, "* ", " ")
	return whitespaceRe.ReplaceAllString(text, " ")
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, strings.TrimSpace(needle))
}
