// Package corpus splits a plain-text or markdown file into documents so a
// single file can serve as a TF-IDF collection.
package corpus

import (
	"strings"
)

// Document is one block of the source text with its line span (1-based, inclusive).
type Document struct {
	Text      string `json:"text"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
}

// Split breaks text on blank lines and before markdown headings.
// Whitespace-only blocks are dropped.
func Split(text string) []Document {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var docs []Document
	var current []string
	startLine := 1

	flush := func(endLine int) {
		if len(current) == 0 {
			return
		}
		t := strings.TrimSpace(strings.Join(current, "\n"))
		if t != "" {
			docs = append(docs, Document{Text: t, StartLine: startLine, EndLine: endLine})
		}
		current = nil
	}

	for i, line := range lines {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flush(lineNum - 1)
			continue
		}
		// Headings start a new document
		if strings.HasPrefix(trimmed, "#") {
			flush(lineNum - 1)
		}
		if len(current) == 0 {
			startLine = lineNum
		}
		current = append(current, line)
	}
	flush(len(lines))

	return docs
}

// Texts returns the text of each document.
func Texts(docs []Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Text
	}
	return out
}
