// Package structdoc parses project structure documents.
//
// A structure document is a markdown file with a FILE_LIST section listing
// one relative file path per line. Lines may be bullet-prefixed and may carry
// trailing "#" comments. The parser emits entries in document order with no
// de-duplication; a path listed twice yields two entries (the second write
// attempt becomes a skip).
package structdoc

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"structgen/internal/classify"
)

// ErrDocumentNotFound indicates the structure document is absent.
var ErrDocumentNotFound = errors.New("structure document not found")

// sectionMarker introduces the file list; lines before it are ignored.
const sectionMarker = "## FILE_LIST"

// skipList names files the generator must never touch. These are owned by
// external tooling (git, npm, formatters) and are intentionally absent from
// the emitted entries no matter where they appear in the document.
var skipList = map[string]bool{
	"README.md":         true,
	"package-lock.json": true,
	".env":              true,
	".env.example":      true,
	".gitignore":        true,
	".eslintrc.js":      true,
	".prettierrc":       true,
}

// Entry is one (path, type) pair extracted from a structure document.
type Entry struct {
	Path string
	Type classify.FileType
}

// Parser extracts spec entries from structure documents.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses the document at docPath. A missing file is
// reported as ErrDocumentNotFound so callers can skip that project and
// continue with the rest of the run.
func (p *Parser) ParseFile(docPath string) ([]Entry, error) {
	data, err := os.ReadFile(docPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, docPath)
		}
		return nil, fmt.Errorf("failed to read structure document %s: %w", docPath, err)
	}
	return p.Parse(string(data)), nil
}

// Parse extracts entries from document content, preserving first-appearance
// order.
func (p *Parser) Parse(content string) []Entry {
	var entries []Entry

	inFileList := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if strings.Contains(line, sectionMarker) {
			inFileList = true
			continue
		}
		if !inFileList || line == "" {
			continue
		}
		// Section headers and comment-only lines.
		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			line = strings.TrimSpace(line[2:])
		}
		// Trailing inline comments.
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}

		if !looksLikeFilePath(line) {
			continue
		}

		entries = append(entries, Entry{
			Path: line,
			Type: classify.Classify(line),
		})
	}

	return entries
}

// looksLikeFilePath reports whether a cleaned-up line denotes a generatable
// file reference.
func looksLikeFilePath(line string) bool {
	if line == "" {
		return false
	}
	// A file reference needs at least a separator or an extension dot.
	if !strings.Contains(line, "/") && !strings.Contains(line, ".") {
		return false
	}
	// Directory entries are not files.
	if strings.HasSuffix(line, "/") {
		return false
	}

	filename := path.Base(line)
	if skipList[filename] {
		return false
	}
	// Extension required; dotfiles belong to external tooling.
	if !strings.Contains(filename, ".") || strings.HasPrefix(filename, ".") {
		return false
	}
	return true
}
