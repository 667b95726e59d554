package structdoc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"structgen/internal/classify"
)

func TestParse(t *testing.T) {
	doc := `# Project Structure

This document describes the backend layout.

src/ignored/before/marker.ts

## FILE_LIST

### Controllers
- src/controllers/UserController.ts
- src/controllers/base/BaseController.ts  # shared base class
* src/models/User.ts

src/services/AuthService.ts
src/database/           # just a directory
README.md
package-lock.json
.env
docs
`

	entries := NewParser().Parse(doc)

	want := []Entry{
		{Path: "src/controllers/UserController.ts", Type: classify.TypeController},
		{Path: "src/controllers/base/BaseController.ts", Type: classify.TypeBaseController},
		{Path: "src/models/User.ts", Type: classify.TypeModel},
		{Path: "src/services/AuthService.ts", Type: classify.TypeService},
	}

	if len(entries) != len(want) {
		t.Fatalf("Parse returned %d entries, want %d: %v", len(entries), len(want), entries)
	}
	for i, e := range entries {
		if e != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestParse_SkipListNeverEmitted(t *testing.T) {
	doc := `## FILE_LIST
src/components/App.tsx
README.md
sub/dir/README.md
package-lock.json
.env.example
.gitignore
.eslintrc.js
.prettierrc
`
	entries := NewParser().Parse(doc)

	if len(entries) != 1 {
		t.Fatalf("expected only App.tsx to survive, got %v", entries)
	}
	if entries[0].Path != "src/components/App.tsx" {
		t.Errorf("surviving entry = %q, want src/components/App.tsx", entries[0].Path)
	}
}

func TestParse_NoFileListSection(t *testing.T) {
	doc := `# Structure

src/controllers/UserController.ts
src/models/User.ts
`
	if entries := NewParser().Parse(doc); len(entries) != 0 {
		t.Errorf("lines outside a FILE_LIST section must be ignored, got %v", entries)
	}
}

func TestParse_EmptyFileList(t *testing.T) {
	doc := `## FILE_LIST

### Nothing qualifies here
some prose without separators
docs
`
	if entries := NewParser().Parse(doc); len(entries) != 0 {
		t.Errorf("expected no entries, got %v", entries)
	}
}

func TestParse_DuplicatesPreserved(t *testing.T) {
	doc := `## FILE_LIST
src/models/User.ts
src/models/User.ts
`
	entries := NewParser().Parse(doc)
	if len(entries) != 2 {
		t.Fatalf("duplicate paths must both be emitted, got %d entries", len(entries))
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "PROJECT_STRUCTURE_SIMPLE.md")
	content := "## FILE_LIST\nsrc/models/User.ts\n"
	if err := os.WriteFile(docPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := NewParser().ParseFile(docPath)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(entries) != 1 || entries[0].Path != "src/models/User.ts" {
		t.Errorf("unexpected entries: %v", entries)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := NewParser().ParseFile(filepath.Join(t.TempDir(), "absent.md"))
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}
}
