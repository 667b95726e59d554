package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	layout, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if layout.DocFile != DefaultDocFile {
		t.Errorf("DocFile = %q, want %q", layout.DocFile, DefaultDocFile)
	}
	if layout.DocsDir != DefaultDocsDir {
		t.Errorf("DocsDir = %q, want %q", layout.DocsDir, DefaultDocsDir)
	}
	if layout.AppDir != DefaultAppDir {
		t.Errorf("AppDir = %q, want %q", layout.AppDir, DefaultAppDir)
	}
	if layout.SummaryLimit != DefaultSummaryLimit {
		t.Errorf("SummaryLimit = %d, want %d", layout.SummaryLimit, DefaultSummaryLimit)
	}
	if !layout.Scaffold {
		t.Error("Scaffold should default to true")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	root := t.TempDir()
	content := "doc_file: STRUCTURE.md\napp_dir: code\nsummary_limit: 3\nscaffold: false\n"
	if err := os.WriteFile(filepath.Join(root, ".structgen.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	layout, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if layout.DocFile != "STRUCTURE.md" {
		t.Errorf("DocFile = %q, want STRUCTURE.md", layout.DocFile)
	}
	if layout.AppDir != "code" {
		t.Errorf("AppDir = %q, want code", layout.AppDir)
	}
	if layout.SummaryLimit != 3 {
		t.Errorf("SummaryLimit = %d, want 3", layout.SummaryLimit)
	}
	if layout.Scaffold {
		t.Error("Scaffold should be false")
	}
	// Unset keys keep defaults.
	if layout.DocsDir != DefaultDocsDir {
		t.Errorf("DocsDir = %q, want default %q", layout.DocsDir, DefaultDocsDir)
	}
}

func TestLayout_Paths(t *testing.T) {
	layout := DefaultLayout()

	doc := layout.StructureDoc("/proj", "frontend")
	want := filepath.Join("/proj", "frontend", "docs", "PROJECT_STRUCTURE_SIMPLE.md")
	if doc != want {
		t.Errorf("StructureDoc = %q, want %q", doc, want)
	}

	base := layout.BasePath("/proj", "backend")
	wantBase := filepath.Join("/proj", "backend", "app")
	if base != wantBase {
		t.Errorf("BasePath = %q, want %q", base, wantBase)
	}
}
