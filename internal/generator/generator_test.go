package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"structgen/internal/config"
	"structgen/internal/fsops"
	"structgen/internal/scaffold"
	"structgen/internal/structdoc"
	"structgen/internal/templates"
)

// nopLogger discards all log output.
type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{}) {}

// failingFS wraps a real FS and fails AtomicWrite for paths containing a
// marker substring.
type failingFS struct {
	fsops.FS
	failOn string
}

func (f *failingFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if strings.Contains(path, f.failOn) {
		return errors.New("injected write failure")
	}
	return f.FS.AtomicWrite(path, data, perm)
}

// recordingBootstrapper records Ensure calls and optionally fails.
type recordingBootstrapper struct {
	calls []string
	err   error
}

func (b *recordingBootstrapper) Ensure(appDir string) error {
	b.calls = append(b.calls, appDir)
	return b.err
}

func newTestGenerator(fs fsops.FS, boot scaffold.Bootstrapper) *Generator {
	return New(fs, structdoc.NewParser(), templates.NewRegistry(), boot,
		config.DefaultLayout(), nopLogger{})
}

func writeDoc(t *testing.T, root, project, body string) {
	t.Helper()
	docDir := filepath.Join(root, project, "docs")
	if err := os.MkdirAll(docDir, 0755); err != nil {
		t.Fatal(err)
	}
	docPath := filepath.Join(docDir, "PROJECT_STRUCTURE_SIMPLE.md")
	if err := os.WriteFile(docPath, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

const backendDoc = `## FILE_LIST
src/controllers/UserController.ts
src/controllers/base/BaseController.ts
src/models/User.ts
`

func TestRun_CreatesFilesAndIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "backend", backendDoc)

	gen := newTestGenerator(fsops.NewRealFS(), &recordingBootstrapper{})
	opts := Options{Root: root, Projects: []string{ProjectBackend}}

	result, err := gen.Run(opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := result.CreatedCount(); got != 3 {
		t.Fatalf("created %d files, want 3: %+v", got, result.Projects)
	}
	if got := result.SkippedCount(); got != 0 {
		t.Errorf("skipped %d files, want 0", got)
	}

	controllerPath := filepath.Join(root, "backend", "app", "src", "controllers", "UserController.ts")
	content, err := os.ReadFile(controllerPath)
	if err != nil {
		t.Fatalf("generated controller missing: %v", err)
	}
	if !strings.Contains(string(content), "export class UserController") {
		t.Errorf("controller content missing derived type name:\n%s", content)
	}

	// Second run must create nothing and skip everything.
	second, err := gen.Run(opts)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if got := second.CreatedCount(); got != 0 {
		t.Errorf("second run created %d files, want 0", got)
	}
	if got := second.SkippedCount(); got != 3 {
		t.Errorf("second run skipped %d files, want 3", got)
	}
}

func TestRun_EmptyFileList(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "backend", "## FILE_LIST\n\n### nothing qualifies\n")

	gen := newTestGenerator(fsops.NewRealFS(), &recordingBootstrapper{})
	result, err := gen.Run(Options{Root: root, Projects: []string{ProjectBackend}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.CreatedCount() != 0 || result.SkippedCount() != 0 || result.FailedCount() != 0 {
		t.Errorf("empty file list should produce an empty result, got %+v", result.Projects)
	}
}

func TestRun_MissingDocSkipsProjectButRunContinues(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "backend", backendDoc)
	// No frontend doc at all.

	gen := newTestGenerator(fsops.NewRealFS(), &recordingBootstrapper{})
	result, err := gen.Run(Options{
		Root:     root,
		Projects: []string{ProjectFrontend, ProjectBackend},
	})
	if err != nil {
		t.Fatalf("Run should succeed when one project proceeds: %v", err)
	}

	if !result.Projects[0].DocMissing {
		t.Error("frontend project should be marked DocMissing")
	}
	if result.Projects[1].DocMissing {
		t.Error("backend project should not be marked DocMissing")
	}
	if result.CreatedCount() != 3 {
		t.Errorf("backend generation should still create 3 files, got %d", result.CreatedCount())
	}
}

func TestRun_AllDocsMissingFails(t *testing.T) {
	gen := newTestGenerator(fsops.NewRealFS(), &recordingBootstrapper{})
	_, err := gen.Run(Options{
		Root:     t.TempDir(),
		Projects: []string{ProjectFrontend, ProjectBackend},
	})
	if !errors.Is(err, ErrNoProject) {
		t.Errorf("expected ErrNoProject, got %v", err)
	}
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "backend", backendDoc)

	gen := newTestGenerator(fsops.NewRealFS(), &recordingBootstrapper{})
	result, err := gen.Run(Options{Root: root, Projects: []string{ProjectBackend}, DryRun: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.CreatedCount() != 3 {
		t.Errorf("dry run should report 3 would-be creations, got %d", result.CreatedCount())
	}

	if _, err := os.Stat(filepath.Join(root, "backend", "app")); !os.IsNotExist(err) {
		t.Error("dry run must not create the app directory")
	}
}

func TestRun_WriteFailureDoesNotAbort(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "backend", backendDoc)

	fs := &failingFS{FS: fsops.NewRealFS(), failOn: "BaseController"}
	gen := newTestGenerator(fs, &recordingBootstrapper{})

	result, err := gen.Run(Options{Root: root, Projects: []string{ProjectBackend}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := result.CreatedCount(); got != 2 {
		t.Errorf("created %d files, want 2", got)
	}
	if got := result.FailedCount(); got != 1 {
		t.Fatalf("failed %d entries, want 1", got)
	}
	if failed := result.Projects[0].Failed[0]; failed.Path != "src/controllers/base/BaseController.ts" {
		t.Errorf("unexpected failed entry: %+v", failed)
	}
}

func TestRun_UnsafePathRejected(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "backend", "## FILE_LIST\n../outside/evil.ts\nsrc/models/User.ts\n")

	gen := newTestGenerator(fsops.NewRealFS(), &recordingBootstrapper{})
	result, err := gen.Run(Options{Root: root, Projects: []string{ProjectBackend}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := result.CreatedCount(); got != 1 {
		t.Errorf("created %d files, want 1", got)
	}
	if got := result.FailedCount(); got != 1 {
		t.Fatalf("failed %d entries, want 1", got)
	}
	if !errors.Is(result.Projects[0].Failed[0].Err, ErrValidation) {
		t.Errorf("expected validation failure, got %v", result.Projects[0].Failed[0].Err)
	}
	if _, err := os.Stat(filepath.Join(root, "outside")); !os.IsNotExist(err) {
		t.Error("traversal path must not be created")
	}
}

func TestRun_FrontendScaffoldFailureSkipsFrontend(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "frontend", "## FILE_LIST\nsrc/components/App.tsx\n")
	writeDoc(t, root, "backend", backendDoc)

	boot := &recordingBootstrapper{err: fmt.Errorf("npm not found")}
	gen := newTestGenerator(fsops.NewRealFS(), boot)

	result, err := gen.Run(Options{
		Root:     root,
		Projects: []string{ProjectFrontend, ProjectBackend},
	})
	if err != nil {
		t.Fatalf("Run should continue with backend: %v", err)
	}
	if !result.Projects[0].ScaffoldFailed {
		t.Error("frontend should be marked ScaffoldFailed")
	}
	if len(result.Projects[0].Created) != 0 {
		t.Error("no frontend files should be created after scaffold failure")
	}
	if result.CreatedCount() != 3 {
		t.Errorf("backend should still create 3 files, got %d", result.CreatedCount())
	}
}

func TestRun_FrontendInvokesBootstrapper(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "frontend", "## FILE_LIST\nsrc/components/App.tsx\n")

	boot := &recordingBootstrapper{}
	gen := newTestGenerator(fsops.NewRealFS(), boot)

	if _, err := gen.Run(Options{Root: root, Projects: []string{ProjectFrontend}}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(boot.calls) != 1 {
		t.Fatalf("bootstrapper called %d times, want 1", len(boot.calls))
	}
	want := filepath.Join(root, "frontend", "app")
	if boot.calls[0] != want {
		t.Errorf("bootstrapper called with %q, want %q", boot.calls[0], want)
	}
}

func TestRun_SkipScaffold(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "frontend", "## FILE_LIST\nsrc/components/App.tsx\n")

	boot := &recordingBootstrapper{}
	gen := newTestGenerator(fsops.NewRealFS(), boot)

	if _, err := gen.Run(Options{
		Root:         root,
		Projects:     []string{ProjectFrontend},
		SkipScaffold: true,
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(boot.calls) != 0 {
		t.Errorf("bootstrapper should not be called with SkipScaffold, got %d calls", len(boot.calls))
	}
}
