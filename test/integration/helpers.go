package integration

import (
	"os"
	"path/filepath"
	"testing"

	"structgen/internal/config"
	"structgen/internal/fsops"
	"structgen/internal/generator"
	"structgen/internal/scaffold"
	"structgen/internal/structdoc"
	"structgen/internal/templates"
)

// silentLogger discards generator output during integration runs.
type silentLogger struct{}

func (silentLogger) Infof(string, ...interface{}) {}
func (silentLogger) Warnf(string, ...interface{}) {}

// setupGenerator wires a generator the same way the CLI does, except the
// frontend bootstrapper is a noop so runs never shell out to npm.
func setupGenerator(t *testing.T, root string) *generator.Generator {
	t.Helper()
	layout, err := config.Load(root)
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	return generator.New(
		fsops.NewRealFS(),
		structdoc.NewParser(),
		templates.NewRegistry(),
		scaffold.NoopBootstrapper{},
		layout,
		silentLogger{},
	)
}

// writeStructureDoc creates <root>/<project>/docs/<docFile> with the given body.
func writeStructureDoc(t *testing.T, root, project, docFile, body string) {
	t.Helper()
	docDir := filepath.Join(root, project, "docs")
	if err := os.MkdirAll(docDir, 0755); err != nil {
		t.Fatalf("failed to create docs dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(docDir, docFile), []byte(body), 0644); err != nil {
		t.Fatalf("failed to write structure doc: %v", err)
	}
}

// readGenerated reads a generated file relative to the project app dir.
func readGenerated(t *testing.T, root, project string, rel ...string) string {
	t.Helper()
	parts := append([]string{root, project, "app"}, rel...)
	data, err := os.ReadFile(filepath.Join(parts...))
	if err != nil {
		t.Fatalf("expected generated file %v: %v", rel, err)
	}
	return string(data)
}
