// Package scaffold invokes the external frontend project bootstrapper.
//
// The bootstrapper is an opaque collaborator: it either lays down the base
// frontend skeleton (manifest, entry point, base config) or fails, and the
// driver reacts to nothing finer-grained than that. Domain files are
// generated on top of whatever it produced.
package scaffold

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Bootstrapper lays down a base project skeleton in appDir.
type Bootstrapper interface {
	// Ensure scaffolds appDir if it is not already scaffolded.
	Ensure(appDir string) error
}

// ViteBootstrapper scaffolds a React+TypeScript project via npm create vite.
type ViteBootstrapper struct{}

// NewViteBootstrapper creates a ViteBootstrapper.
func NewViteBootstrapper() *ViteBootstrapper {
	return &ViteBootstrapper{}
}

// Ensure runs the vite scaffolding command unless its footprint already
// exists. Idempotent: a previously scaffolded directory is left untouched.
func (b *ViteBootstrapper) Ensure(appDir string) error {
	if alreadyScaffolded(appDir) {
		return nil
	}

	parent := filepath.Dir(appDir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	cmd := exec.Command("npm", "create", "vite@latest", filepath.Base(appDir),
		"--", "--template", "react-ts")
	cmd.Dir = parent
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("vite scaffolding failed: %w\n%s", err, out)
	}
	return nil
}

// alreadyScaffolded reports whether the vite footprint is present.
func alreadyScaffolded(appDir string) bool {
	for _, marker := range []string{
		filepath.Join(appDir, "package.json"),
		filepath.Join(appDir, "src", "main.tsx"),
	} {
		if _, err := os.Stat(marker); err != nil {
			return false
		}
	}
	return true
}

// NoopBootstrapper skips external scaffolding entirely.
type NoopBootstrapper struct{}

// Ensure does nothing.
func (NoopBootstrapper) Ensure(string) error { return nil }
