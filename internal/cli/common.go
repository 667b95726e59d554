package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"structgen/internal/config"
	"structgen/internal/fsops"
	"structgen/internal/generator"
	"structgen/internal/scaffold"
	"structgen/internal/structdoc"
	"structgen/internal/templates"
)

// newGenerator creates a generator with real implementations of all
// dependencies, configured for the given project root.
func newGenerator(root string) (*generator.Generator, *config.Layout, error) {
	layout, err := config.Load(root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	var bootstrapper scaffold.Bootstrapper = scaffold.NewViteBootstrapper()
	if !layout.Scaffold {
		bootstrapper = scaffold.NoopBootstrapper{}
	}

	gen := generator.New(
		fsops.NewRealFS(),
		structdoc.NewParser(),
		templates.NewRegistry(),
		bootstrapper,
		layout,
		cliLogger{},
	)
	return gen, layout, nil
}

// cliLogger routes generator progress through the colored print helpers.
type cliLogger struct{}

func (cliLogger) Infof(format string, args ...interface{}) {
	PrintInfo(fmt.Sprintf(format, args...))
}

func (cliLogger) Warnf(format string, args ...interface{}) {
	PrintWarning(fmt.Sprintf(format, args...))
}

// resolveRoot returns the project root from the flag or the working directory.
func resolveRoot(flagRoot string) (string, error) {
	if flagRoot != "" {
		return flagRoot, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}

// selectProjects translates the frontend/backend/all flags into the ordered
// project list. No flags means both projects.
func selectProjects(frontend, backend, all bool) []string {
	if all || (!frontend && !backend) {
		return []string{generator.ProjectFrontend, generator.ProjectBackend}
	}
	var projects []string
	if frontend {
		projects = append(projects, generator.ProjectFrontend)
	}
	if backend {
		projects = append(projects, generator.ProjectBackend)
	}
	return projects
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
