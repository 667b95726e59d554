// Package config manages structgen configuration and project layout paths.
//
// Layout knobs (structure document filename, docs and app directory names,
// summary truncation) can be customized via a .structgen.yaml file in the
// project root or STRUCTGEN_* environment variables; defaults match the
// conventional frontend/backend two-project layout.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Defaults for the project layout.
const (
	DefaultDocFile      = "PROJECT_STRUCTURE_SIMPLE.md"
	DefaultDocsDir      = "docs"
	DefaultAppDir       = "app"
	DefaultSummaryLimit = 10
)

// Layout describes where structure documents live and where generated files
// go, relative to the project root.
type Layout struct {
	// DocFile is the structure document filename.
	DocFile string `mapstructure:"doc_file"`

	// DocsDir is the per-project directory containing the structure document.
	DocsDir string `mapstructure:"docs_dir"`

	// AppDir is the per-project base directory for generated files.
	AppDir string `mapstructure:"app_dir"`

	// SummaryLimit caps how many created paths the summary lists.
	SummaryLimit int `mapstructure:"summary_limit"`

	// Scaffold enables the external frontend bootstrapper.
	Scaffold bool `mapstructure:"scaffold"`
}

// DefaultLayout returns the layout used when no configuration is present.
func DefaultLayout() *Layout {
	return &Layout{
		DocFile:      DefaultDocFile,
		DocsDir:      DefaultDocsDir,
		AppDir:       DefaultAppDir,
		SummaryLimit: DefaultSummaryLimit,
		Scaffold:     true,
	}
}

// Load reads layout configuration for the given project root. A missing
// config file is not an error; defaults and environment variables apply.
func Load(root string) (*Layout, error) {
	v := viper.New()
	v.SetConfigName(".structgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(root)

	v.SetDefault("doc_file", DefaultDocFile)
	v.SetDefault("docs_dir", DefaultDocsDir)
	v.SetDefault("app_dir", DefaultAppDir)
	v.SetDefault("summary_limit", DefaultSummaryLimit)
	v.SetDefault("scaffold", true)

	v.SetEnvPrefix("STRUCTGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	layout := DefaultLayout()
	if err := v.Unmarshal(layout); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return layout, nil
}

// StructureDoc returns the structure document path for a project.
func (l *Layout) StructureDoc(root, project string) string {
	return filepath.Join(root, project, l.DocsDir, l.DocFile)
}

// BasePath returns the generation base directory for a project.
func (l *Layout) BasePath(root, project string) string {
	return filepath.Join(root, project, l.AppDir)
}
