// Package generator orchestrates structure-document parsing and placeholder
// file creation.
//
// The generator is the core driver called by the CLI. For each selected
// project it locates the structure document, parses it into entries, and
// materializes one file per entry — skipping files that already exist
// non-empty so hand-written code is never clobbered. Failures are contained
// at the smallest scope: a missing document skips that project, a failed
// write skips that entry, and the run continues either way.
package generator

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"structgen/internal/config"
	"structgen/internal/fsops"
	"structgen/internal/scaffold"
	"structgen/internal/structdoc"
	"structgen/internal/templates"
)

// Logger receives progress and warning lines during a run. The CLI supplies
// a colored implementation; tests supply a silent one.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// Generator materializes placeholder files from structure documents.
type Generator struct {
	fs           fsops.FS
	parser       *structdoc.Parser
	registry     *templates.Registry
	bootstrapper scaffold.Bootstrapper
	layout       *config.Layout
	log          Logger
}

// New creates a Generator with the given dependencies.
func New(
	fs fsops.FS,
	parser *structdoc.Parser,
	registry *templates.Registry,
	bootstrapper scaffold.Bootstrapper,
	layout *config.Layout,
	log Logger,
) *Generator {
	return &Generator{
		fs:           fs,
		parser:       parser,
		registry:     registry,
		bootstrapper: bootstrapper,
		layout:       layout,
		log:          log,
	}
}

// Run generates all selected projects. It returns ErrNoProject when no
// requested project could proceed at all; per-entry failures never fail
// the run.
func (g *Generator) Run(opts Options) (*Result, error) {
	result := &Result{DryRun: opts.DryRun}

	proceeded := false
	for _, project := range opts.Projects {
		pr := g.generateProject(opts, project)
		result.Projects = append(result.Projects, pr)
		if !pr.DocMissing && !pr.ScaffoldFailed {
			proceeded = true
		}
	}

	if !proceeded {
		return result, fmt.Errorf("%w: requested %v", ErrNoProject, opts.Projects)
	}
	return result, nil
}

// generateProject runs one project end to end.
func (g *Generator) generateProject(opts Options, project string) ProjectResult {
	pr := ProjectResult{
		Project: project,
		DocPath: g.layout.StructureDoc(opts.Root, project),
	}

	entries, err := g.parser.ParseFile(pr.DocPath)
	if err != nil {
		if errors.Is(err, structdoc.ErrDocumentNotFound) {
			g.log.Warnf("structure document not found for %s: %s", project, pr.DocPath)
			pr.DocMissing = true
			return pr
		}
		g.log.Warnf("failed to parse structure document for %s: %v", project, err)
		pr.DocMissing = true
		return pr
	}

	basePath := g.layout.BasePath(opts.Root, project)

	// The frontend skeleton comes from the external bootstrapper; domain
	// files are layered on top of it.
	if project == ProjectFrontend && !opts.SkipScaffold && !opts.DryRun {
		if err := g.bootstrapper.Ensure(basePath); err != nil {
			g.log.Warnf("frontend scaffolding failed, skipping frontend generation: %v", err)
			pr.ScaffoldFailed = true
			return pr
		}
	}

	g.log.Infof("found %d files to create for %s", len(entries), project)

	for _, entry := range entries {
		g.createFile(&pr, basePath, entry, opts.DryRun)
	}
	return pr
}

// createFile materializes a single entry under basePath, recording the
// outcome on pr. A failure affects only this entry.
func (g *Generator) createFile(pr *ProjectResult, basePath string, entry structdoc.Entry, dryRun bool) {
	if err := g.fs.ValidateRelPath(filepath.FromSlash(entry.Path)); err != nil {
		g.log.Warnf("rejecting unsafe path %s: %v", entry.Path, err)
		pr.Failed = append(pr.Failed, FailedEntry{
			Path: entry.Path,
			Err:  fmt.Errorf("%w: %v", ErrValidation, err),
		})
		return
	}

	destPath := filepath.Join(basePath, filepath.FromSlash(entry.Path))

	// Never overwrite a file that already has content.
	if exists, err := g.fs.Exists(destPath); err == nil && exists {
		if size, err := g.fs.Size(destPath); err == nil && size > 0 {
			pr.Skipped = append(pr.Skipped, destPath)
			return
		}
	}

	// Template resolution sees the project-qualified path so frontend vs
	// backend context survives regardless of where the root lives on disk.
	ctxPath := path.Join(pr.Project, g.layout.AppDir, entry.Path)
	key := g.registry.ResolveKey(ctxPath, entry.Type)
	content := g.registry.Render(key, ctxPath)

	if dryRun {
		pr.Created = append(pr.Created, destPath)
		return
	}

	if err := g.fs.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		g.log.Warnf("error creating %s: %v", entry.Path, err)
		pr.Failed = append(pr.Failed, FailedEntry{Path: entry.Path, Err: err})
		return
	}
	if err := g.fs.AtomicWrite(destPath, []byte(content), fileMode(entry.Path)); err != nil {
		g.log.Warnf("error creating %s: %v", entry.Path, err)
		pr.Failed = append(pr.Failed, FailedEntry{Path: entry.Path, Err: err})
		return
	}

	pr.Created = append(pr.Created, destPath)
	g.log.Infof("created: %s", entry.Path)
}

// fileMode returns the permission bits for a generated file.
func fileMode(path string) os.FileMode {
	if filepath.Ext(path) == ".sh" {
		return 0755
	}
	return 0644
}
