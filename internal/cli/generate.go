package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"structgen/internal/generator"
)

var (
	genFrontend     bool
	genBackend      bool
	genAll          bool
	genRoot         string
	genDryRun       bool
	genSkipScaffold bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Create placeholder files from the structure documents",
	Long: `Generate placeholder files for the selected projects.

Each project's docs/PROJECT_STRUCTURE_SIMPLE.md is parsed for its FILE_LIST
section and every listed path is created under the project's app directory
with a type-appropriate template. Existing non-empty files are never
overwritten, so the command is safe to re-run after a document update.

With no project flags both frontend and backend are generated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(genRoot)
		if err != nil {
			return err
		}

		gen, layout, err := newGenerator(root)
		if err != nil {
			return err
		}

		result, err := gen.Run(generator.Options{
			Root:         root,
			Projects:     selectProjects(genFrontend, genBackend, genAll),
			DryRun:       genDryRun,
			SkipScaffold: genSkipScaffold,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(summarize(result))
		}

		printRunSummary(result, layout.SummaryLimit)
		return nil
	},
}

// runSummary is the JSON shape of a generation run.
type runSummary struct {
	DryRun   bool             `json:"dry_run"`
	Created  int              `json:"created"`
	Skipped  int              `json:"skipped"`
	Failed   int              `json:"failed"`
	Projects []projectSummary `json:"projects"`
}

type projectSummary struct {
	Project        string        `json:"project"`
	DocPath        string        `json:"doc_path"`
	DocMissing     bool          `json:"doc_missing,omitempty"`
	ScaffoldFailed bool          `json:"scaffold_failed,omitempty"`
	Created        []string      `json:"created"`
	Skipped        []string      `json:"skipped"`
	Failed         []failedEntry `json:"failed,omitempty"`
}

type failedEntry struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

func summarize(result *generator.Result) runSummary {
	summary := runSummary{
		DryRun:  result.DryRun,
		Created: result.CreatedCount(),
		Skipped: result.SkippedCount(),
		Failed:  result.FailedCount(),
	}
	for _, pr := range result.Projects {
		ps := projectSummary{
			Project:        pr.Project,
			DocPath:        pr.DocPath,
			DocMissing:     pr.DocMissing,
			ScaffoldFailed: pr.ScaffoldFailed,
			Created:        pr.Created,
			Skipped:        pr.Skipped,
		}
		for _, f := range pr.Failed {
			ps.Failed = append(ps.Failed, failedEntry{Path: f.Path, Error: f.Err.Error()})
		}
		summary.Projects = append(summary.Projects, ps)
	}
	return summary
}

// printRunSummary renders the human-readable run summary. The created-file
// list is truncated at limit entries.
func printRunSummary(result *generator.Result, limit int) {
	if result.DryRun {
		PrintSection("Dry Run")
	} else {
		PrintSection("Generation Summary")
	}

	for _, pr := range result.Projects {
		PrintSubsection(pr.Project)
		if pr.DocMissing {
			PrintLabelValue("status", "skipped, structure document missing")
			PrintLabelValue("expected at", pr.DocPath)
			continue
		}
		if pr.ScaffoldFailed {
			PrintLabelValue("status", "skipped, frontend scaffolding failed")
			continue
		}
		PrintLabelValue("created", PrintCount(len(pr.Created), "file", "files"))
		PrintLabelValue("skipped", PrintCount(len(pr.Skipped), "existing file", "existing files"))
		if len(pr.Failed) > 0 {
			PrintLabelValue("failed", PrintCount(len(pr.Failed), "file", "files"))
			for _, f := range pr.Failed {
				PrintError(fmt.Sprintf("%s: %v", f.Path, f.Err))
			}
		}
	}

	created := result.CreatedPaths()
	if len(created) > 0 {
		if result.DryRun {
			PrintSubsection("Would create:")
		} else {
			PrintSubsection("Created:")
		}
		shown := created
		if limit > 0 && len(shown) > limit {
			shown = shown[:limit]
		}
		PrintList(shown, 1)
		if rest := len(created) - len(shown); rest > 0 {
			PrintEmptyState(fmt.Sprintf("... and %s", PrintCount(rest, "more file", "more files")))
		}
	} else if result.SkippedCount() == 0 && result.FailedCount() == 0 {
		PrintEmptyState("nothing to generate")
	}

	if !result.DryRun && result.FailedCount() == 0 {
		fmt.Println()
		PrintSuccess(fmt.Sprintf("Generated %s", PrintCount(result.CreatedCount(), "file", "files")))
	}
}

func init() {
	generateCmd.Flags().BoolVar(&genFrontend, "frontend", false, "Generate the frontend project")
	generateCmd.Flags().BoolVar(&genBackend, "backend", false, "Generate the backend project")
	generateCmd.Flags().BoolVar(&genAll, "all", false, "Generate all projects")
	generateCmd.Flags().StringVarP(&genRoot, "root", "r", "", "Project root (defaults to the working directory)")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Show what would be created without writing")
	generateCmd.Flags().BoolVar(&genSkipScaffold, "skip-scaffold", false, "Skip the external frontend bootstrapper")
}
