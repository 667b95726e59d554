package cli

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"structgen/internal/config"
	"structgen/internal/generator"
	"structgen/internal/structdoc"
	"structgen/internal/templates"
)

var inspectRoot string

var inspectCmd = &cobra.Command{
	Use:   "inspect <project>",
	Short: "Show how a project's structure document would be interpreted",
	Long: `Parse a project's structure document and show, without writing anything,
the classification and template each listed file would receive.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{generator.ProjectFrontend, generator.ProjectBackend},
	RunE: func(cmd *cobra.Command, args []string) error {
		project := args[0]
		if project != generator.ProjectFrontend && project != generator.ProjectBackend {
			return fmt.Errorf("unknown project %q, expected %q or %q",
				project, generator.ProjectFrontend, generator.ProjectBackend)
		}

		root, err := resolveRoot(inspectRoot)
		if err != nil {
			return err
		}
		layout, err := config.Load(root)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		docPath := layout.StructureDoc(root, project)
		entries, err := structdoc.NewParser().ParseFile(docPath)
		if err != nil {
			return err
		}

		registry := templates.NewRegistry()

		if jsonOutput {
			type entryView struct {
				Path     string `json:"path"`
				Type     string `json:"type"`
				Template string `json:"template"`
			}
			views := make([]entryView, 0, len(entries))
			for _, entry := range entries {
				ctxPath := path.Join(project, layout.AppDir, entry.Path)
				views = append(views, entryView{
					Path:     entry.Path,
					Type:     entry.Type.String(),
					Template: registry.ResolveKey(ctxPath, entry.Type).String(),
				})
			}
			return outputJSON(views)
		}

		PrintSection(fmt.Sprintf("Structure Document: %s", project))
		PrintLabelValue("document", docPath)
		fmt.Println()

		if len(entries) == 0 {
			PrintEmptyState("no files listed")
			return nil
		}

		rows := make([][]string, 0, len(entries))
		for _, entry := range entries {
			ctxPath := path.Join(project, layout.AppDir, entry.Path)
			rows = append(rows, []string{
				entry.Path,
				entry.Type.String(),
				registry.ResolveKey(ctxPath, entry.Type).String(),
			})
		}
		PrintTable([]string{"PATH", "TYPE", "TEMPLATE"}, rows)

		fmt.Println()
		PrintInfo(fmt.Sprintf("%s listed", PrintCount(len(entries), "file", "files")))
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectRoot, "root", "r", "", "Project root (defaults to the working directory)")
}
