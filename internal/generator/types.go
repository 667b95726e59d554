package generator

// Project selectors accepted by Run.
const (
	ProjectFrontend = "frontend"
	ProjectBackend  = "backend"
)

// Options configures a generation run.
type Options struct {
	// Root is the project root containing the frontend/ and backend/ trees.
	Root string

	// Projects is the ordered list of projects to generate.
	Projects []string

	// DryRun resolves templates without writing anything.
	DryRun bool

	// SkipScaffold disables the external frontend bootstrapper.
	SkipScaffold bool
}

// FailedEntry records a single entry that could not be written.
type FailedEntry struct {
	// Path is the destination path that failed.
	Path string

	// Err is the underlying write error.
	Err error
}

// ProjectResult accumulates the outcome for one project.
type ProjectResult struct {
	// Project is the project selector this result belongs to.
	Project string

	// DocPath is the structure document that was parsed.
	DocPath string

	// Created is the ordered list of created destination paths.
	Created []string

	// Skipped is the ordered list of destinations that already existed
	// non-empty.
	Skipped []string

	// Failed is the ordered list of entries whose write failed.
	Failed []FailedEntry

	// DocMissing is true when the structure document was absent and the
	// project was skipped wholesale.
	DocMissing bool

	// ScaffoldFailed is true when the external bootstrapper failed and the
	// project was skipped wholesale.
	ScaffoldFailed bool
}

// Result accumulates the outcome of one generation run.
type Result struct {
	// Projects holds per-project results in run order.
	Projects []ProjectResult

	// DryRun mirrors Options.DryRun.
	DryRun bool
}

// CreatedCount returns the total number of created files.
func (r *Result) CreatedCount() int {
	n := 0
	for _, p := range r.Projects {
		n += len(p.Created)
	}
	return n
}

// SkippedCount returns the total number of skipped files.
func (r *Result) SkippedCount() int {
	n := 0
	for _, p := range r.Projects {
		n += len(p.Skipped)
	}
	return n
}

// FailedCount returns the total number of failed entries.
func (r *Result) FailedCount() int {
	n := 0
	for _, p := range r.Projects {
		n += len(p.Failed)
	}
	return n
}

// CreatedPaths returns all created paths in run order.
func (r *Result) CreatedPaths() []string {
	var paths []string
	for _, p := range r.Projects {
		paths = append(paths, p.Created...)
	}
	return paths
}
