package classify

import "strings"

// Project identifies which sub-project a path belongs to.
type Project int

const (
	ProjectUnknown Project = iota
	ProjectFrontend
	ProjectBackend
)

func (p Project) String() string {
	switch p {
	case ProjectFrontend:
		return "frontend"
	case ProjectBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// ProjectKind infers the sub-project from path segments. Matching is on
// whole segments so both "frontend/app/src/..." and absolute paths that
// embed a /frontend/ directory resolve the same way.
func ProjectKind(filePath string) Project {
	for _, seg := range strings.Split(strings.ToLower(filePath), "/") {
		switch seg {
		case "frontend":
			return ProjectFrontend
		case "backend":
			return ProjectBackend
		}
	}
	return ProjectUnknown
}
