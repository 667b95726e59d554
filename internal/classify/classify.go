// Package classify maps relative file paths to semantic file types.
//
// Classification is a pure function of the path string: given the same input
// it always produces the same FileType, and every input produces exactly one
// (unrecognized paths fall back to TypeGeneric rather than failing). The
// rules are matched against the lower-cased filename and full path, in
// priority order: exact config filenames first, then test markers, then
// directory-segment conventions, then extension.
package classify

import (
	"path"
	"strings"
)

// FileType is the semantic role inferred for a file path.
type FileType int

const (
	TypeGeneric FileType = iota
	TypeComponent
	TypeHook
	TypeService
	TypeBaseService
	TypeController
	TypeBaseController
	TypeModel
	TypeBaseModel
	TypeRepository
	TypeBaseRepository
	TypeMiddleware
	TypeRoute
	TypeMigration
	TypeTest
	TypePackageManifest
	TypeTSConfig
	TypeTSConfigNode
)

var typeNames = map[FileType]string{
	TypeGeneric:         "generic",
	TypeComponent:       "component",
	TypeHook:            "hook",
	TypeService:         "service",
	TypeBaseService:     "base_service",
	TypeController:      "controller",
	TypeBaseController:  "base_controller",
	TypeModel:           "model",
	TypeBaseModel:       "base_model",
	TypeRepository:      "repository",
	TypeBaseRepository:  "base_repository",
	TypeMiddleware:      "middleware",
	TypeRoute:           "route",
	TypeMigration:       "migration",
	TypeTest:            "test",
	TypePackageManifest: "package",
	TypeTSConfig:        "tsconfig",
	TypeTSConfigNode:    "tsconfig_node",
}

func (t FileType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "generic"
}

// Classify returns the semantic file type for a slash-separated relative
// path. It is total: every path gets exactly one type.
func Classify(filePath string) FileType {
	pathLower := strings.ToLower(filePath)
	filename := strings.ToLower(path.Base(filePath))

	// Exact config filenames win regardless of directory.
	switch filename {
	case "package.json":
		return TypePackageManifest
	case "tsconfig.json":
		return TypeTSConfig
	case "tsconfig.node.json":
		return TypeTSConfigNode
	}

	switch {
	case strings.Contains(pathLower, "/tests/") ||
		strings.Contains(filename, ".test.") ||
		strings.Contains(filename, ".spec."):
		return TypeTest
	case strings.Contains(pathLower, "/components/") && strings.HasSuffix(filename, ".tsx"):
		return TypeComponent
	case strings.Contains(pathLower, "/services/"):
		if strings.Contains(filename, "baseservice") {
			return TypeBaseService
		}
		return TypeService
	case strings.Contains(pathLower, "/hooks/"):
		return TypeHook
	case strings.Contains(pathLower, "/controllers/"):
		if strings.Contains(filename, "basecontroller") {
			return TypeBaseController
		}
		return TypeController
	case strings.Contains(pathLower, "/models/"):
		if strings.Contains(filename, "basemodel") {
			return TypeBaseModel
		}
		return TypeModel
	case strings.Contains(pathLower, "/repositories/"):
		if strings.Contains(filename, "baserepository") {
			return TypeBaseRepository
		}
		return TypeRepository
	case strings.Contains(pathLower, "/middleware/"):
		return TypeMiddleware
	case strings.Contains(pathLower, "/routes/"):
		return TypeRoute
	case strings.HasSuffix(filename, ".sql"):
		return TypeMigration
	}

	return TypeGeneric
}
