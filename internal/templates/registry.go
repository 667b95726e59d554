// Package templates renders placeholder content for generated files.
//
// A file's classify.FileType is refined into a Key using the path context
// (frontend vs backend) and filename signals, and each Key owns one fixed or
// name-parametrized content body. Rendering is pure: identical (key, path)
// input always produces identical output.
package templates

import (
	"path"
	"strings"

	"structgen/internal/classify"
)

// Key selects a content generator. It is the context-disambiguated
// refinement of a FileType: "service" splits into frontend/backend variants,
// "test" splits into four sub-kinds, and generic files are sniffed into
// index/types/constants/utility buckets.
type Key int

const (
	KeyGeneric Key = iota
	KeyReactComponent
	KeyReactHook
	KeyReactTest
	KeyFrontendService
	KeyFrontendBaseService
	KeyBackendService
	KeyBackendBaseService
	KeyController
	KeyBaseController
	KeyModel
	KeyBaseModel
	KeyRepository
	KeyBaseRepository
	KeyMiddleware
	KeyRoute
	KeyMigration
	KeyBackendTest
	KeyIntegrationTest
	KeyE2ETest
	KeyPerformanceTest
	KeyPackageJSON
	KeyTSConfig
	KeyTSConfigNode
	KeyIndex
	KeyTypes
	KeyConstants
	KeyUtility
)

var keyNames = map[Key]string{
	KeyGeneric:             "generic",
	KeyReactComponent:      "react_component",
	KeyReactHook:           "react_hook",
	KeyReactTest:           "react_test",
	KeyFrontendService:     "frontend_service",
	KeyFrontendBaseService: "frontend_base_service",
	KeyBackendService:      "backend_service",
	KeyBackendBaseService:  "backend_base_service",
	KeyController:          "controller",
	KeyBaseController:      "base_controller",
	KeyModel:               "model",
	KeyBaseModel:           "base_model",
	KeyRepository:          "repository",
	KeyBaseRepository:      "base_repository",
	KeyMiddleware:          "middleware",
	KeyRoute:               "route",
	KeyMigration:           "migration",
	KeyBackendTest:         "backend_test",
	KeyIntegrationTest:     "integration_test",
	KeyE2ETest:             "e2e_test",
	KeyPerformanceTest:     "performance_test",
	KeyPackageJSON:         "package_json",
	KeyTSConfig:            "tsconfig",
	KeyTSConfigNode:        "tsconfig_node",
	KeyIndex:               "index",
	KeyTypes:               "types",
	KeyConstants:           "constants",
	KeyUtility:             "utility",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "generic"
}

// Registry resolves template keys and renders content bodies.
type Registry struct{}

// NewRegistry creates a Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// ResolveKey refines a file type into a template key using the path context.
// Resolution is first-match-wins in the order below; every (path, type) pair
// resolves to exactly one key.
func (r *Registry) ResolveKey(filePath string, ft classify.FileType) Key {
	filename := strings.ToLower(path.Base(filePath))
	project := classify.ProjectKind(filePath)

	// Base-class filenames trump the parsed file type.
	if strings.Contains(filename, "baseservice") {
		if project == classify.ProjectFrontend {
			return KeyFrontendBaseService
		}
		return KeyBackendBaseService
	}
	if strings.Contains(filename, "basecontroller") {
		return KeyBaseController
	}

	switch ft {
	case classify.TypePackageManifest:
		return KeyPackageJSON
	case classify.TypeTSConfig:
		return KeyTSConfig
	case classify.TypeTSConfigNode:
		return KeyTSConfigNode
	case classify.TypeService:
		if project == classify.ProjectFrontend {
			return KeyFrontendService
		}
		return KeyBackendService
	case classify.TypeTest:
		switch {
		case strings.Contains(filename, "integration"):
			return KeyIntegrationTest
		case strings.Contains(filename, "e2e"):
			return KeyE2ETest
		case strings.Contains(filename, "performance"), strings.Contains(filename, "load"):
			return KeyPerformanceTest
		case project == classify.ProjectFrontend:
			return KeyReactTest
		default:
			return KeyBackendTest
		}
	case classify.TypeComponent:
		return KeyReactComponent
	case classify.TypeHook:
		return KeyReactHook
	case classify.TypeController:
		return KeyController
	case classify.TypeModel:
		return KeyModel
	case classify.TypeBaseModel:
		return KeyBaseModel
	case classify.TypeRepository:
		return KeyRepository
	case classify.TypeBaseRepository:
		return KeyBaseRepository
	case classify.TypeMiddleware:
		return KeyMiddleware
	case classify.TypeRoute:
		return KeyRoute
	case classify.TypeMigration:
		return KeyMigration
	case classify.TypeBaseService:
		// Reachable only when the filename spells the base service some
		// other way; context still picks the variant.
		if project == classify.ProjectFrontend {
			return KeyFrontendBaseService
		}
		return KeyBackendBaseService
	case classify.TypeBaseController:
		return KeyBaseController
	case classify.TypeGeneric:
		stem := fileStem(filePath)
		switch {
		case stem == "index":
			return KeyIndex
		case strings.Contains(stem, "types"):
			return KeyTypes
		case strings.Contains(stem, "constants"), strings.Contains(stem, "config"):
			return KeyConstants
		case strings.Contains(stem, "utils"), strings.Contains(stem, "helpers"):
			return KeyUtility
		}
	}

	return KeyGeneric
}

// Render produces the content body for a key. filePath parametrizes the
// body (derived names, import references); the output is deterministic.
func (r *Registry) Render(key Key, filePath string) string {
	switch key {
	case KeyReactComponent:
		return renderReactComponent(filePath)
	case KeyReactHook:
		return renderReactHook(filePath)
	case KeyReactTest:
		return renderReactTest(filePath)
	case KeyFrontendService:
		return renderFrontendService(filePath)
	case KeyFrontendBaseService:
		return renderFrontendBaseService()
	case KeyBackendService:
		return renderBackendService(filePath)
	case KeyBackendBaseService:
		return renderBackendBaseService()
	case KeyController:
		return renderController(filePath)
	case KeyBaseController:
		return renderBaseController()
	case KeyModel:
		return renderModel(filePath)
	case KeyBaseModel:
		return renderBaseModel()
	case KeyRepository:
		return renderRepository(filePath)
	case KeyBaseRepository:
		return renderBaseRepository()
	case KeyMiddleware:
		return renderMiddleware(filePath)
	case KeyRoute:
		return renderRoute(filePath)
	case KeyMigration:
		return renderMigration(filePath)
	case KeyBackendTest:
		return renderBackendTest(filePath)
	case KeyIntegrationTest:
		return renderIntegrationTest(filePath)
	case KeyE2ETest:
		return renderE2ETest(filePath)
	case KeyPerformanceTest:
		return renderPerformanceTest(filePath)
	case KeyPackageJSON:
		return renderPackageJSON(filePath)
	case KeyTSConfig:
		return renderTSConfig(filePath)
	case KeyTSConfigNode:
		return renderTSConfigNode()
	case KeyIndex:
		return renderIndex(filePath)
	case KeyTypes:
		return renderTypes(filePath)
	case KeyConstants:
		return renderConstants(filePath)
	case KeyUtility:
		return renderUtility(filePath)
	default:
		return renderGeneric(filePath)
	}
}

// fileStem returns the filename with its final extension removed, lower-cased
// for signal sniffing.
func fileStem(filePath string) string {
	base := path.Base(filePath)
	return strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
}

// stem returns the filename with its final extension removed, case intact.
func stem(filePath string) string {
	base := path.Base(filePath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// testSubject strips .test/.spec/.e2e markers from a stem, leaving the name
// of the thing under test.
func testSubject(s string) string {
	s = strings.ReplaceAll(s, ".test", "")
	s = strings.ReplaceAll(s, ".spec", "")
	s = strings.ReplaceAll(s, ".e2e", "")
	return s
}

// ClassName converts a file stem to a declared type name: underscore-separated
// words with each leading letter upper-cased. Already-capitalized names pass
// through untouched, so UserController stays UserController.
func ClassName(s string) string {
	words := strings.Split(testSubject(s), "_")
	var b strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}

// featureName turns a dashed test stem into a human-readable feature label.
func featureName(s string) string {
	words := strings.Split(strings.ReplaceAll(testSubject(s), "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
