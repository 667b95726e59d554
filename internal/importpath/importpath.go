// Package importpath computes relative module references between generated
// files.
//
// Generated test files import the component or class they exercise, and the
// reference must climb out of the tests tree correctly. The resolvers anchor
// on the conventional "src" (or "tests") directory segment; when no anchor is
// present they degrade to a same-directory reference instead of failing, so
// template rendering never errors on an unconventional layout.
package importpath

import (
	"path"
	"strings"
)

// groupingLabels are test-tree grouping directories that must not inflate
// the computed climb depth. tests/unit/components/x and tests/components/x
// both resolve to the same component reference.
var groupingLabels = map[string]bool{
	"unit":        true,
	"integration": true,
	"e2e":         true,
	"performance": true,
}

// Component resolves a module reference from a test file to the component it
// exercises, assuming both live under the same src root.
//
//	src/tests/unit/components/auth/Login.test.tsx + "Login"
//	  -> ../../../components/auth/Login
func Component(fromPath, stem string) string {
	dirs, ok := dirsUnderAnchor(fromPath, "src")
	if !ok {
		return "./" + stem
	}
	if len(dirs) > 0 && dirs[0] == "tests" {
		// The grouping label is dropped entirely; the tests dir itself still
		// counts one climb but never appears in the target path.
		dirs = append([]string{"tests"}, dropGrouping(dirs[1:])...)
	}
	if len(dirs) == 0 {
		return "./" + stem
	}
	up := strings.Repeat("../", len(dirs))
	target := dirs
	if target[0] == "tests" {
		target = target[1:]
	}
	if len(target) == 0 {
		return up + stem
	}
	return up + strings.Join(target, "/") + "/" + stem
}

// Source resolves a module reference from a backend test file to the source
// file it exercises, for layouts where tests/ is a sibling of src/.
//
//	tests/unit/services/AuthService.test.ts + "AuthService"
//	  -> ../../src/services/AuthService
func Source(fromPath, stem string) string {
	dirs, ok := dirsUnderAnchor(fromPath, "tests")
	if !ok {
		return "./" + stem
	}
	dirs = dropGrouping(dirs)
	if len(dirs) == 0 {
		return "../src/" + stem
	}
	up := strings.Repeat("../", len(dirs)+1)
	return up + "src/" + strings.Join(dirs, "/") + "/" + stem
}

// dirsUnderAnchor returns the directory segments between the first anchor
// segment and the filename. The second return is false when the anchor is
// absent from the path.
func dirsUnderAnchor(filePath, anchor string) ([]string, bool) {
	dir := path.Dir(filePath)
	segments := strings.Split(dir, "/")
	for i, seg := range segments {
		if seg == anchor {
			rest := segments[i+1:]
			// Drop empty segments left by doubled or trailing slashes.
			dirs := make([]string, 0, len(rest))
			for _, s := range rest {
				if s != "" && s != "." {
					dirs = append(dirs, s)
				}
			}
			return dirs, true
		}
	}
	return nil, false
}

// dropGrouping removes a single leading grouping label such as "unit".
func dropGrouping(dirs []string) []string {
	if len(dirs) > 0 && groupingLabels[dirs[0]] {
		return dirs[1:]
	}
	return dirs
}
