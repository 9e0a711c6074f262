package conflict

import (
	"path"
	"strings"
)

// Patterns holds the path classification tables the rule chain matches
// against. The defaults encode common naming conventions; callers with
// domain-specific layouts supply their own tables instead of patching
// the rules.
type Patterns struct {
	// Migration matches schema/migration/database paths (rule 1)
	Migration []string
	// SharedLib matches shared/common/core/utility library roots (rule 2)
	SharedLib []string
	// ConfigFiles matches configuration artifact base names (rule 3)
	ConfigFiles []string
	// ConfigDirs matches configuration directories (rule 3)
	ConfigDirs []string
	// APISurface matches public API/contract definition paths (rule 4)
	APISurface []string
	// TestDoc matches test- and documentation-like paths (rule 6)
	TestDoc []string
	// ModuleRoots lists directory names recognized as independently
	// isolated module trees (rule 7)
	ModuleRoots []string
}

// DefaultPatterns returns the baseline classification tables
func DefaultPatterns() Patterns {
	return Patterns{
		Migration: []string{
			"migration", "migrations", "migrate", "schema", "database/ddl", "db/schema",
		},
		SharedLib: []string{
			"shared", "common", "core", "lib", "libs", "util", "utils", "pkg/common",
		},
		ConfigFiles: []string{
			"package.json", "package-lock.json", "go.mod", "go.sum", "cargo.toml",
			"pyproject.toml", "requirements.txt", "makefile", "dockerfile",
			"docker-compose.yml", "docker-compose.yaml", "manifest.json",
			".env", ".env.local", ".env.production", "tsconfig.json", "webpack.config.js",
		},
		ConfigDirs: []string{
			"config", "configs", ".github", "deploy", "deployment",
		},
		APISurface: []string{
			"routes", "router", "controller", "controllers", "api/", "handlers",
			"endpoints", "interface", "interfaces", "contracts", "proto",
		},
		TestDoc: []string{
			"test", "tests", "spec", "specs", "__tests__", "doc", "docs",
			"readme", "changelog", ".md",
		},
		ModuleRoots: []string{
			"components", "pages", "views", "widgets", "tools", "scripts",
			"docs", "doc", "test", "tests", "examples", "cmd", "plugins",
		},
	}
}

// matchesAny reports whether the lowercased path contains any of the
// patterns as a path segment or substring
func matchesAny(filePath string, patterns []string) bool {
	lower := strings.ToLower(filePath)
	for _, pattern := range patterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// isConfigArtifact reports whether the path names a configuration file
// (manifest, env file, structured build config) or lives in a config tree
func (p Patterns) isConfigArtifact(filePath string) bool {
	lower := strings.ToLower(filePath)
	base := path.Base(lower)

	for _, name := range p.ConfigFiles {
		if base == name {
			return true
		}
	}
	if strings.HasPrefix(base, ".env") {
		return true
	}

	for _, segment := range strings.Split(path.Dir(lower), "/") {
		for _, dir := range p.ConfigDirs {
			if segment == dir {
				return true
			}
		}
	}
	return false
}

// moduleRoot resolves the isolated module tree a path belongs to, or
// "" when the path is not under a recognized root. Paths under a
// source prefix (src/, internal/, apps/) resolve one level deeper, so
// src/components/button.tsx and components/button.tsx agree.
func (p Patterns) moduleRoot(filePath string) string {
	segments := strings.Split(strings.ToLower(filePath), "/")
	if len(segments) > 1 {
		switch segments[0] {
		case "src", "internal", "apps", "packages":
			segments = segments[1:]
		}
	}
	if len(segments) < 2 {
		// A bare top-level file belongs to no isolated tree
		return ""
	}

	for _, root := range p.ModuleRoots {
		if segments[0] == root {
			// components/button/... isolates at the component, not the tree
			return segments[0] + "/" + segments[1]
		}
	}
	return ""
}
