// Package mock bundles fixed sample record sets so the CLI and tests can run
// the pipelines without touching the GitHub API.
package mock

import (
	"time"

	"github.com/gitflexhq/gitflex/internal/types"
)

func day(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// ArchitectRecords leans heavily into systems and infrastructure signals.
func ArchitectRecords() []types.RepositoryRecord {
	return []types.RepositoryRecord{
		{
			Name:            "nebula-core",
			Description:     "High-performance distributed systems framework. Built with specialized focus on zero-copy serialization.",
			Language:        "Rust",
			Stars:           1200,
			Forks:           150,
			Topics:          []string{"systems", "distributed", "rust", "performance"},
			UpdatedAt:       day("2025-01-30T00:00:00Z"),
			SizeKB:          45000,
			CommitFrequency: 15,
		},
		{
			Name:            "ts-monorepo-tools",
			Description:     "Tooling for large scale TypeScript monorepos. Includes custom build pipeline.",
			Language:        "TypeScript",
			Stars:           850,
			Forks:           80,
			Topics:          []string{"typescript", "tooling", "monorepo"},
			UpdatedAt:       day("2025-01-05T00:00:00Z"),
			SizeKB:          12000,
			CommitFrequency: 8,
		},
		{
			Name:            "go-microservices",
			Description:     "Reference architecture for Go services. Implemented using gRPC and Kafka.",
			Language:        "Go",
			Stars:           450,
			Forks:           120,
			Topics:          []string{"go", "microservices", "grpc", "kafka"},
			UpdatedAt:       day("2024-11-20T00:00:00Z"),
			SizeKB:          8000,
			CommitFrequency: 4,
		},
		{
			Name:            "k8s-operator",
			Description:     "Custom Kubernetes operator for stateful sets. Handles automatic scaling and backups.",
			Language:        "Go",
			Stars:           2000,
			Forks:           400,
			Topics:          []string{"kubernetes", "operator", "cloud-native"},
			UpdatedAt:       day("2025-02-01T00:00:00Z"),
			SizeKB:          5000,
			CommitFrequency: 12,
		},
	}
}

// ArtistRecords skews toward creative coding and visual work.
func ArtistRecords() []types.RepositoryRecord {
	return []types.RepositoryRecord{
		{
			Name:            "creative-coding-experiments",
			Description:     "Daily generative art sketches exploring noise and flow fields. Highly visual.",
			Language:        "JavaScript",
			Stars:           300,
			Forks:           45,
			Topics:          []string{"generative-art", "p5js", "creative-coding"},
			UpdatedAt:       day("2025-02-04T00:00:00Z"),
			SizeKB:          1500,
			CommitFrequency: 25,
		},
		{
			Name:            "shader-playground",
			Description:     "GLSL shader collection for interactive web experiences. Focusing on raymarching.",
			Language:        "GLSL",
			Stars:           150,
			Forks:           20,
			Topics:          []string{"shaders", "glsl", "webgl", "raymarching"},
			UpdatedAt:       day("2025-01-15T00:00:00Z"),
			SizeKB:          500,
			CommitFrequency: 5,
		},
		{
			Name:            "threejs-gallery",
			Description:     "3D immersive web experiences using Three.js and React Three Fiber.",
			Language:        "TypeScript",
			Stars:           900,
			Forks:           110,
			Topics:          []string{"threejs", "3d", "react", "r3f"},
			UpdatedAt:       day("2025-01-10T00:00:00Z"),
			SizeKB:          18000,
			CommitFrequency: 10,
		},
		{
			Name:            "interactive-typography",
			Description:     "Kinetic type experiments using CSS variables and SVG filters.",
			Language:        "CSS",
			Stars:           500,
			Forks:           30,
			Topics:          []string{"typography", "css", "animation"},
			UpdatedAt:       day("2024-12-20T00:00:00Z"),
			SizeKB:          300,
			CommitFrequency: 2,
		},
	}
}

// MinimalistRecords models a small, focused footprint.
func MinimalistRecords() []types.RepositoryRecord {
	return []types.RepositoryRecord{
		{
			Name:            "dotfiles",
			Description:     "My heavily optimized neovim config. Simple, fast, and keyboard-centric.",
			Language:        "Lua",
			Stars:           5000,
			Forks:           450,
			Topics:          []string{"neovim", "dotfiles", "lua", "minimalism"},
			UpdatedAt:       day("2025-02-03T00:00:00Z"),
			SizeKB:          200,
			CommitFrequency: 30,
		},
		{
			Name:            "tiny-utils",
			Description:     "Zero-dependency utility library. Only the essentials.",
			Language:        "TypeScript",
			Stars:           50,
			Forks:           5,
			Topics:          []string{"utils", "minimal", "essential"},
			UpdatedAt:       day("2024-05-15T00:00:00Z"),
			SizeKB:          50,
			CommitFrequency: 1,
		},
		{
			Name:            "blog",
			Description:     "Plain text static site generator. No JS, just Markdown to HTML.",
			Language:        "Go",
			Stars:           200,
			Forks:           15,
			Topics:          []string{"ssg", "markdown", "simple"},
			UpdatedAt:       day("2025-01-01T00:00:00Z"),
			SizeKB:          1000,
			CommitFrequency: 2,
		},
	}
}

// Sets maps CLI-friendly names to the bundled record sets.
func Sets() map[string][]types.RepositoryRecord {
	return map[string][]types.RepositoryRecord{
		"architect":  ArchitectRecords(),
		"artist":     ArtistRecords(),
		"minimalist": MinimalistRecords(),
	}
}

// ReferenceTime is a frozen "now" that sits a few days after the most recent
// sample record, so recency multipliers behave the same in every run.
func ReferenceTime() time.Time {
	return day("2025-02-05T00:00:00Z")
}
