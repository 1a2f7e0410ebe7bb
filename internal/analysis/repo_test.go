package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitflexhq/gitflex/internal/types"
)

func TestAnalyzeRepositoryFileSignatures(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		expected Archetype
		theme    string
	}{
		{
			name:     "next config wins full stack",
			files:    []string{"next.config.js", "README.md"},
			expected: ArchetypeFullStackApp,
			theme:    "Showcase",
		},
		{
			name:     "vite config is frontend",
			files:    []string{"vite.config.ts"},
			expected: ArchetypeFrontendApp,
			theme:    "Showcase",
		},
		{
			name:     "workspace manifest is monorepo",
			files:    []string{"pnpm-workspace.yaml"},
			expected: ArchetypeMonorepo,
			theme:    "Showcase",
		},
		{
			name:     "shell rc files are dotfiles",
			files:    []string{".bashrc", ".zshrc"},
			expected: ArchetypeDotfiles,
			theme:    "Showcase",
		},
		{
			name:     "go module leans backend",
			files:    []string{"go.mod", "Dockerfile"},
			expected: ArchetypeBackendSvc,
			theme:    "Showcase",
		},
		{
			name:     "mkdocs is documentation",
			files:    []string{"mkdocs.yml"},
			expected: ArchetypeDocumentation,
			theme:    "Showcase",
		},
		{
			name:     "no signals falls back to experimental",
			files:    []string{"README.md", "LICENSE"},
			expected: ArchetypeExperimental,
			theme:    "Showcase",
		},
	}

	analyzer := testAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := types.RepositoryRecord{Name: "sample", UpdatedAt: frozenNow()}
			report := analyzer.AnalyzeRepository(record, tt.files, "octocat")

			assert.Equal(t, tt.expected, report.Archetype)
			assert.Equal(t, tt.theme, report.VisualTheme)
		})
	}
}

func TestAnalyzeRepositoryKeywordFallback(t *testing.T) {
	analyzer := testAnalyzer()

	record := types.RepositoryRecord{
		Name:        "rusty-cli",
		Description: "A tiny command line helper.",
		UpdatedAt:   frozenNow(),
	}
	report := analyzer.AnalyzeRepository(record, nil, "octocat")

	assert.Equal(t, ArchetypeCLITool, report.Archetype)
	assert.Equal(t, "Minimal", report.VisualTheme)
	assert.Equal(t, 50, report.Confidence)
}

func TestAnalyzeRepositoryConfidenceClamp(t *testing.T) {
	analyzer := testAnalyzer()
	record := types.RepositoryRecord{Name: "sample", UpdatedAt: frozenNow()}

	t.Run("floor at 40 with no evidence", func(t *testing.T) {
		report := analyzer.AnalyzeRepository(record, nil, "octocat")
		assert.Equal(t, 40, report.Confidence)
	})

	t.Run("ceiling at 99 with strong evidence", func(t *testing.T) {
		files := []string{"next.config.js", "docker-compose.yml", "Dockerfile"}
		report := analyzer.AnalyzeRepository(record, files, "octocat")
		assert.Equal(t, 99, report.Confidence)
	})
}

func TestAnalyzeRepositoryInstallPriority(t *testing.T) {
	tests := []struct {
		name       string
		files      []string
		manager    string
		command    string
		confidence int
	}{
		{
			name:       "yarn outranks npm lockfile",
			files:      []string{"package-lock.json", "yarn.lock"},
			manager:    "yarn",
			command:    "yarn install",
			confidence: 100,
		},
		{
			name:       "pnpm lockfile",
			files:      []string{"pnpm-lock.yaml"},
			manager:    "pnpm",
			command:    "pnpm install",
			confidence: 100,
		},
		{
			name:       "go module",
			files:      []string{"go.mod"},
			manager:    "go",
			command:    "go mod download",
			confidence: 95,
		},
		{
			name:       "cargo manifest",
			files:      []string{"Cargo.toml"},
			manager:    "cargo",
			command:    "cargo build",
			confidence: 95,
		},
		{
			name:       "python requirements",
			files:      []string{"requirements.txt"},
			manager:    "pip",
			command:    "pip install -r requirements.txt",
			confidence: 90,
		},
	}

	analyzer := testAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := types.RepositoryRecord{Name: "sample", UpdatedAt: frozenNow()}
			report := analyzer.AnalyzeRepository(record, tt.files, "octocat")

			require.NotNil(t, report.Install)
			assert.Equal(t, tt.manager, report.Install.Manager)
			assert.Equal(t, tt.command, report.Install.Command)
			assert.Equal(t, tt.confidence, report.Install.Confidence)
		})
	}

	t.Run("no lockfile means no install command", func(t *testing.T) {
		record := types.RepositoryRecord{Name: "sample", UpdatedAt: frozenNow()}
		report := analyzer.AnalyzeRepository(record, []string{"README.md"}, "octocat")
		assert.Nil(t, report.Install)
	})
}

func TestAnalyzeRepositoryStability(t *testing.T) {
	tests := []struct {
		name     string
		stars    int
		ageYears int
		expected Stability
	}{
		{name: "stale repo is deprecated regardless of stars", stars: 5000, ageYears: 3, expected: StabilityDeprecated},
		{name: "popular and fresh is stable", stars: 1500, ageYears: 0, expected: StabilityStable},
		{name: "moderately starred is beta", stars: 500, ageYears: 0, expected: StabilityBeta},
		{name: "quiet repo is experimental", stars: 10, ageYears: 0, expected: StabilityExperimental},
	}

	analyzer := testAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := types.RepositoryRecord{
				Name:      "sample",
				Stars:     tt.stars,
				UpdatedAt: frozenNow().AddDate(-tt.ageYears, 0, -1),
			}
			report := analyzer.AnalyzeRepository(record, nil, "octocat")
			assert.Equal(t, tt.expected, report.Stability)
		})
	}
}

func TestAnalyzeRepositoryTarget(t *testing.T) {
	record := types.RepositoryRecord{
		Name:        "nebula-core",
		Description: "Distributed systems framework.",
		Language:    "Rust",
		UpdatedAt:   frozenNow(),
	}

	report := testAnalyzer().AnalyzeRepository(record, []string{"Cargo.toml"}, "octocat")

	assert.Equal(t, "octocat", report.Target.Owner)
	assert.Equal(t, "nebula-core", report.Target.Name)
	assert.Equal(t, "https://github.com/octocat/nebula-core", report.Target.URL)
	assert.Equal(t, "Rust", report.TechStack["Language"])
}

func TestAnalyzeRepositorySignalsCarryEvidence(t *testing.T) {
	record := types.RepositoryRecord{Name: "sample", UpdatedAt: frozenNow()}

	report := testAnalyzer().AnalyzeRepository(record, []string{"next.config.js"}, "octocat")

	require.NotEmpty(t, report.Signals)
	assert.Equal(t, "Detected next.config.js", report.Signals[0].Evidence)
	assert.Contains(t, report.Explanation, "next.config.js")
}
