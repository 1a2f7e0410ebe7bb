package analysis

import (
	"fmt"
	"strings"

	"github.com/gitflexhq/gitflex/internal/types"
)

// archetypeOrder fixes the enumeration order used when resolving the winning
// archetype; equal scores go to the first archetype listed here.
var archetypeOrder = []Archetype{
	ArchetypeLibrary,
	ArchetypeFullStackApp,
	ArchetypeFrontendApp,
	ArchetypeBackendSvc,
	ArchetypeCLITool,
	ArchetypeMonorepo,
	ArchetypeDotfiles,
	ArchetypeDocumentation,
	ArchetypeHackathon,
	ArchetypeExperimental,
}

// fileSignatures maps exact filenames to the archetypes they hint at. Each
// match adds a fixed increment to every mapped archetype.
var fileSignatures = map[string][]Archetype{
	"next.config.js":      {ArchetypeFullStackApp, ArchetypeFrontendApp},
	"next.config.ts":      {ArchetypeFullStackApp, ArchetypeFrontendApp},
	"vite.config.ts":      {ArchetypeFrontendApp},
	"vite.config.js":      {ArchetypeFrontendApp},
	"cargo.toml":          {ArchetypeCLITool, ArchetypeBackendSvc, ArchetypeLibrary},
	"lerna.json":          {ArchetypeMonorepo},
	"pnpm-workspace.yaml": {ArchetypeMonorepo},
	"docker-compose.yml":  {ArchetypeBackendSvc, ArchetypeFullStackApp},
	"Dockerfile":          {ArchetypeBackendSvc, ArchetypeFullStackApp},
	"setup.py":            {ArchetypeLibrary, ArchetypeCLITool, ArchetypeBackendSvc},
	"go.mod":              {ArchetypeBackendSvc, ArchetypeCLITool, ArchetypeLibrary},
	".bashrc":             {ArchetypeDotfiles},
	".zshrc":              {ArchetypeDotfiles},
	"mkdocs.yml":          {ArchetypeDocumentation},
}

// The two increments are tuning constants, not load-bearing precision: file
// evidence simply outweighs naming evidence.
const (
	fileSignatureScore = 10
	keywordScore       = 5
)

// archetypeKeyword is a naming-convention fallback probe.
type archetypeKeyword struct {
	Archetype Archetype
	Keywords  []string
}

var archetypeKeywords = []archetypeKeyword{
	{ArchetypeCLITool, []string{"cli", "command line"}},
	{ArchetypeLibrary, []string{"library", "sdk"}},
	{ArchetypeDocumentation, []string{"docs", "documentation"}},
}

// installCheck is one entry of the priority-ordered lockfile checklist.
type installCheck struct {
	File       string
	Manager    string
	Command    string
	Confidence int
}

// installChecks is evaluated top-down; the first filename present wins.
var installChecks = []installCheck{
	{"yarn.lock", "yarn", "yarn install", 100},
	{"pnpm-lock.yaml", "pnpm", "pnpm install", 100},
	{"bun.lockb", "bun", "bun install", 100},
	{"package-lock.json", "npm", "npm install", 90},
	{"go.mod", "go", "go mod download", 95},
	{"Cargo.toml", "cargo", "cargo build", 95},
	{"requirements.txt", "pip", "pip install -r requirements.txt", 90},
}

// AnalyzeRepository classifies a single repository into a project archetype
// using file signatures plus a keyword fallback, and infers install command
// and stability tier.
func (a *Analyzer) AnalyzeRepository(repo types.RepositoryRecord, fileList []string, identity string) RepoReport {
	if identity == "" {
		identity = "user"
	}

	scores := map[Archetype]int{}
	var evidence []string

	for _, file := range fileList {
		matches, ok := fileSignatures[file]
		if !ok {
			continue
		}
		for _, arch := range matches {
			scores[arch] += fileSignatureScore
			evidence = append(evidence, fmt.Sprintf("Detected %s", file))
		}
	}

	blob := strings.ToLower(repo.Name + " " + repo.Description + " " + strings.Join(repo.Topics, " "))
	for _, probe := range archetypeKeywords {
		for _, kw := range probe.Keywords {
			if strings.Contains(blob, kw) {
				scores[probe.Archetype] += keywordScore
				break
			}
		}
	}

	primary := ArchetypeExperimental
	maxScore := 0
	for _, arch := range archetypeOrder {
		if scores[arch] > maxScore {
			maxScore = scores[arch]
			primary = arch
		}
	}

	var install *InstallCommand
	for _, check := range installChecks {
		if containsString(fileList, check.File) {
			install = &InstallCommand{
				Manager:    check.Manager,
				Command:    check.Command,
				Confidence: check.Confidence,
			}
			break
		}
	}

	yearsSinceUpdate := a.now().Sub(repo.UpdatedAt).Hours() / (24 * 365)
	var stability Stability
	switch {
	case yearsSinceUpdate > 2:
		stability = StabilityDeprecated
	case repo.Stars > 1000:
		stability = StabilityStable
	case repo.Stars > 100:
		stability = StabilityBeta
	default:
		stability = StabilityExperimental
	}

	evidenceStr := "Naming conventions"
	if len(evidence) > 0 {
		evidenceStr = strings.Join(firstN(evidence, 3), ", ")
	}

	signals := make([]RepoSignal, 0, len(evidence))
	for _, e := range evidence {
		signals = append(signals, RepoSignal{
			Type:        "Infrastructure",
			Name:        "Structural Evidence",
			Description: e,
			Evidence:    e,
			Strength:    "High",
		})
	}

	return RepoReport{
		Target: RepoTarget{
			Owner:       identity,
			Name:        repo.Name,
			Description: repo.Description,
			URL:         fmt.Sprintf("%s/%s/%s", defaultHost, identity, repo.Name),
		},
		Archetype:   primary,
		Confidence:  clampInt(maxScore*10, 40, 99),
		Explanation: fmt.Sprintf("Identified as %s based on structural signatures: %s.", primary, evidenceStr),
		Stability:   stability,
		TechStack: map[string]string{
			"Language": repo.Language,
		},
		Signals:     signals,
		Install:     install,
		VisualTheme: themeForArchetype(primary),
	}
}

func themeForArchetype(arch Archetype) string {
	switch arch {
	case ArchetypeLibrary:
		return "Technical"
	case ArchetypeCLITool:
		return "Minimal"
	default:
		return "Showcase"
	}
}
