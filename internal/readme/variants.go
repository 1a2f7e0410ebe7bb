// Package readme renders finished analysis reports into stylistically
// distinct README variants. All generators are pure functions of the report:
// same report in, byte-identical variants out.
package readme

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/gitflexhq/gitflex/internal/analysis"
)

// Variant is one rendered document derived from a report. Premium is display
// metadata only; the renderer never gates output.
type Variant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Markdown  string `json:"markdown"`
	Theme     string `json:"theme"`
	IsPremium bool   `json:"isPremium"`
}

const noProjectsPlaceholder = "*No public projects discovered yet.*"

var shieldColors = map[string]string{
	"lime":  "a3e635",
	"zinc":  "18181b",
	"white": "ffffff",
	"error": "ef4444",
}

func shield(label, value, color string) string {
	hex, ok := shieldColors[color]
	if !ok {
		hex = color
	}
	return fmt.Sprintf("![%s](https://img.shields.io/badge/%s-%s-%s?style=flat-square&labelColor=18181b)",
		label, url.PathEscape(label), url.PathEscape(value), hex)
}

var personalityBios = map[analysis.Role]string{
	analysis.RoleBackendArchitect:     "Architecting resilient distributed systems. I prioritize architectural integrity, scalability, and type-safety in high-throughput environments.",
	analysis.RoleFrontendEngineer:     "Building accessible, high-performance user interfaces. I believe the browser is an infinite canvas for interaction design.",
	analysis.RoleCreativeTechnologist: "Operating at the intersection of aesthetic and binary. I build immersive web experiences using WebGL and advanced motion systems.",
	analysis.RoleMLEngineer:           "Developing practical intelligence. Focused on neural architecture, data hygiene, and robust model deployment.",
	analysis.RoleIndieHacker:          "Generalist builder optimized for shipping. I focus on high-velocity MVP development and sustainable product growth.",
	analysis.RoleFullStackDev:         "End-to-end engineer bridging the gap between database performance and UI fluidity.",
	analysis.RoleSystemsDesigner:      "Developing zero-cost abstractions and low-level efficiencies. I speak the language of memory-safety and kernel-level performance.",
	analysis.RoleUIScientist:          "Experimental builder exploring the future of human-computer interaction through prototypes and gestures.",
	analysis.RoleKnowledgeArchitect:   "Synthesizing complex technical landscapes into structured, accessible knowledge. I value documentation as a first-class citizen of engineering.",
	analysis.RoleExplorer:             "Currently navigating the GitHub ecosystem, establishing a footprint in emerging technologies and open-source contributions.",
}

func personalityBio(role analysis.Role) string {
	if bio, ok := personalityBios[role]; ok {
		return bio
	}
	return "Dedicated software engineer focused on building meaningful open-source tools and contributing to the global developer community."
}

// formatProjects renders the featured project list in one of three
// sub-styles: "minimal" bullet list, "cards" hero layout, or "classic"
// plain headings.
func formatProjects(projects []analysis.FeaturedProject, style string) string {
	if len(projects) == 0 {
		return noProjectsPlaceholder
	}

	switch style {
	case "minimal":
		lines := make([]string, 0, len(projects))
		for _, p := range projects {
			lines = append(lines, fmt.Sprintf("- **[%s](%s)** — %s", p.Name, p.URL, p.Description))
		}
		return strings.Join(lines, "\n")

	case "cards":
		hero := projects[0]
		others := projects[1:]
		out := fmt.Sprintf("\n### 🚀 Hero Project: [%s](%s)\n> %s\n%s %s\n",
			hero.Name, hero.URL, hero.Description,
			shield("Primary Stack", hero.Language, "lime"),
			shield("Stars", fmt.Sprintf("%d", hero.Stars), "white"))
		if len(others) > 0 {
			lines := make([]string, 0, len(others))
			for _, p := range others {
				lines = append(lines, fmt.Sprintf("- [%s](%s) — *%s*", p.Name, p.URL, p.Language))
			}
			out += fmt.Sprintf("\n#### Secondary Architectures\n%s\n", strings.Join(lines, "\n"))
		}
		return out

	default: // classic
		blocks := make([]string, 0, len(projects))
		for _, p := range projects {
			blocks = append(blocks, fmt.Sprintf("#### %s\n%s\n", p.Name, p.Description))
		}
		return strings.Join(blocks, "\n")
	}
}

// topStackEntries returns stack-strength keys sorted by strength descending.
// Ties fall back to name order so output stays deterministic across runs.
func topStackEntries(stack map[string]int, n int) []string {
	keys := make([]string, 0, len(stack))
	for k := range stack {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if stack[keys[i]] != stack[keys[j]] {
			return stack[keys[i]] > stack[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func pick(values []string, i int, fallback string) string {
	if i < len(values) {
		return values[i]
	}
	return fallback
}

func joinRange(values []string, lo, hi int, fallback string) string {
	if lo >= len(values) {
		return fallback
	}
	if hi > len(values) {
		hi = len(values)
	}
	return strings.Join(values[lo:hi], ", ")
}

// GenerateVariants maps a profile report to its four named document
// variants: minimal, bold, pro, and terminal.
func GenerateVariants(report analysis.Report) []Variant {
	role := report.Primary.Role
	topLangs := topStackEntries(report.StackStrength, 5)

	return []Variant{
		minimalVariant(report, role, topLangs),
		boldVariant(report, role, topLangs),
		proVariant(report, role, topLangs),
		terminalVariant(report, role, topLangs),
	}
}

func minimalVariant(report analysis.Report, role analysis.Role, topLangs []string) Variant {
	markdown := fmt.Sprintf(`# %s.

%s

### ⚡ Neural Stack
%s

### 🏗 Discovery
%s

---
*Generated via GitFlex Intelligence — Verified %s Archetype.*`,
		strings.ToLower(string(role)),
		personalityBio(role),
		strings.Join(topLangs, " • "),
		formatProjects(report.FeaturedProjects, "minimal"),
		report.Primary.Role,
	)

	return Variant{
		ID:       "minimal",
		Name:     "Minimalist Synthesis",
		Theme:    string(analysis.ThemeMinimalist),
		Markdown: markdown,
	}
}

func boldVariant(report analysis.Report, role analysis.Role, topLangs []string) Variant {
	hybrid := ""
	if report.Secondary != nil {
		hybrid = fmt.Sprintf(" Hybrid background in %s.", report.Secondary.Role)
	}

	shields := make([]string, 0, len(topLangs))
	for _, lang := range topLangs {
		shields = append(shields, shield(lang, "Focus", "lime"))
	}

	markdown := fmt.Sprintf(`<div align="center">
  <h1>✦ %s ✦</h1>
  <p align="center">
    <strong>Engineering with Intent. Design with Authority.</strong>
  </p>
  <br/>
</div>

### ✦ SYNTHESIS
%s%s

### ✦ ECOSYSTEM
%s

### ✦ ARCHITECTURES
%s

<br/>

<div align="center">
  <img src="https://github-readme-stats.vercel.app/api/top-langs/?username=%s&layout=compact&hide_border=true&title_color=a3e635&text_color=ffffff&bg_color=18181b" alt="Top Langs" />
</div>`,
		strings.ToUpper(string(role)),
		personalityBio(role),
		hybrid,
		strings.Join(shields, " "),
		formatProjects(report.FeaturedProjects, "cards"),
		ownerFromProjects(report.FeaturedProjects),
	)

	return Variant{
		ID:        "bold",
		Name:      "Bold Expression",
		Theme:     string(analysis.ThemeArtist),
		IsPremium: true,
		Markdown:  markdown,
	}
}

func proVariant(report analysis.Report, role analysis.Role, topLangs []string) Variant {
	confidenceLine := fmt.Sprintf("%d%% Intelligence Match", report.Primary.Confidence)
	if report.IsUserRefined {
		confidenceLine = "Human Verified"
	}

	focus := "Professional Growth"
	if len(report.Signals) > 0 && report.Signals[0].Title != "" {
		focus = report.Signals[0].Title
	}

	growth := "Expanding Technical Horizon"
	if report.Emerging != nil {
		growth = report.Emerging.Title
	}

	markdown := fmt.Sprintf(`# %s
**Expertise in %s ecosystems and %s methodologies.**

### 💼 Career Synthesis
%s

- 🧪 **Identity Confidence**: %s
- 🔭 **Current Focus**: %s
- 🌱 **Neural Growth**: %s

### 🛠 Core Competencies
| Category | Technical Stack | Proficiency |
| :--- | :--- | :--- |
| Primary | %s | Expert |
| Supporting | %s | Mid-Market |

### 🚀 Key Contributions
%s

### 📫 Connectivity
- Portfolio: [YourSite.com](#)
- LinkedIn: [Your Profile](#)`,
		role,
		pick(topLangs, 0, "Modern"),
		report.Primary.Theme,
		personalityBio(role),
		confidenceLine,
		focus,
		growth,
		joinRange(topLangs, 0, 2, "N/A"),
		joinRange(topLangs, 2, 4, "N/A"),
		formatProjects(report.FeaturedProjects, "classic"),
	)

	return Variant{
		ID:        "pro",
		Name:      "Professional Authority",
		Theme:     string(analysis.ThemeArchitect),
		IsPremium: true,
		Markdown:  markdown,
	}
}

func terminalVariant(report analysis.Report, role analysis.Role, topLangs []string) Variant {
	projectLines := make([]string, 0, len(report.FeaturedProjects))
	for _, p := range report.FeaturedProjects {
		projectLines = append(projectLines, fmt.Sprintf("total 1 %s/", p.Name))
	}

	expert := make([]string, 0, 3)
	for _, lang := range topLangs {
		if len(expert) == 3 {
			break
		}
		expert = append(expert, fmt.Sprintf("%q", lang))
	}

	learning := `"Next Generation Tech"`
	if report.Emerging != nil {
		if _, after, found := strings.Cut(report.Emerging.Title, ": "); found && after != "" {
			learning = fmt.Sprintf("%q", after)
		}
	}

	markdown := fmt.Sprintf("```bash\n"+
		`$ whoami
> %s

$ gitflex-analysis --identity
{
  "status": "Online",
  "archetype": "%s",
  "location": "GitHub / Global",
  "motto": "Elegant code. Efficient systems."
}

$ ls -l projects/
%s

$ cat skills.json
{
  "expert": [ %s ],
  "learning": [ %s ]
}

$ tail -n 1 logs/current_thought.log
> Optimizing the boundary between code and user experience.
`+"```",
		role, role,
		strings.Join(projectLines, "\n"),
		strings.Join(expert, ", "),
		learning,
	)

	return Variant{
		ID:       "terminal",
		Name:     "Terminal State",
		Theme:    string(analysis.ThemeArchitect),
		Markdown: markdown,
	}
}

// ownerFromProjects recovers the profile owner from a featured project URL
// of the form https://github.com/<owner>/<name>.
func ownerFromProjects(projects []analysis.FeaturedProject) string {
	if len(projects) == 0 {
		return "user"
	}
	parts := strings.Split(projects[0].URL, "/")
	if len(parts) > 3 && parts[3] != "" {
		return parts[3]
	}
	return "user"
}
