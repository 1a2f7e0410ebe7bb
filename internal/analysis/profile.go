package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/gitflexhq/gitflex/internal/types"
)

const defaultHost = "https://github.com"

// Analyzer runs the profile and repository scoring pipelines. It holds no
// mutable state across invocations; every call builds its own accumulators,
// so concurrent use is safe. The clock is injectable so tests can freeze the
// recency reference point.
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer creates an analyzer using the wall clock.
func NewAnalyzer() *Analyzer {
	return &Analyzer{now: time.Now}
}

// NewAnalyzerAt creates an analyzer with a fixed reference clock.
func NewAnalyzerAt(now func() time.Time) *Analyzer {
	return &Analyzer{now: now}
}

// roleAccumulator tracks the running score and evidence for one role during
// a single analysis run.
type roleAccumulator struct {
	score    float64
	evidence []string
}

func (ra *roleAccumulator) addEvidence(name string) {
	for _, e := range ra.evidence {
		if e == name {
			return
		}
	}
	ra.evidence = append(ra.evidence, name)
}

type langStat struct {
	count   int
	stars   int
	commits float64
}

// AnalyzeProfile classifies a developer's repository footprint into a ranked
// persona report. Pure function of its inputs and the analyzer's clock.
func (a *Analyzer) AnalyzeProfile(records []types.RepositoryRecord, identity string) Report {
	if len(records) == 0 {
		return explorerReport()
	}
	if identity == "" {
		identity = "user"
	}

	accs := make(map[Role]*roleAccumulator, len(roleOrder))
	for _, role := range roleOrder {
		accs[role] = &roleAccumulator{}
	}

	langStats := map[string]*langStat{}
	frameworkStats := map[string]int{}

	now := a.now()
	sixMonthsAgo := now.AddDate(0, -6, 0)
	twoYearsAgo := now.AddDate(-2, 0, 0)

	for _, repo := range records {
		multiplier := 1.0
		if repo.UpdatedAt.After(sixMonthsAgo) {
			multiplier *= 2.0
		} else if repo.UpdatedAt.Before(twoYearsAgo) {
			multiplier *= 0.5
		}
		if repo.IsFork {
			multiplier *= 0.3
		}
		if repo.CommitFrequency > 0 {
			multiplier *= 1 + repo.CommitFrequency/20
		}

		credibility := credibilityBonus(repo.Stars, repo.Forks)

		if repo.Language != "" {
			ls, ok := langStats[repo.Language]
			if !ok {
				ls = &langStat{}
				langStats[repo.Language] = ls
			}
			ls.count++
			ls.stars += repo.Stars
			ls.commits += repo.CommitFrequency * 12

			for _, role := range roleOrder {
				metric := roleMetrics[role]
				if containsString(metric.Langs, repo.Language) {
					accs[role].score += 15*multiplier*metric.Weight + credibility
					if multiplier > 1.2 {
						accs[role].addEvidence(repo.Name)
					}
				}
			}
		}

		blob := strings.ToLower(repo.Name + " " + repo.Description + " " + strings.Join(repo.Topics, " "))

		for _, probe := range frameworkProbes {
			for _, kw := range probe.Keywords {
				if strings.Contains(blob, kw) {
					frameworkStats[probe.Label]++
					break
				}
			}
		}

		for _, role := range roleOrder {
			metric := roleMetrics[role]
			for _, kw := range metric.Keywords {
				if strings.Contains(blob, kw) {
					accs[role].score += 10*multiplier*metric.Weight + credibility
					if multiplier > 1.0 {
						accs[role].addEvidence(repo.Name)
					}
				}
			}
		}
	}

	// Stable sort keeps roleOrder for equal scores, which is the documented
	// tie-breaking rule.
	ranked := append([]Role(nil), roleOrder...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return accs[ranked[i]].score > accs[ranked[j]].score
	})

	totalScore := 0.0
	for _, role := range roleOrder {
		totalScore += accs[role].score
	}
	if totalScore < 1 {
		totalScore = 1
	}

	primaryRole := ranked[0]
	primaryScore := accs[primaryRole].score
	primaryConfidence := confidenceFor(primaryScore, totalScore, 99)

	primaryMetric := roleMetrics[primaryRole]
	evidence := firstN(accs[primaryRole].evidence, 2)

	evidenceStr := ""
	if len(evidence) > 0 {
		evidenceStr = fmt.Sprintf(" Significant signals detected in %s.", strings.Join(evidence, " and "))
	}
	explanation := fmt.Sprintf(
		"Confirmed %s identity via %d data points. Found dominant concentration in %s methodologies.%s",
		primaryRole, len(records), strings.ToLower(string(primaryMetric.Theme)), evidenceStr,
	)

	var secondary *PersonaSignal
	if accs[ranked[1]].score > primaryScore*0.35 {
		secondaryRole := ranked[1]
		secondary = &PersonaSignal{
			Role:        secondaryRole,
			Confidence:  confidenceFor(accs[secondaryRole].score, totalScore, 80),
			Explanation: fmt.Sprintf("Supporting evidence for %s patterns detected.", secondaryRole),
			Theme:       roleMetrics[secondaryRole].Theme,
			Evidence:    firstN(accs[secondaryRole].evidence, 2),
		}
	}

	var emerging *Signal
	if thirdScore := accs[ranked[2]].score; thirdScore > totalScore*0.1 {
		emerging = &Signal{
			Type:        "Persona",
			Title:       fmt.Sprintf("Emerging: %s", ranked[2]),
			Description: fmt.Sprintf("Growing footprint detected in %s specialized domains.", ranked[2]),
			Strength:    StrengthEmerging,
			Score:       int(math.Round(thirdScore / totalScore * 100)),
		}
	}

	stackStrength := make(map[string]int, len(langStats)+len(frameworkStats))
	n := float64(len(records))
	for lang, stat := range langStats {
		strength := int(math.Round(float64(stat.count)/n*100 + float64(stat.stars)/100))
		stackStrength[lang] = clampInt(strength, 0, 100)
	}
	for fw, count := range frameworkStats {
		strength := int(math.Round(float64(count) / n * 150))
		stackStrength[fw] = clampInt(strength, 0, 100)
	}

	activeProjects := 0
	for _, repo := range records {
		if repo.CommitFrequency > 10 {
			activeProjects++
		}
	}

	return Report{
		Primary: PersonaSignal{
			Role:        primaryRole,
			Confidence:  primaryConfidence,
			Explanation: explanation,
			Theme:       primaryMetric.Theme,
			Evidence:    evidence,
		},
		Secondary: secondary,
		Emerging:  emerging,
		Signals: []Signal{
			{
				Type:        "Persona",
				Title:       string(primaryRole),
				Description: explanation,
				Strength:    StrengthStrong,
				Score:       primaryConfidence,
			},
			{
				Type:        "Credibility",
				Title:       "Contribution Density",
				Description: fmt.Sprintf("High-frequency activity detected across %d active projects.", activeProjects),
				Strength:    StrengthStrong,
			},
		},
		StackStrength:    stackStrength,
		Explanation:      explanation,
		VisualTheme:      primaryMetric.Theme,
		Role:             primaryRole,
		FeaturedProjects: featuredProjects(records, identity),
	}
}

// Refine returns a shallow copy of the report with the primary persona
// replaced by a user-chosen role. Callers regenerate variants from the
// returned report; nothing is patched in place.
func Refine(report Report, role Role) Report {
	refined := report
	theme := ThemeForRole(role)

	primary := report.Primary
	primary.Role = role
	primary.Theme = theme
	primary.Explanation = fmt.Sprintf("Persona manually refined to %s.", role)

	refined.Primary = primary
	refined.Role = role
	refined.VisualTheme = theme
	refined.IsUserRefined = true
	return refined
}

// explorerReport is the fixed fallback for an empty profile. Confidence 100
// is reserved for this case; scored reports cap at 99.
func explorerReport() Report {
	return Report{
		Primary: PersonaSignal{
			Role:        RoleExplorer,
			Confidence:  100,
			Explanation: "Connection established. Your GitHub journey is in its early 'discovery' phase.",
			Theme:       ThemeMinimalist,
			Evidence:    []string{},
		},
		Secondary: nil,
		Emerging:  nil,
		Signals: []Signal{
			{
				Type:        "Persona",
				Title:       "New Builder",
				Description: "Minimal repository count detected. Focus on potential.",
				Strength:    StrengthEmerging,
			},
		},
		StackStrength:    map[string]int{},
		Explanation:      "Minimal data footprint. Initializing Explorer persona.",
		VisualTheme:      ThemeMinimalist,
		Role:             RoleExplorer,
		FeaturedProjects: []FeaturedProject{},
	}
}

func featuredProjects(records []types.RepositoryRecord, identity string) []FeaturedProject {
	sorted := append([]types.RepositoryRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stars > sorted[j].Stars
	})
	if len(sorted) > 3 {
		sorted = sorted[:3]
	}

	featured := make([]FeaturedProject, 0, len(sorted))
	for _, r := range sorted {
		featured = append(featured, FeaturedProject{
			Name:        r.Name,
			Description: r.Description,
			Stars:       r.Stars,
			URL:         fmt.Sprintf("%s/%s/%s", defaultHost, identity, r.Name),
			Language:    r.Language,
		})
	}
	return featured
}

// credibilityBonus rewards organic popularity via the star-to-fork ratio,
// capped at 5 points. Zero-fork records use the raw star count as the ratio
// proxy, which also sidesteps the division.
func credibilityBonus(stars, forks int) float64 {
	ratio := float64(stars)
	if forks > 0 {
		ratio = float64(stars) / float64(forks)
	}
	return math.Min(ratio, 5)
}

func confidenceFor(score, total float64, limit int) int {
	c := int(math.Round(score / total * 100 * 1.5))
	if c > limit {
		c = limit
	}
	if c < 0 {
		c = 0
	}
	return c
}

func firstN(values []string, n int) []string {
	if values == nil {
		return []string{}
	}
	if len(values) > n {
		values = values[:n]
	}
	return values
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
