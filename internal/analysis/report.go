package analysis

// VisualTheme tags a report with one of the rendering aesthetics the
// document generator understands.
type VisualTheme string

const (
	ThemeArchitect  VisualTheme = "Architect"
	ThemeArtist     VisualTheme = "Artist"
	ThemeMinimalist VisualTheme = "Minimalist"
)

// Role is one persona label the profile engine can assign.
type Role string

const (
	RoleFrontendEngineer     Role = "Frontend Engineer"
	RoleBackendArchitect     Role = "Backend Architect"
	RoleIndieHacker          Role = "Indie Hacker"
	RoleCreativeTechnologist Role = "Creative Technologist"
	RoleMLEngineer           Role = "ML Engineer"
	RoleFullStackDev         Role = "Full Stack Dev"
	RoleSystemsDesigner      Role = "Systems Designer"
	RoleUIScientist          Role = "UI Scientist"
	RoleKnowledgeArchitect   Role = "Knowledge Architect"

	// RoleExplorer is reserved for the empty-profile edge case and never
	// competes in ranking.
	RoleExplorer Role = "Explorer"
)

// SignalStrength grades how firmly a signal was detected.
type SignalStrength string

const (
	StrengthStrong   SignalStrength = "Strong"
	StrengthModerate SignalStrength = "Moderate"
	StrengthEmerging SignalStrength = "Emerging"
)

// Signal is a single detected feature surfaced for display.
type Signal struct {
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Strength    SignalStrength `json:"strength,omitempty"`
	Score       int            `json:"score,omitempty"` // 0-100
}

// PersonaSignal is a ranked role with its confidence and supporting evidence.
type PersonaSignal struct {
	Role        Role        `json:"role"`
	Confidence  int         `json:"confidence"` // 0-100
	Explanation string      `json:"explanation"`
	Theme       VisualTheme `json:"theme"`
	Evidence    []string    `json:"evidence"` // repo names that triggered this
}

// FeaturedProject is a display-shaped projection of a top repository.
type FeaturedProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	URL         string `json:"url"`
	Language    string `json:"language"`
}

// Report is the finished profile analysis. It is the sole source of truth for
// the document renderer; callers regenerate variants whenever it changes.
type Report struct {
	Primary          PersonaSignal  `json:"primary"`
	Secondary        *PersonaSignal `json:"secondary"`
	Emerging         *Signal        `json:"emerging"`
	Signals          []Signal       `json:"signals"`
	StackStrength    map[string]int `json:"stackStrength"`
	Explanation      string         `json:"explanation"`
	VisualTheme      VisualTheme    `json:"visualTheme"`
	Role             Role           `json:"role"`
	FeaturedProjects []FeaturedProject `json:"featuredProjects"`
	IsUserRefined    bool           `json:"isUserRefined,omitempty"`
}

// Archetype is one project label the repository engine can assign.
type Archetype string

const (
	ArchetypeLibrary       Archetype = "Library"
	ArchetypeFullStackApp  Archetype = "Full Stack Application"
	ArchetypeFrontendApp   Archetype = "Frontend Application"
	ArchetypeBackendSvc    Archetype = "Backend Service"
	ArchetypeCLITool       Archetype = "CLI Tool"
	ArchetypeMonorepo      Archetype = "Monorepo"
	ArchetypeDotfiles      Archetype = "Configuration / Dotfiles"
	ArchetypeDocumentation Archetype = "Documentation"
	ArchetypeHackathon     Archetype = "Hackathon Prototype"
	ArchetypeExperimental  Archetype = "Experimental"
)

// Stability is the inferred maintenance tier of a repository.
type Stability string

const (
	StabilityStable       Stability = "Stable"
	StabilityBeta         Stability = "Beta"
	StabilityAlpha        Stability = "Alpha"
	StabilityExperimental Stability = "Experimental"
	StabilityDeprecated   Stability = "Deprecated"
)

// RepoSignal is a structural signal detected in a single repository.
type RepoSignal struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Evidence    string `json:"evidence"` // e.g. "Detected next.config.js"
	Strength    string `json:"strength"`
}

// InstallCommand is an inferred package-manager setup command.
type InstallCommand struct {
	Manager    string `json:"manager"`
	Command    string `json:"command"`
	Confidence int    `json:"confidence"`
}

// RepoTarget identifies the analyzed repository.
type RepoTarget struct {
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// RepoReport is the finished single-repository analysis.
type RepoReport struct {
	Target      RepoTarget        `json:"target"`
	Archetype   Archetype         `json:"archetype"`
	Confidence  int               `json:"confidence"`
	Explanation string            `json:"explanation"`
	Stability   Stability         `json:"stability"`
	TechStack   map[string]string `json:"techStack"`
	Signals     []RepoSignal      `json:"signals"`
	Install     *InstallCommand   `json:"install,omitempty"`
	VisualTheme string            `json:"visualTheme"` // Technical | Showcase | Minimal
}
