package analysis

// roleMetric is the static knowledge base entry for one persona: the
// keywords and languages that feed its score, the theme it renders with,
// and a weight multiplier tuning how loudly its signals count.
type roleMetric struct {
	Keywords []string
	Langs    []string
	Theme    VisualTheme
	Weight   float64
}

// roleOrder fixes the enumeration order of candidate roles. Ranking sorts
// stably by score, so equal scores resolve to whichever role appears first
// here. Explorer is deliberately absent.
var roleOrder = []Role{
	RoleBackendArchitect,
	RoleFrontendEngineer,
	RoleCreativeTechnologist,
	RoleMLEngineer,
	RoleIndieHacker,
	RoleFullStackDev,
	RoleSystemsDesigner,
	RoleUIScientist,
	RoleKnowledgeArchitect,
}

var roleMetrics = map[Role]roleMetric{
	RoleBackendArchitect: {
		Keywords: []string{"distributed", "microservices", "grpc", "kafka", "scalability", "infrastructure", "concurrency", "low-latency", "database", "sql", "redis"},
		Langs:    []string{"Rust", "Go", "C++", "Java", "Erlang", "Elixir", "Python"},
		Theme:    ThemeArchitect,
		Weight:   1.2,
	},
	RoleFrontendEngineer: {
		Keywords: []string{"ui", "ux", "accessibility", "responsive", "frontend", "component", "styling", "design-system", "tailwind", "react", "vue"},
		Langs:    []string{"TypeScript", "JavaScript", "HTML", "CSS"},
		Theme:    ThemeArtist,
		Weight:   1.0,
	},
	RoleCreativeTechnologist: {
		Keywords: []string{"generative", "threejs", "webgl", "canvas", "glsl", "shaders", "interaction", "animation", "motion", "creative-coding"},
		Langs:    []string{"GLSL", "ShaderLab", "Processing", "TypeScript", "C++"},
		Theme:    ThemeArtist,
		Weight:   1.5,
	},
	RoleMLEngineer: {
		Keywords: []string{"ai", "jupyter", "tensorflow", "pytorch", "transformers", "training", "inference", "neural", "data-science", "model"},
		Langs:    []string{"Python", "Jupyter Notebook", "R", "C++"},
		Theme:    ThemeArchitect,
		Weight:   1.3,
	},
	RoleIndieHacker: {
		Keywords: []string{"product", "mvp", "shipping", "saas", "profitable", "solo", "marketing", "bootstrap", "monetization"},
		Langs:    []string{"Ruby", "PHP", "Dart", "Swift", "TypeScript", "JavaScript"},
		Theme:    ThemeMinimalist,
		Weight:   1.4,
	},
	RoleFullStackDev: {
		Keywords: []string{"fullstack", "web", "app", "platform", "api", "database", "crud", "express", "prisma"},
		Langs:    []string{"TypeScript", "JavaScript", "Python", "Go"},
		Theme:    ThemeArchitect,
		Weight:   0.9,
	},
	RoleSystemsDesigner: {
		Keywords: []string{"low-level", "kernel", "os", "compiler", "runtime", "drivers", "embedded", "memory-management", "assembly"},
		Langs:    []string{"C", "C++", "Rust", "Assembly"},
		Theme:    ThemeArchitect,
		Weight:   1.6,
	},
	RoleUIScientist: {
		Keywords: []string{"experimental", "lab", "prototyping", "gesture", "interface", "hci", "design", "interaction-design"},
		Langs:    []string{"TypeScript", "Swift", "Kotlin"},
		Theme:    ThemeArtist,
		Weight:   1.8,
	},
	RoleKnowledgeArchitect: {
		Keywords: []string{"documentation", "wiki", "obsidian", "knowledge-base", "specs", "guide", "handbook", "tutorial", "writing"},
		Langs:    []string{"Markdown", "TeX", "CSS", "HTML"},
		Theme:    ThemeMinimalist,
		Weight:   1.2,
	},
}

// frameworkProbe detects a well-known framework mention in a repo text blob.
type frameworkProbe struct {
	Label    string
	Keywords []string
}

// frameworkProbes are counted independently of role scoring and only feed
// the stack-strength map.
var frameworkProbes = []frameworkProbe{
	{Label: "React", Keywords: []string{"react"}},
	{Label: "Next.js", Keywords: []string{"next.js", "nextjs"}},
	{Label: "Tailwind CSS", Keywords: []string{"tailwind"}},
	{Label: "Cloud Native", Keywords: []string{"docker", "kubernetes"}},
}

// ThemeForRole resolves the rendering theme of a role, defaulting to
// Minimalist for Explorer and anything unknown.
func ThemeForRole(role Role) VisualTheme {
	if m, ok := roleMetrics[role]; ok {
		return m.Theme
	}
	return ThemeMinimalist
}

// KnownRole reports whether the role is part of the fixed enumeration
// (including Explorer).
func KnownRole(role Role) bool {
	if role == RoleExplorer {
		return true
	}
	_, ok := roleMetrics[role]
	return ok
}
