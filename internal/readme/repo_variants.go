package readme

import (
	"fmt"
	"strings"

	"github.com/gitflexhq/gitflex/internal/analysis"
)

// GenerateRepoVariants maps a repository report to its three named document
// variants: contributor, showcase, and minimal.
func GenerateRepoVariants(report analysis.RepoReport) []Variant {
	return []Variant{
		contributorVariant(report),
		showcaseVariant(report),
		minimalRepoVariant(report),
	}
}

func installManager(report analysis.RepoReport, fallback string) string {
	if report.Install != nil && report.Install.Manager != "" {
		return report.Install.Manager
	}
	return fallback
}

func installCommand(report analysis.RepoReport, fallback string) string {
	if report.Install != nil && report.Install.Command != "" {
		return report.Install.Command
	}
	return fallback
}

func contributorVariant(report analysis.RepoReport) Variant {
	target := report.Target

	markdown := fmt.Sprintf(`# %s
> %s

![Build Status](https://img.shields.io/badge/build-passing-brightgreen?style=flat-square) ![License](https://img.shields.io/badge/license-MIT-blue?style=flat-square) ![Stability](https://img.shields.io/badge/stability-%s-orange?style=flat-square)

## 🛠 Development Setup

To contribute to **%s**, follow these steps to set up your local environment.

### Prerequisites
- Node.js > 18.0.0
- %s

### Installation
`+"```bash"+`
git clone %s.git
cd %s
%s
`+"```"+`

## 📂 Project Structure
`+"```text"+`
src/
  ├── components/   # UI Components
  ├── lib/          # Core utilities
  └── hooks/        # React hooks
`+"```"+`

## 🤝 Contributing
We welcome contributions! Please read our [CONTRIBUTING.md](CONTRIBUTING.md) before submitting a Pull Request.`,
		target.Name,
		target.Description,
		strings.ToLower(string(report.Stability)),
		target.Name,
		installManager(report, "npm"),
		target.URL,
		target.Name,
		installCommand(report, "# Install dependencies"),
	)

	return Variant{
		ID:       "contributor",
		Name:     "Contributor Onboarding",
		Theme:    "Technical",
		Markdown: markdown,
	}
}

func showcaseVariant(report analysis.RepoReport) Variant {
	target := report.Target

	language := report.TechStack["Language"]
	if language == "" {
		language = "modern tooling"
	}

	markdown := fmt.Sprintf(`<div align="center">
  <h1>%s</h1>
  <p>%s</p>
  <br />
  <img src="https://via.placeholder.com/800x400.png?text=Project+Hero+Image" alt="Hero" width="100%%" />
</div>

<br />

### 🚀 Key Features
- **Modern Architecture**: Built with %s.
- **Performance First**: Optimized for high-throughput environments.
- **Developer Experience**: %s design patterns ensuring easy adoption.

### 🛠 Tech Stack
| Core | Infrastructure | Tools |
| :--- | :--- | :--- |
| %s | Docker | %s |

### 🔗 Quick Links
- [Live Demo](#)
- [Documentation](#)`,
		target.Name,
		target.Description,
		language,
		report.Archetype,
		language,
		installManager(report, "npm"),
	)

	return Variant{
		ID:        "showcase",
		Name:      "Portfolio Showcase",
		Theme:     "Showcase",
		IsPremium: true,
		Markdown:  markdown,
	}
}

func minimalRepoVariant(report analysis.RepoReport) Variant {
	target := report.Target

	usage := "# usage command"
	if report.Install != nil && report.Install.Manager == "npm" {
		usage = fmt.Sprintf("npm install %s", target.Name)
	}

	markdown := fmt.Sprintf(`# %s

%s

## Usage

`+"```bash"+`
%s
`+"```"+`

`+"```javascript"+`
import { something } from '%s';

// Example usage
something.doWork();
`+"```"+`

## License
MIT © [%s](https://github.com/%s)`,
		target.Name,
		target.Description,
		usage,
		target.Name,
		target.Owner,
		target.Owner,
	)

	return Variant{
		ID:       "minimal",
		Name:     "Minimalist Docs",
		Theme:    "Minimal",
		Markdown: markdown,
	}
}
