package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gitflexhq/gitflex/internal/adapters"
	"github.com/gitflexhq/gitflex/internal/analysis"
	"github.com/gitflexhq/gitflex/internal/mock"
	"github.com/gitflexhq/gitflex/internal/readme"
	"github.com/gitflexhq/gitflex/internal/server"
	"github.com/gitflexhq/gitflex/internal/store"
	"github.com/gitflexhq/gitflex/internal/types"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "gitflex",
		Short: "Classify GitHub footprints into personas and render README variants",
	}

	root.AddCommand(profileCmd(), repoCmd(), serveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func profileCmd() *cobra.Command {
	var inputFile, mockSet, variantID, token string

	cmd := &cobra.Command{
		Use:   "profile [username]",
		Short: "Analyze a developer profile and render README variants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := "user"
			if len(args) == 1 {
				username = args[0]
			}

			records, analyzer, err := loadRecords(cmd.Context(), username, inputFile, mockSet, token)
			if err != nil {
				return err
			}

			report := analyzer.AnalyzeProfile(records, username)
			variants := readme.GenerateVariants(report)

			return emit(report, variants, variantID)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "JSON file with repository records")
	cmd.Flags().StringVar(&mockSet, "mock", "", "Use a bundled sample set (architect, artist, minimalist)")
	cmd.Flags().StringVar(&variantID, "variant", "", "Print one variant's markdown instead of the full report")
	cmd.Flags().StringVar(&token, "token", os.Getenv("GITHUB_TOKEN"), "GitHub API token")
	return cmd
}

func repoCmd() *cobra.Command {
	var inputFile, variantID, token string
	var files []string

	cmd := &cobra.Command{
		Use:   "repo <owner/name>",
		Short: "Analyze a single repository and render README variants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, found := strings.Cut(args[0], "/")
			if !found || owner == "" || name == "" {
				return fmt.Errorf("expected <owner/name>, got %q", args[0])
			}

			analyzer := analysis.NewAnalyzer()
			var record types.RepositoryRecord

			if inputFile != "" {
				data, err := os.ReadFile(inputFile)
				if err != nil {
					return fmt.Errorf("reading %s: %w", inputFile, err)
				}
				if err := json.Unmarshal(data, &record); err != nil {
					return fmt.Errorf("parsing %s: %w", inputFile, err)
				}
			} else {
				ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
				defer cancel()

				client := adapters.NewGitHubClient(token)
				var err error
				record, err = client.FetchRepo(ctx, owner, name)
				if err != nil {
					return err
				}
				if len(files) == 0 {
					files, err = client.FetchFileList(ctx, owner, name)
					if err != nil {
						return err
					}
				}
			}

			report := analyzer.AnalyzeRepository(record, files, owner)
			variants := readme.GenerateRepoVariants(report)

			return emit(report, variants, variantID)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "JSON file with a single repository record")
	cmd.Flags().StringSliceVar(&files, "files", nil, "Root file listing (comma separated)")
	cmd.Flags().StringVar(&variantID, "variant", "", "Print one variant's markdown instead of the full report")
	cmd.Flags().StringVar(&token, "token", os.Getenv("GITHUB_TOKEN"), "GitHub API token")
	return cmd
}

func serveCmd() *cobra.Command {
	var port, dataDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := store.Open(dataDir)
			if err != nil {
				return err
			}
			defer reports.Close()

			router := server.New(server.DefaultConfig(), analysis.NewAnalyzer(), reports)
			fmt.Printf("Listening on :%s\n", port)
			return router.Run(":" + port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to listen on")
	cmd.Flags().StringVar(&dataDir, "data-dir", "./data", "Directory for the report store")
	return cmd
}

// loadRecords resolves profile input from a file, a bundled sample set, or
// the GitHub API, in that priority order. Sample sets come with a frozen
// reference clock so their recency multipliers are stable.
func loadRecords(ctx context.Context, username, inputFile, mockSet, token string) ([]types.RepositoryRecord, *analysis.Analyzer, error) {
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", inputFile, err)
		}
		var records []types.RepositoryRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, nil, fmt.Errorf("parsing %s: %w", inputFile, err)
		}
		return records, analysis.NewAnalyzer(), nil
	}

	if mockSet != "" {
		records, ok := mock.Sets()[mockSet]
		if !ok {
			return nil, nil, fmt.Errorf("unknown sample set %q (want architect, artist, or minimalist)", mockSet)
		}
		return records, analysis.NewAnalyzerAt(mock.ReferenceTime), nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := adapters.NewGitHubClient(token)
	records, err := client.FetchUserRepos(fetchCtx, username)
	if err != nil {
		return nil, nil, err
	}
	return records, analysis.NewAnalyzer(), nil
}

// emit prints either the full report as JSON or a single variant's markdown.
func emit(report any, variants []readme.Variant, variantID string) error {
	if variantID != "" {
		for _, v := range variants {
			if v.ID == variantID {
				fmt.Println(v.Markdown)
				return nil
			}
		}
		return fmt.Errorf("unknown variant %q", variantID)
	}

	out, err := json.MarshalIndent(map[string]any{
		"report":   report,
		"variants": variants,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
