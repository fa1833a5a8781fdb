// Package main provides the journey command, a browser end-to-end test
// runner. Gherkin feature files drive a Playwright browser through
// declaratively defined page objects.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/entrhq/journey/pkg/steps"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "journey",
		Short:        "Browser end-to-end test automation",
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newRunCmd() *cobra.Command {
	cfg := steps.Config{}
	var headed bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the feature suite against the configured target",
		Long: `Run loads the page registry, element catalog, and category bindings,
validates them, and then executes every matching feature file. Validation
failures abort the run before any scenario starts.

The target application is configured through the environment (or a .env
file): JOURNEY_BASE_URL, JOURNEY_USERNAME, JOURNEY_PASSWORD.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Headless = !headed

			suite, err := steps.NewSuite(cfg)
			if err != nil {
				return err
			}
			defer suite.Shutdown()

			if status := suite.Run(); status != 0 {
				// Scenario failures are already reported by the formatter.
				os.Exit(status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.FeaturesDir, "features", "features", "directory containing .feature files")
	cmd.Flags().StringVar(&cfg.PagesDir, "pages", "pages", "directory containing <Name>Page.yaml definitions")
	cmd.Flags().StringVar(&cfg.ElementsDir, "elements", "elements", "directory containing element descriptor files")
	cmd.Flags().StringVar(&cfg.BindingsFile, "bindings", "categories.yaml", "category bindings file")
	cmd.Flags().StringVar(&cfg.Tags, "tags", "", "godog tag expression to filter scenarios")
	cmd.Flags().StringVar(&cfg.Format, "format", "pretty", "godog output format")
	cmd.Flags().IntVar(&cfg.Concurrency, "concurrency", 1, "scenarios to run in parallel, one browser session each")
	cmd.Flags().BoolVar(&headed, "headed", false, "run the browser with a visible window")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the journey version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("journey v%s\n", version)
		},
	}
}
