// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/mnemo/internal/collection"
	"github.com/aidanlsb/mnemo/internal/config"
	"github.com/aidanlsb/mnemo/internal/ui"
)

var (
	// Global flags
	collectionName     string // Named collection from config
	collectionPathFlag string // Explicit path

	// Resolved values
	resolvedCollectionPath string
	cfg                    *config.Config
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "mnemo",
	Short: "mnemo - searchable spaced-repetition collections",
	Long: `mnemo stores spaced-repetition study material (decks, notes, cards,
review history) in a single SQLite file and answers rich searches over
it: deck hierarchies, tags, fields, scheduling state and review history
all compile down to one SQL predicate.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that work without a collection.
		switch cmd.Name() {
		case "init", "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Explicit path beats named collection beats config default.
		if collectionPathFlag != "" {
			resolvedCollectionPath = collectionPathFlag
			return nil
		}
		resolvedCollectionPath, err = cfg.GetCollectionPath(collectionName)
		if err != nil {
			return fmt.Errorf("%w\n\nPass --path, or run 'mnemo init' and add the collection to %s",
				err, config.DefaultPath())
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&collectionName, "collection", "c", "", "named collection from config")
	rootCmd.PersistentFlags().StringVar(&collectionPathFlag, "path", "", "explicit collection file path")
}

// openCollection opens the resolved collection file.
func openCollection() (*collection.Collection, error) {
	col, err := collection.Open(resolvedCollectionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection %s: %w", resolvedCollectionPath, err)
	}
	return col, nil
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Errorf("%v", err))
	}
	return err
}
