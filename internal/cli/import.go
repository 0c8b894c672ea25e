package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/mnemo/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import <seed.yaml>",
	Short: "Import decks, note types and notes from a YAML seed file",
	Long: `Import a YAML seed file into the collection.

Seed file layout:

  decks:
    - Japanese::Verbs
  current_deck: Japanese
  notetypes:
    - name: Basic
      fields: [Front, Back]
      templates: [Card 1, Card 2]
  notes:
    - type: Basic
      deck: Japanese::Verbs
      tags: [vocab]
      fields: [dog, 犬]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := openCollection()
		if err != nil {
			return err
		}
		defer col.Close()

		stats, err := col.ImportSeedFile(args[0])
		if err != nil {
			return err
		}

		fmt.Println(ui.Successf("imported %d deck(s), %d note type(s), %d note(s)",
			stats.Decks, stats.NoteTypes, stats.Notes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
