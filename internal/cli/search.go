package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/mnemo/internal/model"
	"github.com/aidanlsb/mnemo/internal/ui"
)

var (
	searchNotesFlag bool
	searchSQLFlag   bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search cards with the collection query language",
	Long: `Search cards (or notes with --notes) using the query language.

Terms:
  word                  substring of any field
  "two words"           quoted phrase
  Front:dog             match a specific field
  deck:Japanese         deck and its subdecks; also deck:current,
                        deck:filtered, deck:*
  tag:vocab tag:none    tags
  note:Basic mid:123    note type by name or id
  card:1 card:Cloze     template by number or name
  is:due is:new is:learn is:review is:buried is:suspended
  added:7 rated:7 rated:7:1
  prop:ivl>=21 prop:due=-1 prop:ease<2.5 prop:reps<5 prop:lapses>3
  flag:1 nid:123,456 cid:789
  dupe:123,front text

Operators: terms are ANDed; "or" between terms; "-" negates; ( ) group.

Examples:
  mnemo search "deck:Japanese is:due"
  mnemo search "tag:vocab* (is:review or is:learn)"
  mnemo search -- "-is:suspended prop:ease<2.0"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := openCollection()
		if err != nil {
			return err
		}
		defer col.Close()

		if searchSQLFlag {
			cq, err := col.CompileSearch(args[0])
			if err != nil {
				return err
			}
			fmt.Println(cq.SQL)
			for i, arg := range cq.Args {
				fmt.Printf("  ?%d = %v\n", i+1, arg)
			}
			return nil
		}

		if searchNotesFlag {
			return runNoteSearch(col, args[0])
		}
		return runCardSearch(col, args[0])
	},
}

func runCardSearch(col searchableCollection, query string) error {
	cards, err := col.FindCards(query)
	if err != nil {
		return err
	}

	decks, err := col.AllDecks()
	if err != nil {
		return err
	}
	deckNames := make(map[int64]string, len(decks))
	for _, d := range decks {
		deckNames[d.ID] = d.Name
	}

	table := ui.NewTable(4)
	table.SetHeader("CARD", "DECK", "QUEUE", "DUE")
	for _, card := range cards {
		table.AddRow(
			strconv.FormatInt(card.ID, 10),
			ui.Render(ui.Accent, deckNames[card.DeckID]),
			card.Queue.String(),
			strconv.FormatInt(card.Due, 10),
		)
	}
	fmt.Print(table.String())
	fmt.Println(ui.Render(ui.Muted, fmt.Sprintf("%d card(s)", len(cards))))
	return nil
}

func runNoteSearch(col searchableCollection, query string) error {
	notes, err := col.FindNotes(query)
	if err != nil {
		return err
	}

	table := ui.NewTable(3)
	table.SetHeader("NOTE", "SORT FIELD", "TAGS")
	for _, note := range notes {
		table.AddRow(
			strconv.FormatInt(note.ID, 10),
			note.SortField,
			ui.Render(ui.Accent, note.Tags),
		)
	}
	fmt.Print(table.String())
	fmt.Println(ui.Render(ui.Muted, fmt.Sprintf("%d note(s)", len(notes))))
	return nil
}

// searchableCollection is the slice of collection behavior the search
// command needs; tests substitute a fake.
type searchableCollection interface {
	FindCards(query string) ([]model.Card, error)
	FindNotes(query string) ([]model.Note, error)
	AllDecks() ([]model.Deck, error)
}

func init() {
	searchCmd.Flags().BoolVar(&searchNotesFlag, "notes", false, "list matching notes instead of cards")
	searchCmd.Flags().BoolVar(&searchSQLFlag, "sql", false, "print the compiled SQL instead of running it")
	rootCmd.AddCommand(searchCmd)
}
