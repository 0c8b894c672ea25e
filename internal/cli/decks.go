package cli

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/mnemo/internal/sqlutil"
	"github.com/aidanlsb/mnemo/internal/ui"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks and their card counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := openCollection()
		if err != nil {
			return err
		}
		defer col.Close()

		rows, err := col.DB().Query(`
			SELECT d.id, d.name, COUNT(c.id)
			FROM decks d LEFT JOIN cards c ON c.did = d.id
			GROUP BY d.id, d.name
			ORDER BY d.name`)
		if err != nil {
			return fmt.Errorf("failed to list decks: %w", err)
		}

		type deckRow struct {
			id    int64
			name  string
			cards int
		}
		deckRows, err := sqlutil.ScanRows(rows, func(rows *sql.Rows) (deckRow, error) {
			var r deckRow
			err := rows.Scan(&r.id, &r.name, &r.cards)
			return r, err
		})
		if err != nil {
			return err
		}

		currentID, err := col.CurrentDeckID()
		if err != nil {
			return err
		}

		table := ui.NewTable(3)
		table.SetHeader("DECK", "CARDS", "")
		for _, r := range deckRows {
			marker := ""
			if r.id == currentID {
				marker = ui.Render(ui.Muted, "(current)")
			}
			table.AddRow(ui.Render(ui.Accent, r.name), strconv.Itoa(r.cards), marker)
		}
		fmt.Print(table.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decksCmd)
}
