package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/mnemo/internal/ui"
)

var notetypesCmd = &cobra.Command{
	Use:   "notetypes",
	Short: "List note types with their fields and templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := openCollection()
		if err != nil {
			return err
		}
		defer col.Close()

		noteTypes, err := col.AllNoteTypes()
		if err != nil {
			return err
		}

		table := ui.NewTable(4)
		table.SetHeader("ID", "NAME", "FIELDS", "TEMPLATES")
		for _, nt := range noteTypes {
			table.AddRow(
				strconv.FormatInt(nt.ID, 10),
				ui.Render(ui.Accent, nt.Name),
				strconv.Itoa(len(nt.Fields)),
				strconv.Itoa(len(nt.Templates)),
			)
		}
		fmt.Print(table.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notetypesCmd)
}
