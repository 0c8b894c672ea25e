package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/mnemo/internal/collection"
	"github.com/aidanlsb/mnemo/internal/config"
	"github.com/aidanlsb/mnemo/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Create a new collection file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		col, err := collection.Open(path)
		if err != nil {
			return err
		}
		if err := col.Close(); err != nil {
			return err
		}

		configPath, err := config.CreateDefault()
		if err != nil {
			return err
		}

		fmt.Println(ui.Successf("created collection %s", path))
		fmt.Println(ui.Render(ui.Muted,
			fmt.Sprintf("add it to %s to use it by name", configPath)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
