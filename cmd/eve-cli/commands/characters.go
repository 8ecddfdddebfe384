package commands

import (
	"log"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(charactersCmd)
}

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Lists the characters on the configured key's account.",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := client().Characters(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Character ID", "Name", "Corporation"})
		for id, character := range res.Items {
			t.AppendRow(table.Row{id, character.Name, character.CorporationName})
		}
		t.SortBy([]table.SortBy{{Name: "Name"}})
		t.Render()
	},
}
