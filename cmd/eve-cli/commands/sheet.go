package commands

import (
	"fmt"
	"log"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	sheetCmd.Flags().StringVar(&sheetCharacterID, "character", "", "character id (defaults to the configured one)")
	rootCmd.AddCommand(sheetCmd)
}

var sheetCharacterID string

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Prints a character sheet summary and its trained skills.",
	Run: func(cmd *cobra.Command, args []string) {
		sheet, err := client().CharacterSheet(cmd.Context(), sheetCharacterID)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%s (%s)\n", sheet.Name, sheet.CharacterID)
		fmt.Printf("  %s %s, born %s\n", sheet.Race, sheet.BloodLine, sheet.DateOfBirth)
		fmt.Printf("  %s", sheet.CorporationName)
		if sheet.AllianceName != "" {
			fmt.Printf(" <%s>", sheet.AllianceName)
		}
		fmt.Println()
		fmt.Printf("  balance: %.2f ISK\n", sheet.Balance)

		t := newTable()
		t.AppendHeader(table.Row{"Type ID", "Level", "Skillpoints"})
		for typeID, skill := range sheet.Skills {
			t.AppendRow(table.Row{typeID, skill.Level, skill.SkillPoints})
		}
		t.SortBy([]table.SortBy{{Name: "Type ID"}})
		t.Render()
	},
}
