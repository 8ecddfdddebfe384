package commands

import (
	"log"
	"sort"
	"strings"

	"evexml/lib/eveapi"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	assetsCmd.Flags().StringVar(&assetsCharacterID, "character", "", "character id (defaults to the configured one)")
	rootCmd.AddCommand(assetsCmd)
}

var assetsCharacterID string

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Prints the asset tree, container contents indented.",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := client().AssetList(cmd.Context(), assetsCharacterID)
		if err != nil {
			log.Fatal(err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Item ID", "Type ID", "Qty", "Location"})
		appendAssetRows(t, res.Items, 0)
		t.Render()
	},
}

func appendAssetRows(t table.Writer, items map[string]eveapi.AssetNode, depth int) {
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		node := items[id]
		location := ""
		if node.LocationID != nil {
			location = *node.LocationID
		}
		t.AppendRow(table.Row{
			strings.Repeat("  ", depth) + node.ItemID,
			node.TypeID,
			node.Quantity,
			location,
		})
		appendAssetRows(t, node.Contents, depth+1)
	}
}
