package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Prints the Tranquility server status.",
	Run: func(cmd *cobra.Command, args []string) {
		status, err := client().ServerStatus(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}

		state := "CLOSED"
		if status.Open {
			state = "OPEN"
		}
		fmt.Printf("%s, %d pilots online (as of %s)\n",
			state, status.OnlinePlayers, status.Meta.CurrentTime)
	},
}
