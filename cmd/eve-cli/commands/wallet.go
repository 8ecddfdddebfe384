package commands

import (
	"log"

	"evexml/lib/eveapi"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	walletCmd.PersistentFlags().StringVar(&walletCharacterID, "character", "", "character id (defaults to the configured one)")
	walletCmd.PersistentFlags().StringVar(&walletRowCount, "rows", "", "max rows to fetch")
	walletCmd.AddCommand(walletJournalCmd)
	walletCmd.AddCommand(walletTransactionsCmd)
	rootCmd.AddCommand(walletCmd)
}

var (
	walletCharacterID string
	walletRowCount    string
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Wallet journal and market transactions.",
}

func walletOptions() eveapi.WalletOptions {
	return eveapi.WalletOptions{
		CharacterID: walletCharacterID,
		RowCount:    walletRowCount,
	}
}

var walletJournalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Prints wallet journal entries.",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := client().WalletJournal(cmd.Context(), walletOptions())
		if err != nil {
			log.Fatal(err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Date", "Ref ID", "From", "To", "Amount", "Balance"})
		for refID, entry := range res.Items {
			t.AppendRow(table.Row{
				entry.Date, refID,
				entry.OwnerName1, entry.OwnerName2,
				entry.Amount, entry.Balance,
			})
		}
		t.SortBy([]table.SortBy{{Name: "Date", Mode: table.Dsc}})
		t.Render()
	},
}

var walletTransactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Prints market transactions.",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := client().WalletTransactions(cmd.Context(), walletOptions())
		if err != nil {
			log.Fatal(err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Date", "Type", "Qty", "Price", "Client", "Buy/Sell"})
		for _, tx := range res.Items {
			t.AppendRow(table.Row{
				tx.DateTime, tx.TypeName, tx.Quantity,
				tx.Price, tx.ClientName, tx.TransactionType,
			})
		}
		t.SortBy([]table.SortBy{{Name: "Date", Mode: table.Dsc}})
		t.Render()
	},
}
