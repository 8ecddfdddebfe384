package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"evexml/lib/configutil"
	"evexml/lib/eveapi"
	"evexml/lib/restyutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// Config is read from config.json5 (with config.local.json5 overrides)
// found upward from the working directory.
type Config struct {
	BaseURL     string `json:"base_url"`
	KeyID       string `json:"key_id"`
	VCode       string `json:"vcode"`
	CharacterID string `json:"character_id"`
}

var dumpExchanges string

var rootCmd = &cobra.Command{
	Use:   "eve-cli",
	Short: "eve-cli reads EVE Online XML API feeds from the command line.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dumpExchanges, "dump-exchanges", "",
		"directory to dump raw request/response exchanges into")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func client() *eveapi.Client {
	config, err := configutil.ReadRecursively[Config]("config.json5")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal(err)
	}

	opts := eveapi.ClientOptions{
		BaseURL:     config.BaseURL,
		CharacterID: config.CharacterID,
	}
	if config.KeyID != "" {
		opts.Key = &eveapi.Key{KeyID: config.KeyID, VCode: config.VCode}
	}
	if dumpExchanges != "" {
		opts.ExchangeOutput = restyutil.NewFilesystemOutput(dumpExchanges)
	}
	return eveapi.NewClient(opts)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	return t
}
