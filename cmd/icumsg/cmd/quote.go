package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goicu/icumsg/msgpattern"
)

var quoteCmd = &cobra.Command{
	Use:   "quote <file>",
	Short: "Parse a pattern file and print its canonical auto-quoted form",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify argument <file>")
		}

		cfg, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		mode, err := resolveApostropheMode(cfg)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		store, err := msgpattern.NewParser(mode).Parse(string(content))
		if err != nil {
			return err
		}

		fmt.Println(msgpattern.AutoQuoteApostropheDeep(store))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}
