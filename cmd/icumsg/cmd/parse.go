package cmd

import (
	"errors"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/goicu/icumsg/msgpattern"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a pattern file and dump its Part sequence to stdout",
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

		for i := 0; i < store.Count(); i++ {
			part := store.Part(i)
			repr.Println(part)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
