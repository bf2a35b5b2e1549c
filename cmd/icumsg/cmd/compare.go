package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/kylelemons/godebug/pretty"
	"github.com/spf13/cobra"

	"github.com/goicu/icumsg/msgcompare"
	"github.com/goicu/icumsg/msgpattern"
)

var (
	sourceLocaleFlag string
	targetLocaleFlag string
)

var compareCmd = &cobra.Command{
	Use:   "compare <source-file> <target-file>",
	Short: "Compare a translated pattern file's argument shape against its source",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			_ = cmd.Help()
			return errors.New("need to specify arguments <source-file> <target-file>")
		}

		cfg, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		mode, err := resolveApostropheMode(cfg)
		if err != nil {
			return err
		}

		sourceContent, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		targetContent, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		source, err := msgpattern.NewParser(mode).Parse(string(sourceContent))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}
		target, err := msgpattern.NewParser(mode).Parse(string(targetContent))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", args[1], err)
		}

		sourceLocale := sourceLocaleFlag
		if sourceLocale == "" {
			sourceLocale = resolveLocale(cfg)
		}
		targetLocale := targetLocaleFlag
		if targetLocale == "" {
			targetLocale = resolveLocale(cfg)
		}

		result, err := msgcompare.Compare(sourceLocale, targetLocale, source, target, msgcompare.Options{
			ValidateSource: true,
			ValidateTarget: true,
		})
		if err != nil {
			return err
		}

		if result.SourceWarnings != nil {
			log.WithField("file", args[0]).Warn(result.SourceWarnings.Error())
		}
		if result.TargetWarnings != nil {
			log.WithField("file", args[1]).Warn(result.TargetWarnings.Error())
		}
		if verbose {
			log.Debug("compare result:\n" + pretty.Sprint(result))
		}
		fmt.Println("argument shapes match")
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&sourceLocaleFlag, "source-locale", "", "locale of the source file (default: --locale)")
	compareCmd.Flags().StringVar(&targetLocaleFlag, "target-locale", "", "locale of the target file (default: --locale)")
	rootCmd.AddCommand(compareCmd)
}
