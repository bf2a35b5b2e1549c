package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "icumsg",
		Short:        "icumsg",
		SilenceUsage: true,
		Long:         `CLI tool for parsing, validating and comparing ICU MessageFormat patterns.`,
	}

	locale     string
	apoMode    string
	verbose    bool
	configFile string

	log = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&locale, "locale", "l", "", "locale to evaluate plural/selectordinal arguments against (overrides config default-locale)")
	rootCmd.PersistentFlags().StringVarP(&apoMode, "mode", "m", "", "apostrophe mode: double-optional or double-required (overrides config apostrophe-mode)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".icumsg.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return rootCmd.Execute()
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	})
}
