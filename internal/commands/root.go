package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/chesc/chesc/internal/config"
)

var (
	cfg     *config.Config
	runtime *config.Runtime
)

var rootArgs struct {
	configs []string
	profile string
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:           "chesc",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short:         "Rule-driven character escaper",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if rootArgs.verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		var err error
		cfg, err = config.LoadConfig(rootArgs.configs...)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		runtime, err = cfg.NewRuntime()
		if err != nil {
			return fmt.Errorf("create runtime: %w", err)
		}

		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringSliceVar(&rootArgs.configs, "config", nil, "config file(s) to load")
	flags.StringVar(&rootArgs.profile, "profile", "", "escaper profile to use")
	flags.BoolVar(&rootArgs.verbose, "verbose", false, "verbose logging")

	rootCmd.AddCommand(
		escapeCmd,
		unescapeCmd,
		checkCmd,
		profilesCmd,
	)
}
