package commands

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:           "check [text]",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short:         "Exits non-zero unless the text is in escaped form",
	RunE: func(cmd *cobra.Command, args []string) error {
		esc, err := runtime.NewEscaper(cmd.Context(), rootArgs.profile)
		if err != nil {
			return err
		}

		in, err := readInput(args)
		if err != nil {
			return err
		}

		if !esc.IsEscaped(in) {
			return errors.New("input is not in escaped form")
		}

		log.Debug().Msg("input is in escaped form")
		return nil
	},
}
