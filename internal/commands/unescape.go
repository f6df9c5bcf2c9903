package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unescapeCmd = &cobra.Command{
	Use:           "unescape [text]",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short:         "Reverts escaped text to its original form",
	RunE: func(cmd *cobra.Command, args []string) error {
		esc, err := runtime.NewEscaper(cmd.Context(), rootArgs.profile)
		if err != nil {
			return err
		}

		in, err := readInput(args)
		if err != nil {
			return err
		}

		out, err := esc.Unescape(in)
		if err != nil {
			return fmt.Errorf("unescape: %w", err)
		}

		fmt.Println(out)
		return nil
	},
}
