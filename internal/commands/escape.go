package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var escapeCmd = &cobra.Command{
	Use:           "escape [text]",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short:         "Escapes text using the selected profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		esc, err := runtime.NewEscaper(cmd.Context(), rootArgs.profile)
		if err != nil {
			return err
		}

		in, err := readInput(args)
		if err != nil {
			return err
		}

		fmt.Println(esc.Escape(in))
		return nil
	},
}
