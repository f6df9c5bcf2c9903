package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:           "profiles",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short:         "Lists available escaper profiles",
	RunE: func(cmd *cobra.Command, _ []string) error {
		profiles, err := runtime.Profiles(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "NAME\tESCAPE\tRULES")
		for _, p := range profiles {
			escapeChar := p.EscapeChar.String()
			if p.EscapeChar == 0 {
				escapeChar = `\`
			}

			_, _ = fmt.Fprintf(w, "%s\t%q\t%d\n", p.Name, escapeChar, len(p.Rules))
		}

		return w.Flush()
	},
}
