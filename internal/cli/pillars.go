package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/career-roi/app/config"
	"github.com/career-roi/app/services"
	"github.com/career-roi/internal/catalog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPillarsCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "pillars [skill ...]",
		Short: "List pillars, or the pillars covered by the given skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(v)
			defer log.Sync()

			svc, err := services.NewSalaryService(catalog.Default(), nil, config.C.Suggest, log)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				return printJSON(cmd.OutOrStdout(), svc.Preview(splitSkills(args)))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tKEYWORDS")
			for _, def := range svc.Pillars() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", def.Key, def.Name, len(def.Keywords))
			}
			return w.Flush()
		},
	}
}

// splitSkills accepts "a, b" style lists in a single argument
func splitSkills(args []string) []string {
	var out []string
	for _, a := range args {
		for _, s := range strings.Split(a, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
