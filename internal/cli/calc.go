package cli

import (
	"github.com/career-roi/app/config"
	"github.com/career-roi/app/services"
	"github.com/career-roi/internal/catalog"
	"github.com/career-roi/internal/salary"
	"github.com/career-roi/internal/suggest"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type calcOutput struct {
	salary.Result
	Unmatched []suggest.SkillSuggestions `json:"unmatched,omitempty"`
}

func newCalcCommand(v *viper.Viper) *cobra.Command {
	var (
		segment   string
		skills    []string
		current   float64
		completed bool
		hints     bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate before/after salary for a profile",
		Example: `  roicalc calc --segment fresher --skills "seo, chatgpt" --completed
  roicalc calc --segment experienced --salary 12 --skills seo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(v)
			defer log.Sync()

			svc, err := services.NewSalaryService(catalog.Default(), nil, config.C.Suggest, log)
			if err != nil {
				return err
			}

			profile := salary.Profile{
				Segment:          salary.Segment(segment),
				Skills:           skills,
				CurrentSalary:    current,
				ProgramCompleted: completed,
			}
			result, err := svc.Calculate(cmd.Context(), profile)
			if err != nil {
				return err
			}
			log.Debug("calculated",
				zap.String("segment", segment),
				zap.Strings("skills", skills),
				zap.Float64("uplift", result.Uplift))

			out := calcOutput{Result: result}
			if hints {
				out.Unmatched = svc.Suggest(skills)
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&segment, "segment", "s", string(salary.SegmentFresher), "fresher or experienced")
	cmd.Flags().StringSliceVarP(&skills, "skills", "k", nil, "comma separated skills")
	cmd.Flags().Float64Var(&current, "salary", 0, "current salary in LPA (experienced only)")
	cmd.Flags().BoolVarP(&completed, "completed", "c", false, "assume the program is completed")
	cmd.Flags().BoolVar(&hints, "suggest", false, "include did-you-mean hints for unmatched skills")
	return cmd
}
