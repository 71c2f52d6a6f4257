// Package cli holds the roicalc cobra commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/career-roi/app/config"
	"github.com/career-roi/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const app = "roicalc"

// Actual version can be specified in build command.
var version = "unknown"

// NewRootCommand assembles roicalc with its subcommands. v holds the flag
// bindings; pass a fresh instance per command tree.
func NewRootCommand(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           app,
		Short:         "roicalc projects salary uplift from a list of marketing skills",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path := v.GetString("engine-config")
			if path == "" {
				return nil
			}
			if err := config.Load(path); err != nil {
				return fmt.Errorf("loading engine config: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	root.PersistentFlags().String("engine-config", "", "engine tuning file (suggestion weights, cache size)")

	v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	v.BindPFlag("json", root.PersistentFlags().Lookup("json"))
	v.BindPFlag("engine-config", root.PersistentFlags().Lookup("engine-config"))
	v.SetEnvPrefix("ROICALC")
	v.AutomaticEnv()

	root.AddCommand(newCalcCommand(v), newPillarsCommand(v), newVersionCommand())
	return root
}

// Execute runs roicalc with os.Args.
func Execute() error {
	return NewRootCommand(viper.New()).Execute()
}

func newLogger(v *viper.Viper) *zap.Logger {
	l, err := logger.New(v.GetBool("json"), v.GetBool("debug"))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func printJSON(w io.Writer, value interface{}) error {
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(pretty))
	return err
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
		},
	}
}
