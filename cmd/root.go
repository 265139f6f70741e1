package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nukata/schemer/scheme"
	"github.com/spf13/cobra"
)

var configPath string

// NewRootCmd builds the schemer command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "schemer",
		Short: "A small Scheme-like interpreter",
		Long: `schemer evaluates parenthesized expressions over numbers and booleans.
Without a subcommand it starts an interactive session.`,
		Version:       fmt.Sprintf("%.2f", scheme.Version),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			rl, err := scheme.NewLineReader(cfg)
			if err != nil {
				return err
			}
			defer rl.Close()
			logger := log.New(stderr, "", 0)
			return scheme.ReadEvalPrintLoop(cfg, cfg.NewEnv(), rl, stdout, logger)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"YAML file with shell settings")
	root.AddCommand(newRunCmd(stdout))
	return root
}

func loadConfig() (*scheme.Config, error) {
	if configPath == "" {
		return scheme.DefaultConfig(), nil
	}
	return scheme.LoadConfig(configPath)
}

// Main runs the command line args and returns the exit status.
func Main(args []string) int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		log.New(os.Stderr, "schemer: ", 0).Println(err)
		return 1
	}
	return 0
}
