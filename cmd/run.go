package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nukata/schemer/scheme"
	"github.com/spf13/cobra"
)

func newRunCmd(stdout io.Writer) *cobra.Command {
	var (
		runExpression bool
		runPrint      bool
	)
	runCmd := &cobra.Command{
		Use:   "run [file|expression]...",
		Short: "Run scheme code",
		Long:  `Run scheme code supplied via the command line or files.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			env := cfg.NewEnv()
			for _, arg := range args {
				result, err := runSource(arg, runExpression, env)
				if err != nil {
					return err
				}
				if runPrint && result != nil {
					fmt.Fprintln(stdout, result)
				}
			}
			return nil
		},
	}
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as scheme expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print the value of the last expression of each argument")
	return runCmd
}

func runSource(arg string, isExpression bool, env *scheme.Environment) (scheme.Expression, error) {
	if isExpression {
		return scheme.ReadEvalLoop(strings.NewReader(arg), env)
	}
	file, err := os.Open(arg)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	result, err := scheme.ReadEvalLoop(file, env)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", arg, err)
	}
	return result, nil
}
