// Package cmd holds the CLI entrypoint.
package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"gosh/core/config"
	"gosh/core/host"
	"gosh/core/shell"
)

var (
	cfgPath     string
	debug       bool
	commandLine string

	exitStatus int
)

// rootCmd runs the interpreter itself; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "gosh",
	Short: "A small interactive command interpreter",
	Long: `gosh reads a line at a time, splits it honoring shell-style quoting
and output redirection, and runs builtins or external executables.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		logOut := io.Writer(io.Discard)
		if debug {
			logOut = cmd.ErrOrStderr()
		}
		logger := log.NewWithOptions(logOut, log.Options{
			Level:  log.DebugLevel,
			Prefix: "gosh",
		})

		sh := shell.New(shell.Options{
			Host:   host.NewOS(),
			Config: cfg,
			Logger: logger,
			Stdin:  os.Stdin,
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		})

		if commandLine != "" {
			code, _, err := sh.RunCommand(commandLine)
			exitStatus = code
			return err
		}

		exitStatus, err = sh.Run()
		return err
	},
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitStatus
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log each turn's dispatch decisions")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single command line and exit")
}
