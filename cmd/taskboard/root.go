package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// app holds the global flags and the environment commands run in.
type app struct {
	jsonOutput bool
	server     string
	timeout    time.Duration
	verbose    bool

	// homeDir and workDir override the user's home and working directory.
	homeDir string
	workDir string
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "taskboard",
		Short:         "Taskboard command-line client",
		Long:          `Manage taskboard projects, sections, tasks, comments and tags from the terminal.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&a.server, "server", "", "Server base URL (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "Per-request timeout (default 30s)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log every request to stderr")

	rootCmd.AddCommand(
		newSignupCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newProjectCmd(a),
		newSectionCmd(a),
		newTaskCmd(a),
		newCommentCmd(a),
		newTagCmd(a),
		newUserCmd(a),
		newServeCmd(a),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() {
	os.Exit(run(&app{}, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command line and returns its exit code.
func run(a *app, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err, a.jsonOutput)
		return mapErrorToExitCode(err)
	}
	return ExitSuccess
}
