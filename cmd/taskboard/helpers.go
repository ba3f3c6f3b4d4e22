package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/internal/config"
	"github.com/taskboard/taskboard/internal/identity"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

var (
	errNotLoggedIn = errors.New("not logged in: run 'taskboard login' first")
	errNoProject   = errors.New("no project given and no default project in taskboard.toml")
	errNoChanges   = errors.New("nothing to update: pass at least one field flag")
)

// config resolves configuration and applies the global flags on top.
func (a *app) config() (*config.ResolvedConfig, error) {
	homeDir := a.homeDir
	if homeDir == "" {
		var err error
		if homeDir, err = os.UserHomeDir(); err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
	}
	workDir := a.workDir
	if workDir == "" {
		var err error
		if workDir, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	cfg, err := config.ResolveConfigWith(homeDir, workDir)
	if err != nil {
		return nil, err
	}
	if a.server != "" {
		cfg.ServerURL = strings.TrimRight(a.server, "/")
	}
	if a.timeout > 0 {
		cfg.Timeout = a.timeout
	}
	return cfg, nil
}

// connect builds a client for the resolved server. With requireSession the
// stored login must belong to that server.
func (a *app) connect(cmd *cobra.Command, requireSession bool) (*taskboard.Client, *config.ResolvedConfig, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, nil, err
	}

	opts := []taskboard.ClientOption{
		taskboard.WithTimeout(cfg.Timeout),
		taskboard.WithUserAgent(identity.UserAgent()),
	}
	if cookie, ok := cfg.SessionFor(cfg.ServerURL); ok {
		opts = append(opts, taskboard.WithAuthorizationCookie(cookie))
	} else if requireSession {
		return nil, nil, errNotLoggedIn
	}
	if a.verbose {
		logger := log.New(cmd.ErrOrStderr(), "[taskboard] ", log.LstdFlags)
		opts = append(opts, taskboard.WithObserver(taskboard.LogObserver(logger)))
	}

	c, err := taskboard.NewClient(cfg.ServerURL, opts...)
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}

// projectID returns the project from args or the taskboard.toml default.
func projectID(args []string, cfg *config.ResolvedConfig) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.Project != "" {
		return cfg.Project, nil
	}
	return "", errNoProject
}

// mapErrorToExitCode maps an error to the appropriate exit code
func mapErrorToExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, errNotLoggedIn):
		return ExitNotLoggedIn
	case errors.Is(err, errNoProject):
		return ExitProjectNotConfigured
	case errors.Is(err, errNoChanges):
		return ExitInvalidInput
	case taskboard.IsTransport(err):
		return ExitServerNotRunning
	}

	switch taskboard.StatusCode(err) {
	case http.StatusUnauthorized:
		return ExitNotLoggedIn
	case http.StatusNotFound:
		return ExitNotFound
	case http.StatusConflict:
		return ExitConflict
	case http.StatusBadRequest:
		return ExitInvalidInput
	}

	return ExitGeneralError
}

// parseDueDate accepts a calendar date or an RFC 3339 timestamp.
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid due date %q: use YYYY-MM-DD or RFC 3339", s)
}

// readPassword returns the --password flag value or reads one line from in.
func readPassword(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("TASKBOARD_PASSWORD"); env != "" {
		return env, nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.New("password is required")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
