package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/internal/config"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

func newSignupCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signup <username>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, password)
			if err != nil {
				return err
			}
			return a.authenticate(cmd, func(ctx context.Context, c *taskboard.Client) (*taskboard.User, error) {
				return c.Signup(ctx, args[0], password, email)
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (read from stdin when omitted)")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and store the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, password)
			if err != nil {
				return err
			}
			return a.authenticate(cmd, func(ctx context.Context, c *taskboard.Client) (*taskboard.User, error) {
				return c.Login(ctx, args[0], password)
			})
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (read from stdin when omitted)")
	return cmd
}

// authenticate runs a signup or login call and stores the resulting session.
func (a *app) authenticate(cmd *cobra.Command, call func(context.Context, *taskboard.Client) (*taskboard.User, error)) error {
	c, cfg, err := a.connect(cmd, false)
	if err != nil {
		return err
	}

	user, err := call(cmd.Context(), c)
	if err != nil {
		return err
	}

	cookie, ok := c.SessionCookie()
	if !ok {
		return fmt.Errorf("server did not issue a session cookie")
	}
	if err := config.SaveSession(cfg.HomeDir, &config.Session{
		Cookie:   cookie,
		UserID:   user.ID,
		Username: user.Username,
		Server:   cfg.ServerURL,
	}); err != nil {
		return err
	}

	if a.jsonOutput {
		printUser(cmd.OutOrStdout(), user, true)
		return nil
	}
	printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Logged in as %s (%s)", user.Username, cfg.ServerURL), false)
	return nil
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			if err := config.ClearSession(cfg.HomeDir); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Logged out", a.jsonOutput)
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := a.connect(cmd, true)
			if err != nil {
				return err
			}

			users, err := c.GetUsers(cmd.Context(), []string{cfg.Session.UserID})
			if err != nil {
				return err
			}
			if len(users) == 0 {
				return errNotLoggedIn
			}

			printUser(cmd.OutOrStdout(), &users[0], a.jsonOutput)
			return nil
		},
	}
}
