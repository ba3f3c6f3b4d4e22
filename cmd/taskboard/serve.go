package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/internal/api"
	"github.com/taskboard/taskboard/internal/api/middleware"
	"github.com/taskboard/taskboard/internal/server"
	"github.com/taskboard/taskboard/internal/service"
	"github.com/taskboard/taskboard/internal/store"
)

func newServeCmd(a *app) *cobra.Command {
	var addr, database, secret string
	var secure bool
	var authRate float64
	var authBurst int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local taskboard server",
		Long: `Run a taskboard API server backed by SQLite.

Data is kept in memory unless --db names a file. Sessions are signed with
--secret, TASKBOARD_SECRET or [serve] secret in ~/.taskboard/config.toml;
without one a random secret is used and sessions end when the server stops.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("addr") && cfg.Serve.Addr != "" {
				addr = cfg.Serve.Addr
			}
			if !flags.Changed("db") && cfg.Serve.Database != "" {
				database = cfg.Serve.Database
			}
			if secret == "" {
				secret = os.Getenv("TASKBOARD_SECRET")
			}
			if secret == "" {
				secret = cfg.Serve.Secret
			}

			st, err := store.Open(database)
			if err != nil {
				return err
			}

			var key []byte
			if secret != "" {
				key = []byte(secret)
			}
			srv, err := server.New(addr, st, api.Options{
				Auth:         service.AuthConfig{Secret: key},
				SecureCookie: secure,
				AuthRateLimit: middleware.RateLimitConfig{
					RequestsPerSecond: authRate,
					Burst:             authBurst,
				},
			})
			if err != nil {
				st.Close()
				return err
			}

			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddress, "Address to listen on")
	cmd.Flags().StringVar(&database, "db", "", "SQLite database file (default: in memory)")
	cmd.Flags().StringVar(&secret, "secret", "", "Session signing secret")
	cmd.Flags().BoolVar(&secure, "secure-cookie", false, "Mark the session cookie Secure (behind TLS)")
	cmd.Flags().Float64Var(&authRate, "auth-rate", 1, "Signup/login requests per second per client (0 disables)")
	cmd.Flags().IntVar(&authBurst, "auth-burst", 5, "Signup/login burst per client")
	return cmd
}
