package cli

import (
	"errors"
	"fmt"
	"strings"

	"campus-cli/internal/store"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient(app)
			if err != nil {
				return err
			}
			email = strings.TrimSpace(email)
			if email == "" {
				return errors.New("missing --email")
			}
			if password == "" {
				password = envOr("CAMPUS_PASSWORD", "")
			}
			if password == "" {
				return errors.New("missing --password (or set CAMPUS_PASSWORD)")
			}

			sess, err := client.SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			cfg.SessionCookie = sess.Cookie
			cfg.Role = string(sess.Role)
			cfg.Email = email
			cfg.EnsureClientID()
			if err := store.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", email, sess.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prefer CAMPUS_PASSWORD)")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient(app)
			if err != nil {
				return err
			}
			if cfg.SignedIn() {
				// Best-effort: the local session is discarded regardless.
				_ = client.SignOut(cmd.Context())
			}
			cfg.SessionCookie = ""
			cfg.Role = ""
			cfg.Email = ""
			if err := store.SaveConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(app)
			if err != nil {
				return err
			}
			if !cfg.SignedIn() {
				return errNotSignedIn
			}
			return writeOut(cmd, app, map[string]string{
				"server": cfg.ServerURL,
				"email":  cfg.Email,
				"role":   cfg.Role,
			})
		},
	}
}
