package cli

import (
	"os"
	"strings"

	"campus-cli/internal/api"
	"campus-cli/internal/format"
	"campus-cli/internal/gateway"
	"campus-cli/internal/model"
	"campus-cli/internal/store"
	"campus-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ServerURL string
	Pretty    bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "campus",
		Short:        "Campus course-authoring client (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Sign in once
  campus login --server https://campus.example.com --email teacher@example.com

  # Start the interactive TUI
  campus

  # Scriptable commands
  campus courses list
  campus modules create --course 66f0c2a9b3d94e2f8a1c4d07 --title "Week 1"

  # Direct course lookup (shortcut for: campus courses show <course-id>)
  campus 66f0c2a9b3d94e2f8a1c4d07
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", envOr("CAMPUS_SERVER", ""), "Campus server base URL (overrides the saved config)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newCoursesCmd(app))
	cmd.AddCommand(newModulesCmd(app))
	cmd.AddCommand(newLessonsCmd(app))
	cmd.AddCommand(newCacheCmd(app))

	return cmd
}

func runTUI(app *App) error {
	client, cfg, err := newClient(app)
	if err != nil {
		return err
	}
	if !cfg.SignedIn() {
		return errNotSignedIn
	}
	role, ok := model.ParseRole(cfg.Role)
	if !ok {
		role = model.RoleStudent
	}
	return tui.Run(tui.Deps{
		Client:  client,
		Gateway: gateway.New(client),
		Cache:   store.Cache{},
		Role:    role,
		Email:   cfg.Email,
	})
}

// resolveConfig loads the saved config and applies the --server override.
func resolveConfig(app *App) (store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return store.Config{}, err
	}
	if app.ServerURL != "" {
		cfg.ServerURL = app.ServerURL
	}
	return cfg, nil
}

func newClient(app *App) (*api.Client, store.Config, error) {
	cfg, err := resolveConfig(app)
	if err != nil {
		return nil, store.Config{}, err
	}
	if strings.TrimSpace(cfg.ServerURL) == "" {
		return nil, cfg, errNoServer
	}
	client := api.New(cfg.ServerURL,
		api.WithSessionCookie(cfg.SessionCookie),
		api.WithClientID(cfg.ClientID),
		api.WithLogger(api.DebugLogger()),
	)
	return client, cfg, nil
}

func currentRole(cfg store.Config) (model.Role, error) {
	if !cfg.SignedIn() {
		return "", errNotSignedIn
	}
	role, ok := model.ParseRole(cfg.Role)
	if !ok {
		return "", errNotSignedIn
	}
	return role, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.Pretty)
}
