package cli

import (
	"errors"
	"time"

	"campus-cli/internal/content"
	"campus-cli/internal/gateway"
	"campus-cli/internal/model"

	"github.com/spf13/cobra"
)

func newModulesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "Manage course modules",
	}
	cmd.AddCommand(newModulesListCmd(app))
	cmd.AddCommand(newModulesCreateCmd(app))
	cmd.AddCommand(newModulesUpdateCmd(app))
	cmd.AddCommand(newModulesDeleteCmd(app))
	return cmd
}

func newModulesListCmd(app *App) *cobra.Command {
	var courseID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a course's modules (with nested lessons)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if courseID == "" {
				return errors.New("missing --course")
			}
			client, cfg, err := newClient(app)
			if err != nil {
				return err
			}
			if !cfg.SignedIn() {
				return errNotSignedIn
			}
			modules, err := client.FetchModules(cmd.Context(), courseID)
			if err != nil {
				return err
			}
			if modules == nil {
				modules = []model.Module{}
			}
			return writeOut(cmd, app, modules)
		},
	}

	cmd.Flags().StringVar(&courseID, "course", "", "Course id")
	return cmd
}

func parseLockUntil(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, errors.New("invalid --lock-until; expected RFC 3339, e.g. 2026-09-01T08:00:00Z")
	}
	return &t, nil
}

func newModulesCreateCmd(app *App) *cobra.Command {
	var courseID string
	var title string
	var lockUntil string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a module in a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			if courseID == "" {
				return errors.New("missing --course")
			}
			client, cfg, err := newClient(app)
			if err != nil {
				return err
			}
			role, err := currentRole(cfg)
			if err != nil {
				return err
			}
			if !content.CanCreateModule(role) {
				return errPermission("create modules", role)
			}
			lock, err := parseLockUntil(lockUntil)
			if err != nil {
				return err
			}

			res := gateway.New(client).CreateModule(cmd.Context(), model.ModuleInput{
				CourseRef: courseID,
				Title:     title,
				LockUntil: lock,
			})
			if !res.OK {
				return errMutation(res.Result)
			}
			return writeOut(cmd, app, res.Module)
		},
	}

	cmd.Flags().StringVar(&courseID, "course", "", "Course id")
	cmd.Flags().StringVar(&title, "title", "", "Module title")
	cmd.Flags().StringVar(&lockUntil, "lock-until", "", "Lock the module for students until this RFC 3339 time")
	return cmd
}

func newModulesUpdateCmd(app *App) *cobra.Command {
	var courseID string
	var title string
	var lockUntil string
	var clearLock bool

	cmd := &cobra.Command{
		Use:   "update <module-id>",
		Short: "Update a module's title or lock time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if courseID == "" {
				return errors.New("missing --course")
			}
			client, cfg, err := newClient(app)
			if err != nil {
				return err
			}
			role, err := currentRole(cfg)
			if err != nil {
				return err
			}
			if !content.CanEditModule(role) {
				return errPermission("update modules", role)
			}

			// Edits send the full desired state; load the current record so
			// unspecified flags keep their values.
			modules, err := client.FetchModules(cmd.Context(), courseID)
			if err != nil {
				return err
			}
			var cur model.Module
			found := false
			for _, m := range modules {
				if m.ID == args[0] {
					cur = m
					found = true
					break
				}
			}
			if !found {
				return errNotFound("module", args[0])
			}
			in := model.ModuleInput{CourseRef: cur.CourseRef, Title: cur.Title, LockUntil: cur.LockUntil}
			if cmd.Flags().Changed("title") {
				in.Title = title
			}
			if clearLock {
				in.LockUntil = nil
			} else if lockUntil != "" {
				lock, err := parseLockUntil(lockUntil)
				if err != nil {
					return err
				}
				in.LockUntil = lock
			}

			res := gateway.New(client).UpdateModule(cmd.Context(), args[0], in)
			if !res.OK {
				return errMutation(res.Result)
			}
			return writeOut(cmd, app, res.Module)
		},
	}

	cmd.Flags().StringVar(&courseID, "course", "", "Course id the module belongs to")
	cmd.Flags().StringVar(&title, "title", "", "New module title")
	cmd.Flags().StringVar(&lockUntil, "lock-until", "", "New lock time (RFC 3339)")
	cmd.Flags().BoolVar(&clearLock, "clear-lock", false, "Remove the lock time")
	return cmd
}

func newModulesDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <module-id>",
		Short: "Delete a module (and its lessons)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete without --yes")
			}
			client, cfg, err := newClient(app)
			if err != nil {
				return err
			}
			role, err := currentRole(cfg)
			if err != nil {
				return err
			}
			if !content.CanDeleteModule(role) {
				return errPermission("delete modules", role)
			}
			res := gateway.New(client).DeleteModule(cmd.Context(), args[0])
			if !res.OK {
				return errMutation(res)
			}
			return writeOut(cmd, app, map[string]string{"deleted": args[0]})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}
