package cli

import (
	"campus-cli/internal/model"

	"github.com/spf13/cobra"
)

func newCoursesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse courses",
	}
	cmd.AddCommand(newCoursesListCmd(app))
	cmd.AddCommand(newCoursesShowCmd(app))
	return cmd
}

func newCoursesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List courses visible to the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient(app)
			if err != nil {
				return err
			}
			if !cfg.SignedIn() {
				return errNotSignedIn
			}
			courses, err := client.FetchCourses(cmd.Context())
			if err != nil {
				return err
			}
			if courses == nil {
				courses = []model.Course{}
			}
			return writeOut(cmd, app, courses)
		},
	}
}

func newCoursesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <course-id>",
		Short: "Show a course with its module/lesson tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient(app)
			if err != nil {
				return err
			}
			if !cfg.SignedIn() {
				return errNotSignedIn
			}
			course, err := client.FetchCourse(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			modules, err := client.FetchModules(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if modules == nil {
				modules = []model.Module{}
			}
			return writeOut(cmd, app, struct {
				Course  model.Course   `json:"course"`
				Modules []model.Module `json:"modules"`
			}{Course: course, Modules: modules})
		},
	}
}
