package cli

import (
	"errors"

	"campus-cli/internal/content"
	"campus-cli/internal/gateway"
	"campus-cli/internal/model"

	"github.com/spf13/cobra"
)

func newLessonsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lessons",
		Short: "Manage lessons",
	}
	cmd.AddCommand(newLessonsCreateCmd(app))
	return cmd
}

func newLessonsCreateCmd(app *App) *cobra.Command {
	var moduleID string
	var title string
	var contentURL string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a lesson in a module",
		RunE: func(cmd *cobra.Command, args []string) error {
			if moduleID == "" {
				return errors.New("missing --module")
			}
			client, cfg, err := newClient(app)
			if err != nil {
				return err
			}
			role, err := currentRole(cfg)
			if err != nil {
				return err
			}
			if !content.CanCreateLesson(role) {
				return errPermission("create lessons", role)
			}

			res := gateway.New(client).CreateLesson(cmd.Context(), model.LessonInput{
				ModuleRef: moduleID,
				Title:     title,
				Content:   contentURL,
			})
			if !res.OK {
				return errMutation(res.Result)
			}
			return writeOut(cmd, app, res.Lesson)
		},
	}

	cmd.Flags().StringVar(&moduleID, "module", "", "Module id")
	cmd.Flags().StringVar(&title, "title", "", "Lesson title")
	cmd.Flags().StringVar(&contentURL, "content", "", "Lesson content URL")
	return cmd
}
