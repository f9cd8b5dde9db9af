package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCurrentCmd показывает пользователя, которому принадлежит сохранённый токен.
func NewCurrentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Текущий пользователь",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			u, err := app.client().Current(token)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "id=%s\nusername=%s\nemail=%s\n", u.ID, u.Username, u.Email)
			return nil
		},
	}
}
