package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/shared/models"
)

// NewContactsCmd — родительская команда для CRUD над контактами.
//
// Пример использования:
//
//	contacts contacts list
//	contacts contacts add --name Bob --email bob@example.com --phone 555-1
//	contacts contacts update <id> --phone 555-2
func NewContactsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		Aliases: []string{"c"},
		Short:   "Работа с контактами",
	}

	cmd.AddCommand(newContactsListCmd(app))
	cmd.AddCommand(newContactsGetCmd(app))
	cmd.AddCommand(newContactsAddCmd(app))
	cmd.AddCommand(newContactsUpdateCmd(app))
	cmd.AddCommand(newContactsDeleteCmd(app))

	return cmd
}

func newContactsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Список контактов",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			items, err := app.client().ListContacts(token)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no contacts")
				return nil
			}
			return printContactTable(cmd.OutOrStdout(), items)
		},
	}
}

func newContactsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Показать контакт",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			c, err := app.client().GetContact(token, args[0])
			if err != nil {
				return err
			}
			printContact(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func newContactsAddCmd(app *App) *cobra.Command {
	var req models.CreateContactRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Создать контакт",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			c, err := app.client().CreateContact(token, req)
			if err != nil {
				return err
			}
			printContact(cmd.OutOrStdout(), c)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "contact name")
	cmd.Flags().StringVar(&req.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact phone")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("phone")

	return cmd
}

func newContactsUpdateCmd(app *App) *cobra.Command {
	var name, email, phone string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Изменить контакт (только переданные поля)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// отправляем только явно заданные флаги
			var req models.UpdateContactRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			if cmd.Flags().Changed("phone") {
				req.Phone = &phone
			}
			if req.Name == nil && req.Email == nil && req.Phone == nil {
				return errors.New("nothing to update: set --name, --email or --phone")
			}

			token, err := app.token()
			if err != nil {
				return err
			}
			c, err := app.client().UpdateContact(token, args[0], req)
			if err != nil {
				return err
			}
			printContact(cmd.OutOrStdout(), c)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new contact name")
	cmd.Flags().StringVar(&email, "email", "", "new contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "new contact phone")

	return cmd
}

func newContactsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить контакт",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			c, err := app.client().DeleteContact(token, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s (%s)\n", c.ID, c.Name)
			return nil
		},
	}
}

func printContactTable(w io.Writer, items []models.Contact) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE")
	for _, c := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone)
	}
	return tw.Flush()
}

func printContact(w io.Writer, c models.Contact) {
	fmt.Fprintf(w, "id=%s\nname=%s\nemail=%s\nphone=%s\nupdated_at=%s\n",
		c.ID, c.Name, c.Email, c.Phone, c.UpdatedAt.Format("2006-01-02 15:04:05"))
}
