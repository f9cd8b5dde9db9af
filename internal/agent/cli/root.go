// Package cli реализует командный интерфейс (CLI) клиента Contacts API.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных учётных данных (access токен) из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/agent/api"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/agent/config"
)

// DefaultServerURL — адрес сервера по умолчанию.
const DefaultServerURL = "http://127.0.0.1:5001"

// ServerEnv — переменная окружения, переопределяющая адрес сервера.
const ServerEnv = "CONTACTS_SERVER"

// errNotLoggedIn возвращается командами, которым нужен access токен.
var errNotLoggedIn = errors.New("not logged in: run `contacts login` first")

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера (например, "http://127.0.0.1:5001").
	ServerURL string
	// Insecure отключает проверку TLS сертификата сервера.
	Insecure bool

	// CredsPath — путь к файлу с сохранённым access токеном.
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	Creds *config.Credentials
}

// client создаёт API-клиент с учётом флагов приложения.
func (app *App) client() *api.Client {
	var opts []api.Option
	if app.Insecure {
		opts = append(opts, api.WithInsecureTLS())
	}
	return NewAPIClient(app.ServerURL, opts...)
}

// token возвращает сохранённый access токен или errNotLoggedIn.
func (app *App) token() (string, error) {
	if app.Creds == nil || app.Creds.AccessToken == "" {
		return "", errNotLoggedIn
	}
	return app.Creds.AccessToken, nil
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE определяется адрес сервера и путь к файлу учётных данных,
// после чего загружается сохранённый токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "contacts",
		Short:         "Contacts CLI — клиент для Contacts API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `Contacts CLI.

Команды:
  register  Регистрация нового пользователя
  login     Логин (получить access токен)
  logout    Удалить сохранённый токен
  current   Текущий пользователь по токену
  contacts  Работа с контактами (list/get/add/update/delete)
  version   Версия и дата сборки

Примеры:

Регистрация:
  contacts register --username alice --email alice@example.com --password StrongPass123

Логин:
  contacts login --email alice@example.com --password StrongPass123
  (сохраняет access токен в ~/.contacts/credentials.json)

Контакты:
  contacts contacts add --name Bob --email bob@example.com --phone 555-1
  contacts contacts list
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("server") {
				if v := os.Getenv(ServerEnv); v != "" {
					app.ServerURL = v
				}
			}

			if app.CredsPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.CredsPath = p
			}

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", DefaultServerURL, "server base URL (env "+ServerEnv+")")
	cmd.PersistentFlags().BoolVar(&app.Insecure, "insecure", false, "skip TLS certificate verification")
	cmd.PersistentFlags().StringVar(&app.CredsPath, "credentials", "", "credentials file (default ~/.contacts/credentials.json)")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewCurrentCmd(app))
	cmd.AddCommand(NewContactsCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
