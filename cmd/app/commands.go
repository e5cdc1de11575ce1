package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/mottuflow/fleetflow/cmd/app/commands"
	"github.com/mottuflow/fleetflow/internal/app"
	"github.com/mottuflow/fleetflow/internal/config"
	staffUsecase "github.com/mottuflow/fleetflow/internal/staff/usecase"
)

func getCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
			},
		},
		{
			Name:  "create-staff",
			Usage: "Register a staff member from the command line",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Full name of the staff member",
				},
				&cli.StringFlag{
					Name:     "cpf",
					Required: true,
					Usage:    "CPF document number (11 digits)",
				},
				&cli.StringFlag{
					Name:     "role",
					Aliases:  []string{"r"},
					Required: true,
					Usage:    "Role of the staff member (e.g., admin, operator)",
				},
				&cli.StringFlag{
					Name:  "phone",
					Usage: "Contact phone number",
				},
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Login email address",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password (omit to generate a random one)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				staffUseCase, err := container.StaffUseCase()
				if err != nil {
					return err
				}

				input := staffUsecase.CreateStaffInput{
					Name:     cmd.String("name"),
					CPF:      cmd.String("cpf"),
					Role:     cmd.String("role"),
					Phone:    cmd.String("phone"),
					Email:    cmd.String("email"),
					Password: cmd.String("password"),
				}

				return commands.RunCreateStaff(
					ctx,
					staffUseCase,
					container.SecretService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					input,
					cmd.String("format"),
				)
			},
		},
	}
}
