package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sistema-estoque/internal/application/auth"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/memory"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/postgres"
	"github.com/jhoicas/sistema-estoque/pkg/config"
)

type createUserOptions struct {
	Name     string
	Email    string
	Password string
}

func newUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usuario",
		Short: "Administração de usuários",
	}
	cmd.AddCommand(newCreateUserCommand())
	return cmd
}

// newCreateUserCommand alta de usuarios: la aplicación no tiene página de registro.
func newCreateUserCommand() *cobra.Command {
	opts := &createUserOptions{}
	cmd := &cobra.Command{
		Use:   "criar",
		Short: "Cria um usuário com senha (bcrypt)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := databaseURL()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), memory.NewSessionStore(), auth.SessionConfig{})
			id, err := uc.ProvisionUser(ctx, opts.Name, opts.Email, opts.Password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usuário %s criado (id %d)\n", opts.Email, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Name, "nome", "", "nome do usuário")
	cmd.Flags().StringVar(&opts.Email, "email", "", "email de login")
	cmd.Flags().StringVar(&opts.Password, "senha", "", "senha (mínimo 6 caracteres)")
	_ = cmd.MarkFlagRequired("nome")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("senha")
	return cmd
}
