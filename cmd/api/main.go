// @title                       Sistema de Gestão de Estoque
// @version                     1.0
// @description                 Aplicação web de controle de estoque. As rotas protegidas exigem o cookie de sessão estoque_session obtido em POST /login; sem sessão respondem 302 para /login.
// @BasePath                    /
// @securityDefinitions.apikey  SessionCookie
// @in                          header
// @name                        Cookie
// @description                 estoque_session=<token>
package main

//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs --parseInternal

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/jhoicas/sistema-estoque/docs"
)

func main() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}

// NewRootCommand comando raíz del binario estoque. Sin subcomando arranca el servidor.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "estoque",
		Short:         "Sistema de Gestão de Estoque",
		Long:          "Aplicação web de controle de estoque: produtos, movimentações de entrada e saída e alertas de estoque baixo.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newUserCommand())

	return cmd
}
