package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sistema-estoque/internal/infrastructure/postgres"
	"github.com/jhoicas/sistema-estoque/pkg/config"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrações do esquema do banco de dados",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica as migrações pendentes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := databaseURL()
			if err != nil {
				return err
			}
			return postgres.Migrate(cmd.Context(), url)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Mostra o estado das migrações",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := databaseURL()
			if err != nil {
				return err
			}
			return postgres.MigrationStatus(cmd.Context(), url)
		},
	})
	return cmd
}

// databaseURL lee DATABASE_URL; los comandos de mantenimiento no necesitan el resto de la configuración.
func databaseURL() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(cfg.DB.DatabaseURL) == "" {
		return "", errors.New("DATABASE_URL não configurado nas variáveis de ambiente")
	}
	return cfg.DB.DatabaseURL, nil
}
