package main

import (
	"fmt"
	"log/slog"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"
	portsrepo "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/repositories"
	"github.com/GabrielVilchis-215460/nextjs-practice/pkg/database"
	"github.com/spf13/cobra"
)

// placeholderCustomers fill the customer select of the invoice form on a fresh database.
var placeholderCustomers = []domain.Customer{
	{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{ID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the placeholder customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.migrate(database.MigrateUp); err != nil {
				return err
			}

			repos, closeStorage, err := a.openRepositories(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStorage()

			seeder, ok := repos.CustomerRepo.(portsrepo.CustomerSeeder)
			if !ok {
				return fmt.Errorf("storage driver %q cannot seed customers", a.cfg.StorageDriver)
			}
			for _, customer := range placeholderCustomers {
				if err := seeder.InsertCustomer(cmd.Context(), customer); err != nil {
					return err
				}
			}
			a.logger.Info("Seeded customers", slog.Int("count", len(placeholderCustomers)))
			return nil
		},
	}
}
