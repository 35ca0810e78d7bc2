package usecase

import (
	"context"

	"github.com/abeliasun/backoffice/internal/domain"
)

type ServiceUC struct {
	Services domain.ServiceRepo
}

func (uc *ServiceUC) List(ctx context.Context) ([]domain.Service, error) {
	return uc.Services.List(ctx)
}

// SeedCatalogue inserts the fixed service catalogue on an empty table.
func (uc *ServiceUC) SeedCatalogue(ctx context.Context) error {
	return uc.Services.Seed(ctx, DefaultCatalogue())
}

// DefaultCatalogue is the garden-maintenance service list the business
// operates with. Sub-service ids are assigned by the database.
func DefaultCatalogue() []domain.Service {
	return []domain.Service{
		{
			Name: "Entretien",
			SubServices: []domain.SubService{
				{Name: "Abattage"},
				{Name: "Abattage/élagages"},
				{Name: "Broyage"},
				{Name: "Engrais"},
				{Name: "Écorces"},
				{Name: "Feuilles ramassage/soufflage"},
				{Name: "Finitions bords"},
				{Name: "Nettoyage Haute pression/brosse mécanique"},
				{Name: "Nettoyage parterres"},
				{Name: "Nettoyage terrasses/chemins/parking"},
				{Name: "Plantations annuelles"},
				{Name: "Pulvérisation mauvaise herbes"},
				{Name: "Taille grandes haies"},
				{Name: "Taille petites haies"},
				{Name: "Taille arbustes/massifs"},
				{Name: "Tonte"},
				{Name: "Traitement pelouses (engrais/pulvérisation)"},
			},
		},
		{
			Name: "Aménagement",
			SubServices: []domain.SubService{
				{Name: "Aménagement extérieur"},
				{Name: "Aménagement pierre"},
			},
		},
	}
}
