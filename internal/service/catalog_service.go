package service

import (
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
)

// CatalogService serves the read-only medicine catalog and therapist roster.
type CatalogService struct {
	store *repository.Store
}

func NewCatalogService(store *repository.Store) *CatalogService {
	return &CatalogService{store: store}
}

// Medicines lists the catalog, narrowed to category when one is given.
func (s *CatalogService) Medicines(category string) []entity.Medicine {
	if category == "" {
		return s.store.ListMedicines()
	}
	return s.store.ListMedicinesByCategory(category)
}

func (s *CatalogService) Medicine(id int) (entity.Medicine, error) {
	return s.store.GetMedicine(id)
}

func (s *CatalogService) Therapists() []entity.Therapist {
	return s.store.ListTherapists()
}

func (s *CatalogService) Therapist(id int) (entity.Therapist, error) {
	return s.store.GetTherapist(id)
}
