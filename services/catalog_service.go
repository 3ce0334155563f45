package services

import (
	"fmt"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/PelvK/club-sarmiento-management-sub001/repository"
	"github.com/PelvK/club-sarmiento-management-sub001/utils"
)

// CatalogService exposes the read-only sport and quote registry
type CatalogService struct {
	sportRepo *repository.SportRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(sportRepo *repository.SportRepository) *CatalogService {
	return &CatalogService{
		sportRepo: sportRepo,
	}
}

// LoadSports returns every sport with its fee quotes
func (s *CatalogService) LoadSports() ([]models.Sport, error) {
	return s.sportRepo.LoadSports()
}

// GetSport returns the sport with the given id
func (s *CatalogService) GetSport(sportID int) (*models.Sport, error) {
	sports, err := s.sportRepo.LoadSports()
	if err != nil {
		return nil, err
	}
	for i := range sports {
		if sports[i].ID == sportID {
			return &sports[i], nil
		}
	}
	return nil, utils.NewNotFoundError(fmt.Sprintf("sport %d", sportID))
}

// LoadSocietaryQuotes returns the club-membership-only fee tiers
func (s *CatalogService) LoadSocietaryQuotes() ([]models.Quote, error) {
	return s.sportRepo.LoadSocietaryQuotes()
}

// GetQuote returns the fee quote with the given id
func (s *CatalogService) GetQuote(quoteID int) (*models.Quote, error) {
	quote, err := s.sportRepo.GetQuote(quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, utils.NewNotFoundError(fmt.Sprintf("quote %d", quoteID))
	}
	return quote, nil
}
