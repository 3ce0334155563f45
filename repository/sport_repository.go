package repository

import (
	"database/sql"
	"fmt"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
)

// SportRepository handles read access to the sport catalog
type SportRepository struct {
	DB *sql.DB
}

// NewSportRepository creates a new SportRepository
func NewSportRepository() *SportRepository {
	return &SportRepository{
		DB: GetDB(),
	}
}

// LoadSports retrieves every sport with its fee quotes
func (r *SportRepository) LoadSports() ([]models.Sport, error) {
	rows, err := r.DB.Query("SELECT id, name FROM sports ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get sports: %v", err)
	}
	defer rows.Close()

	byID := make(map[int]*models.Sport)
	var order []int
	for rows.Next() {
		var sport models.Sport
		if err := rows.Scan(&sport.ID, &sport.Name); err != nil {
			return nil, fmt.Errorf("failed to scan sport: %v", err)
		}
		byID[sport.ID] = &sport
		order = append(order, sport.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sports: %v", err)
	}

	quoteRows, err := r.DB.Query(
		"SELECT sport_id, id, name, description, price FROM quotes WHERE sport_id IS NOT NULL ORDER BY sport_id, price",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotes: %v", err)
	}
	defer quoteRows.Close()

	for quoteRows.Next() {
		var sportID int
		var quote models.Quote
		var description sql.NullString
		if err := quoteRows.Scan(&sportID, &quote.ID, &quote.Name, &description, &quote.Price); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %v", err)
		}
		quote.Description = description.String
		if sport, ok := byID[sportID]; ok {
			sport.Quotes = append(sport.Quotes, quote)
		}
	}
	if err := quoteRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quotes: %v", err)
	}

	sports := make([]models.Sport, 0, len(order))
	for _, id := range order {
		sports = append(sports, *byID[id])
	}
	return sports, nil
}

// LoadSocietaryQuotes retrieves the club-membership-only fee tiers, which are
// not tied to any sport.
func (r *SportRepository) LoadSocietaryQuotes() ([]models.Quote, error) {
	rows, err := r.DB.Query(
		"SELECT id, name, description, price FROM quotes WHERE sport_id IS NULL ORDER BY price",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get societary quotes: %v", err)
	}
	defer rows.Close()

	var quotes []models.Quote
	for rows.Next() {
		var quote models.Quote
		var description sql.NullString
		if err := rows.Scan(&quote.ID, &quote.Name, &description, &quote.Price); err != nil {
			return nil, fmt.Errorf("failed to scan societary quote: %v", err)
		}
		quote.Description = description.String
		quotes = append(quotes, quote)
	}
	return quotes, rows.Err()
}

// GetQuote retrieves a single fee quote by id, or nil when none exists
func (r *SportRepository) GetQuote(quoteID int) (*models.Quote, error) {
	var quote models.Quote
	var description sql.NullString
	err := r.DB.QueryRow(
		"SELECT id, name, description, price FROM quotes WHERE id = $1", quoteID,
	).Scan(&quote.ID, &quote.Name, &description, &quote.Price)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quote: %v", err)
	}
	quote.Description = description.String
	return &quote, nil
}
