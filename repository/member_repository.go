// repository/member_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
)

// MemberRepository handles database operations for membership records
type MemberRepository struct {
	DB *sql.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{
		DB: GetDB(),
	}
}

const memberColumns = `
	m.id, m.name, m.second_name, m.dni, m.birthdate, m.phone, m.address, m.email,
	m.active, m.family_group_status, m.family_head_id, m.created_at,
	q.id, q.name, q.description, q.price
`

const memberSelect = `
	SELECT ` + memberColumns + `
	FROM members m
	LEFT JOIN quotes q ON q.id = m.societary_quote_id
`

func scanMember(scanner interface{ Scan(...interface{}) error }) (*models.Member, error) {
	var member models.Member
	var phone, address, email sql.NullString
	var familyHeadID sql.NullInt64
	var quoteID sql.NullInt64
	var quoteName, quoteDescription sql.NullString
	var quotePrice sql.NullFloat64

	err := scanner.Scan(
		&member.ID, &member.Name, &member.SecondName, &member.DNI, &member.Birthdate,
		&phone, &address, &email, &member.Active, &member.FamilyGroupStatus,
		&familyHeadID, &member.CreatedAt,
		&quoteID, &quoteName, &quoteDescription, &quotePrice,
	)
	if err != nil {
		return nil, err
	}

	member.Phone = phone.String
	member.Address = address.String
	member.Email = email.String
	if familyHeadID.Valid {
		id := int(familyHeadID.Int64)
		member.FamilyHeadID = &id
	}
	if quoteID.Valid {
		member.SocietaryQuote = &models.Quote{
			ID:          int(quoteID.Int64),
			Name:        quoteName.String,
			Description: quoteDescription.String,
			Price:       quotePrice.Float64,
		}
	}
	return &member, nil
}

// loadSelections fills the sport selections for each member in the map
func (r *MemberRepository) loadSelections(members map[int]*models.Member) error {
	rows, err := r.DB.Query(
		"SELECT member_id, sport_id, quote_id, is_principal FROM member_sports ORDER BY member_id, sport_id",
	)
	if err != nil {
		return fmt.Errorf("failed to get sport selections: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var memberID, sportID int
		var quoteID sql.NullInt64
		var isPrincipal bool
		if err := rows.Scan(&memberID, &sportID, &quoteID, &isPrincipal); err != nil {
			return fmt.Errorf("failed to scan sport selection: %v", err)
		}
		member, ok := members[memberID]
		if !ok {
			continue
		}
		selection := models.SportSelection{SportID: sportID, IsPrincipal: isPrincipal}
		if quoteID.Valid {
			id := int(quoteID.Int64)
			selection.QuoteID = &id
		}
		member.Sports = append(member.Sports, selection)
	}
	return rows.Err()
}

// LoadAll retrieves every membership record with its sport selections
func (r *MemberRepository) LoadAll() ([]models.Member, error) {
	rows, err := r.DB.Query(memberSelect + " ORDER BY m.second_name, m.name")
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %v", err)
	}
	defer rows.Close()

	byID := make(map[int]*models.Member)
	var order []int
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %v", err)
		}
		byID[member.ID] = member
		order = append(order, member.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read members: %v", err)
	}

	if err := r.loadSelections(byID); err != nil {
		return nil, err
	}

	members := make([]models.Member, 0, len(order))
	for _, id := range order {
		members = append(members, *byID[id])
	}
	return members, nil
}

// GetByID retrieves a single membership record with its sport selections
func (r *MemberRepository) GetByID(memberID int) (*models.Member, error) {
	member, err := scanMember(r.DB.QueryRow(memberSelect+" WHERE m.id = $1", memberID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("member not found")
		}
		return nil, fmt.Errorf("failed to get member: %v", err)
	}

	rows, err := r.DB.Query(
		"SELECT sport_id, quote_id, is_principal FROM member_sports WHERE member_id = $1 ORDER BY sport_id",
		member.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get sport selections: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sportID int
		var quoteID sql.NullInt64
		var isPrincipal bool
		if err := rows.Scan(&sportID, &quoteID, &isPrincipal); err != nil {
			return nil, fmt.Errorf("failed to scan sport selection: %v", err)
		}
		selection := models.SportSelection{SportID: sportID, IsPrincipal: isPrincipal}
		if quoteID.Valid {
			id := int(quoteID.Int64)
			selection.QuoteID = &id
		}
		member.Sports = append(member.Sports, selection)
	}
	return member, rows.Err()
}

// GetByDNI retrieves a member by document number, or nil when none exists
func (r *MemberRepository) GetByDNI(dni string) (*models.Member, error) {
	member, err := scanMember(r.DB.QueryRow(memberSelect+" WHERE m.dni = $1", dni))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member by dni: %v", err)
	}
	return member, nil
}

// Create inserts a new membership record and its sport selections
func (r *MemberRepository) Create(member *models.Member) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO members (name, second_name, dni, birthdate, phone, address, email,
			active, societary_quote_id, family_group_status, family_head_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		member.Name, member.SecondName, member.DNI, member.Birthdate,
		nullString(member.Phone), nullString(member.Address), nullString(member.Email),
		member.Active, societaryQuoteID(member), member.FamilyGroupStatus, member.FamilyHeadID,
	).Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert member: %v", err)
	}

	if err := insertSelections(tx, member); err != nil {
		return err
	}

	return tx.Commit()
}

// Save updates a membership record and replaces its sport selections
func (r *MemberRepository) Save(member *models.Member) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`UPDATE members SET name = $1, second_name = $2, phone = $3, address = $4,
			email = $5, active = $6, societary_quote_id = $7,
			family_group_status = $8, family_head_id = $9
		WHERE id = $10`,
		member.Name, member.SecondName,
		nullString(member.Phone), nullString(member.Address), nullString(member.Email),
		member.Active, societaryQuoteID(member), member.FamilyGroupStatus, member.FamilyHeadID,
		member.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %v", err)
	}

	_, err = tx.Exec("DELETE FROM member_sports WHERE member_id = $1", member.ID)
	if err != nil {
		return fmt.Errorf("failed to clear sport selections: %v", err)
	}

	if err := insertSelections(tx, member); err != nil {
		return err
	}

	return tx.Commit()
}

// SetActive flips the soft-delete flag on a membership record
func (r *MemberRepository) SetActive(memberID int, active bool) error {
	_, err := r.DB.Exec("UPDATE members SET active = $1 WHERE id = $2", active, memberID)
	if err != nil {
		return fmt.Errorf("failed to update member active flag: %v", err)
	}
	return nil
}

func insertSelections(tx *sql.Tx, member *models.Member) error {
	for _, selection := range member.Sports {
		_, err := tx.Exec(
			"INSERT INTO member_sports (member_id, sport_id, quote_id, is_principal) VALUES ($1, $2, $3, $4)",
			member.ID, selection.SportID, selection.QuoteID, selection.IsPrincipal,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sport selection: %v", err)
		}
	}
	return nil
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func societaryQuoteID(member *models.Member) *int {
	if member.SocietaryQuote == nil {
		return nil
	}
	return &member.SocietaryQuote.ID
}
