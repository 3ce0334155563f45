// models/models.go
package models

import "time"

// FamilyGroupStatus describes a member's role inside a family group
type FamilyGroupStatus string

const (
	FamilyGroupNone   FamilyGroupStatus = "NONE"
	FamilyGroupHead   FamilyGroupStatus = "HEAD"
	FamilyGroupMember FamilyGroupStatus = "MEMBER"
)

// Quote represents a named price tier for a sport subscription
type Quote struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// Sport represents a sport offered by the club with its available quotes
type Sport struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Quotes []Quote `json:"quotes"`
}

// QuoteByID returns the catalog quote with the given id, if any
func (s *Sport) QuoteByID(quoteID int) *Quote {
	for i := range s.Quotes {
		if s.Quotes[i].ID == quoteID {
			return &s.Quotes[i]
		}
	}
	return nil
}

// SportSelection is one sport subscription held by a member. At most one
// selection per member carries IsPrincipal.
type SportSelection struct {
	SportID     int  `json:"sportId"`
	QuoteID     *int `json:"quoteId,omitempty"`
	IsPrincipal bool `json:"isPrincipal"`
}

// Member represents a club membership record
type Member struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	SecondName        string            `json:"second_name"`
	DNI               string            `json:"dni"`
	Birthdate         time.Time         `json:"birthdate"`
	Phone             string            `json:"phone,omitempty"`
	Address           string            `json:"address,omitempty"`
	Email             string            `json:"email,omitempty"`
	Active            bool              `json:"active"`
	SocietaryQuote    *Quote            `json:"societaryQuote,omitempty"`
	Sports            []SportSelection  `json:"sports"`
	FamilyGroupStatus FamilyGroupStatus `json:"familyGroupStatus"`
	FamilyHeadID      *int              `json:"familyHeadId,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

// SelectionBySport returns the member's selection for the given sport, if any
func (m *Member) SelectionBySport(sportID int) *SportSelection {
	for i := range m.Sports {
		if m.Sports[i].SportID == sportID {
			return &m.Sports[i]
		}
	}
	return nil
}

// PrincipalSelection returns the member's principal selection, if any
func (m *Member) PrincipalSelection() *SportSelection {
	for i := range m.Sports {
		if m.Sports[i].IsPrincipal {
			return &m.Sports[i]
		}
	}
	return nil
}

// FamilyGroup is the resolved family relation for one member
type FamilyGroup struct {
	Head    *Member  `json:"familyHead"`
	Members []Member `json:"familyMembers"`
}

// CreateMemberRequest request model
type CreateMemberRequest struct {
	Name              string `json:"name" binding:"required"`
	SecondName        string `json:"second_name" binding:"required"`
	DNI               string `json:"dni" binding:"required"`
	Birthdate         string `json:"birthdate" binding:"required"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	Email             string `json:"email"`
	SocietaryQuoteID  *int   `json:"societaryQuoteId"`
	FamilyGroupStatus string `json:"familyGroupStatus"`
	FamilyHeadID      *int   `json:"familyHeadId"`
}

// UpdateMemberRequest request model
type UpdateMemberRequest struct {
	ID         int    `json:"id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	SecondName string `json:"second_name" binding:"required"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Email      string `json:"email"`
}

// SelectSportRequest request model
type SelectSportRequest struct {
	MemberID int  `json:"memberId" binding:"required"`
	SportID  int  `json:"sportId" binding:"required"`
	Selected bool `json:"selected"`
}

// SetPrincipalSportRequest request model
type SetPrincipalSportRequest struct {
	MemberID int `json:"memberId" binding:"required"`
	SportID  int `json:"sportId" binding:"required"`
}

// SetQuoteRequest request model
type SetQuoteRequest struct {
	MemberID int `json:"memberId" binding:"required"`
	SportID  int `json:"sportId" binding:"required"`
	QuoteID  int `json:"quoteId" binding:"required"`
}

// ToggleActiveRequest request model
type ToggleActiveRequest struct {
	MemberID int  `json:"memberId" binding:"required"`
	Active   bool `json:"active"`
}
