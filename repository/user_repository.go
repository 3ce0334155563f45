package repository

import (
	"database/sql"
	"fmt"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
)

// UserRepository handles read access to caller identities and their
// capability flags
type UserRepository struct {
	DB *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		DB: GetDB(),
	}
}

// GetByID retrieves a user with permissions and assigned sports
func (r *UserRepository) GetByID(userID int) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRow(
		`SELECT id, username, is_admin, can_add, can_edit, can_delete, can_view,
			can_manage_payments, can_generate_reports, can_toggle_activate
		FROM users WHERE id = $1`,
		userID,
	).Scan(
		&user.ID, &user.Username, &user.IsAdmin,
		&user.Permissions.CanAdd, &user.Permissions.CanEdit, &user.Permissions.CanDelete,
		&user.Permissions.CanView, &user.Permissions.CanManagePayments,
		&user.Permissions.CanGenerateReports, &user.Permissions.CanToggleActivate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	rows, err := r.DB.Query("SELECT sport_id FROM user_sports WHERE user_id = $1", user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user sports: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sportID int
		if err := rows.Scan(&sportID); err != nil {
			return nil, fmt.Errorf("failed to scan user sport: %v", err)
		}
		user.SportSupported = append(user.SportSupported, sportID)
	}
	return &user, rows.Err()
}
