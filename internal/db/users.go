package db

import (
	"context"
	"fmt"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

func (db *Database) CreateUser(ctx context.Context, email, passwordHash, role string) (*models.User, error) {
	var user models.User

	err := db.Pool.QueryRow(ctx,
		"INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id, email, role, created_at",
		email, passwordHash, role,
	).Scan(&user.ID, &user.Email, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (db *Database) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := db.Pool.QueryRow(ctx,
		"SELECT id, email, password_hash, role, created_at FROM users WHERE email = $1",
		email,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (db *Database) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User

	err := db.Pool.QueryRow(ctx,
		"SELECT id, email, role, created_at FROM users WHERE id = $1",
		id,
	).Scan(&user.ID, &user.Email, &user.Role, &user.CreatedAt)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// SaveCitizenProfile upserts the contact profile for a citizen account.
func (db *Database) SaveCitizenProfile(ctx context.Context, userID int, phoneNumber, email string) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO citizens (user_id, phone_number, email, updated_at)
		 VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id) DO UPDATE SET
			phone_number = EXCLUDED.phone_number,
			email = EXCLUDED.email,
			updated_at = CURRENT_TIMESTAMP`,
		userID, phoneNumber, email,
	)
	if err != nil {
		return fmt.Errorf("failed to save citizen profile: %w", err)
	}
	return nil
}

// GetCitizenProfile returns nil without error when the citizen has not saved a
// profile yet; submissions then carry empty contact fields.
func (db *Database) GetCitizenProfile(ctx context.Context, userID int) (*models.CitizenProfile, error) {
	var profile models.CitizenProfile

	err := db.Pool.QueryRow(ctx,
		"SELECT user_id, phone_number, email, updated_at FROM citizens WHERE user_id = $1",
		userID,
	).Scan(&profile.UserID, &profile.PhoneNumber, &profile.Email, &profile.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}
