package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rosterhq/roster/internal/roster/domain"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, email, name, password_hash, active_company_id, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u             domain.User
		activeCompany sql.NullString
		createdAt     int64
		updatedAt     int64
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &activeCompany, &createdAt, &updatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.ActiveCompanyID = mapNullString(activeCompany)
	u.CreatedAt = mapUnix(createdAt)
	u.UpdatedAt = mapUnix(updatedAt)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) GetUserProfile(ctx context.Context, id string) (domain.Profile, error) {
	user, err := r.GetUserByID(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}

	rows, err := r.q.QueryContext(ctx, `
		SELECT m.id, m.user_id, m.company_id, m.role, m.created_at, m.updated_at,
		       c.id, c.name, c.logo_url
		FROM memberships m
		JOIN companies c ON c.id = m.company_id
		WHERE m.user_id = ?
		ORDER BY m.created_at DESC, m.id DESC`, id)
	if err != nil {
		return domain.Profile{}, err
	}
	defer rows.Close()

	profile := domain.Profile{User: user}
	for rows.Next() {
		var (
			m         domain.MembershipWithCompany
			logo      sql.NullString
			createdAt int64
			updatedAt int64
		)
		err := rows.Scan(&m.ID, &m.UserID, &m.CompanyID, &m.Role, &createdAt, &updatedAt,
			&m.Company.ID, &m.Company.Name, &logo)
		if err != nil {
			return domain.Profile{}, err
		}
		m.Company.LogoURL = mapNullString(logo)
		m.CreatedAt = mapUnix(createdAt)
		m.UpdatedAt = mapUnix(updatedAt)
		profile.Memberships = append(profile.Memberships, m)
	}
	return profile, rows.Err()
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().Unix()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, email, name, password_hash, active_company_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.PasswordHash, mapStringNull(u.ActiveCompanyID), now, now)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateActiveCompany(ctx context.Context, userID, companyID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET active_company_id = ?, updated_at = ? WHERE id = ?`,
		mapStringNull(companyID), time.Now().Unix(), userID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
