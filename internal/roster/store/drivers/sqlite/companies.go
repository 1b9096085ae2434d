package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rosterhq/roster/internal/roster/domain"
)

type companiesRepo struct {
	q querier
}

func (r *companiesRepo) GetCompanyByID(ctx context.Context, id string) (domain.Company, error) {
	var (
		c         domain.Company
		logo      sql.NullString
		createdAt int64
		updatedAt int64
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, name, logo_url, created_at, updated_at
		FROM companies WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &logo, &createdAt, &updatedAt)
	if err != nil {
		return domain.Company{}, mapNotFound(err)
	}
	c.LogoURL = mapNullString(logo)
	c.CreatedAt = mapUnix(createdAt)
	c.UpdatedAt = mapUnix(updatedAt)
	return c, nil
}

func (r *companiesRepo) CreateCompany(ctx context.Context, c domain.Company) error {
	now := time.Now().Unix()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO companies (id, name, logo_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, mapStringNull(c.LogoURL), now, now)
	return mapConstraint(err)
}

func (r *companiesRepo) ListCompaniesByUser(
	ctx context.Context,
	userID string,
	limit, offset int,
) ([]domain.CompanyWithRole, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT c.id, c.name, c.logo_url, c.created_at, c.updated_at, m.role
		FROM memberships m
		JOIN companies c ON c.id = m.company_id
		WHERE m.user_id = ?
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CompanyWithRole
	for rows.Next() {
		var (
			c         domain.CompanyWithRole
			logo      sql.NullString
			createdAt int64
			updatedAt int64
		)
		if err := rows.Scan(&c.ID, &c.Name, &logo, &createdAt, &updatedAt, &c.UserRole); err != nil {
			return nil, err
		}
		c.LogoURL = mapNullString(logo)
		c.CreatedAt = mapUnix(createdAt)
		c.UpdatedAt = mapUnix(updatedAt)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *companiesRepo) CountCompaniesByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM memberships WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}
