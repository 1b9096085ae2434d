package sqlite

import (
	"context"
	"time"

	"github.com/rosterhq/roster/internal/roster/domain"
)

type membershipsRepo struct {
	q querier
}

const membershipColumns = `id, user_id, company_id, role, created_at, updated_at`

func (r *membershipsRepo) GetMembershipByID(ctx context.Context, id string) (domain.Membership, error) {
	var (
		m         domain.Membership
		createdAt int64
		updatedAt int64
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE id = ?`, id).
		Scan(&m.ID, &m.UserID, &m.CompanyID, &m.Role, &createdAt, &updatedAt)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	m.CreatedAt = mapUnix(createdAt)
	m.UpdatedAt = mapUnix(updatedAt)
	return m, nil
}

func (r *membershipsRepo) GetMembershipByUserAndCompany(
	ctx context.Context,
	userID, companyID string,
) (domain.Membership, error) {
	var (
		m         domain.Membership
		createdAt int64
		updatedAt int64
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE user_id = ? AND company_id = ?`,
		userID, companyID).
		Scan(&m.ID, &m.UserID, &m.CompanyID, &m.Role, &createdAt, &updatedAt)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	m.CreatedAt = mapUnix(createdAt)
	m.UpdatedAt = mapUnix(updatedAt)
	return m, nil
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	now := time.Now().Unix()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO memberships (id, user_id, company_id, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.CompanyID, m.Role, now, now)
	return mapConstraint(err)
}

func (r *membershipsRepo) UpdateMembershipRole(ctx context.Context, id string, role domain.Role) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE memberships SET role = ?, updated_at = ? WHERE id = ?`,
		role, time.Now().Unix(), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *membershipsRepo) DeleteMembership(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM memberships WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *membershipsRepo) CountOwners(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM memberships WHERE company_id = ? AND role = ?`,
		companyID, domain.RoleOwner).Scan(&n)
	return n, err
}

func (r *membershipsRepo) ListMembersByCompany(
	ctx context.Context,
	companyID string,
	limit, offset int,
) ([]domain.Member, error) {
	// Authority order first (OWNER, ADMIN, MEMBER), then join time.
	rows, err := r.q.QueryContext(ctx, `
		SELECT m.id, m.user_id, m.company_id, m.role, m.created_at, m.updated_at,
		       u.id, u.email, u.name
		FROM memberships m
		JOIN users u ON u.id = m.user_id
		WHERE m.company_id = ?
		ORDER BY CASE m.role WHEN 'OWNER' THEN 0 WHEN 'ADMIN' THEN 1 ELSE 2 END,
		         m.created_at ASC, m.id ASC
		LIMIT ? OFFSET ?`, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		var (
			m         domain.Member
			createdAt int64
			updatedAt int64
		)
		err := rows.Scan(&m.ID, &m.UserID, &m.CompanyID, &m.Role, &createdAt, &updatedAt,
			&m.User.ID, &m.User.Email, &m.User.Name)
		if err != nil {
			return nil, err
		}
		m.CreatedAt = mapUnix(createdAt)
		m.UpdatedAt = mapUnix(updatedAt)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *membershipsRepo) CountMembersByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM memberships WHERE company_id = ?`, companyID).Scan(&n)
	return n, err
}
