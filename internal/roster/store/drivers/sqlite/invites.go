package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rosterhq/roster/internal/roster/domain"
)

type invitesRepo struct {
	q querier
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	now := time.Now().Unix()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO invites (token, email, company_id, role, used, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, ?, ?)`,
		inv.Token, inv.Email, inv.CompanyID, inv.Role, inv.ExpiresAt.Unix(), now, now)
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByToken(ctx context.Context, token string) (domain.InviteWithCompany, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT i.token, i.email, i.company_id, i.role, i.used, i.used_at,
		       i.expires_at, i.created_at, i.updated_at,
		       c.id, c.name, c.logo_url
		FROM invites i
		JOIN companies c ON c.id = i.company_id
		WHERE i.token = ?`, token)
	return scanInvite(row)
}

func scanInvite(row *sql.Row) (domain.InviteWithCompany, error) {
	var (
		inv       domain.InviteWithCompany
		usedAt    sql.NullInt64
		expiresAt int64
		createdAt int64
		updatedAt int64
		logo      sql.NullString
	)
	err := row.Scan(&inv.Token, &inv.Email, &inv.CompanyID, &inv.Role, &inv.Used, &usedAt,
		&expiresAt, &createdAt, &updatedAt,
		&inv.Company.ID, &inv.Company.Name, &logo)
	if err != nil {
		return domain.InviteWithCompany{}, mapNotFound(err)
	}
	inv.UsedAt = mapNullUnixPtr(usedAt)
	inv.ExpiresAt = mapUnix(expiresAt)
	inv.CreatedAt = mapUnix(createdAt)
	inv.UpdatedAt = mapUnix(updatedAt)
	inv.Company.LogoURL = mapNullString(logo)
	return inv, nil
}

func (r *invitesRepo) HasActiveInvite(
	ctx context.Context,
	email, companyID string,
	now time.Time,
) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM invites
		WHERE email = ? AND company_id = ? AND used = 0 AND expires_at > ?`,
		email, companyID, now.Unix()).Scan(&n)
	return n > 0, err
}

func (r *invitesRepo) MarkInviteUsed(ctx context.Context, token string) error {
	now := time.Now().Unix()
	res, err := r.q.ExecContext(ctx, `
		UPDATE invites SET used = 1, used_at = ?, updated_at = ? WHERE token = ?`,
		now, now, token)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *invitesRepo) DeleteInvite(ctx context.Context, token string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM invites WHERE token = ?`, token)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *invitesRepo) ListInvitesByCompany(
	ctx context.Context,
	companyID string,
	limit, offset int,
) ([]domain.InviteWithCompany, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT i.token, i.email, i.company_id, i.role, i.used, i.used_at,
		       i.expires_at, i.created_at, i.updated_at,
		       c.id, c.name, c.logo_url
		FROM invites i
		JOIN companies c ON c.id = i.company_id
		WHERE i.company_id = ?
		ORDER BY i.created_at DESC, i.rowid DESC
		LIMIT ? OFFSET ?`, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.InviteWithCompany
	for rows.Next() {
		var (
			inv       domain.InviteWithCompany
			usedAt    sql.NullInt64
			expiresAt int64
			createdAt int64
			updatedAt int64
			logo      sql.NullString
		)
		err := rows.Scan(&inv.Token, &inv.Email, &inv.CompanyID, &inv.Role, &inv.Used, &usedAt,
			&expiresAt, &createdAt, &updatedAt,
			&inv.Company.ID, &inv.Company.Name, &logo)
		if err != nil {
			return nil, err
		}
		inv.UsedAt = mapNullUnixPtr(usedAt)
		inv.ExpiresAt = mapUnix(expiresAt)
		inv.CreatedAt = mapUnix(createdAt)
		inv.UpdatedAt = mapUnix(updatedAt)
		inv.Company.LogoURL = mapNullString(logo)
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitesRepo) CountInvitesByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invites WHERE company_id = ?`, companyID).Scan(&n)
	return n, err
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM invites WHERE used = 0 AND expires_at < ?`, time.Now().Unix())
	return err
}
