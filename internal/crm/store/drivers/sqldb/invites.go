package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/vos-crm/crm/internal/crm/domain"
)

type invitesRepo struct {
	q *Queries
}

const inviteColumns = `id, email, role, customer_id, token_hash, expires_at, used_at, created_by, created_at`

func scanInvite(s scanner) (domain.Invite, error) {
	var (
		inv        domain.Invite
		role       string
		customerID sql.NullString
		createdBy  sql.NullString
		usedAt     sql.NullTime
	)
	if err := s.Scan(&inv.ID, &inv.Email, &role, &customerID, &inv.TokenHash, &inv.ExpiresAt, &usedAt, &createdBy, &inv.CreatedAt); err != nil {
		return domain.Invite{}, err
	}
	inv.Role = domain.Role(role)
	inv.CustomerID = mapNullString(customerID)
	inv.CreatedBy = mapNullString(createdBy)
	inv.UsedAt = mapNullTimePtr(usedAt)
	inv.ExpiresAt = inv.ExpiresAt.UTC()
	inv.CreatedAt = inv.CreatedAt.UTC()
	return inv, nil
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO user_invites (`+inviteColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, string(inv.Role), mapStringNull(inv.CustomerID), inv.TokenHash,
		inv.ExpiresAt.UTC(), mapOptionalTime(inv.UsedAt), mapStringNull(inv.CreatedBy), inv.CreatedAt.UTC(),
	)
	return err
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	inv, err := scanInvite(r.q.queryRow(ctx, `SELECT `+inviteColumns+` FROM user_invites WHERE token_hash = ?`, hash))
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) MarkInviteUsed(ctx context.Context, inviteID string, at time.Time) error {
	return r.q.execOne(ctx,
		`UPDATE user_invites SET used_at = ? WHERE id = ? AND used_at IS NULL`,
		at.UTC(), inviteID,
	)
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.q.exec(ctx, `DELETE FROM user_invites WHERE expires_at < ?`, before.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
