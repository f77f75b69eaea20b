package sqldb

import (
	"context"
	"database/sql"

	"github.com/vos-crm/crm/internal/crm/domain"
)

type usersRepo struct {
	q *Queries
}

const userColumns = `id, email, name, role, password_hash, customer_id, created_at, updated_at`

func scanUser(s scanner) (domain.User, error) {
	var (
		u          domain.User
		role       string
		customerID sql.NullString
	)
	if err := s.Scan(&u.ID, &u.Email, &u.Name, &role, &u.PasswordHash, &customerID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	u.CustomerID = mapNullString(customerID)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.q.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.q.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, string(u.Role), u.PasswordHash, mapStringNull(u.CustomerID),
		u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return err
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	return r.q.execOne(ctx,
		`UPDATE users SET name = ?, role = ?, password_hash = ?, customer_id = ?, updated_at = ? WHERE id = ?`,
		u.Name, string(u.Role), u.PasswordHash, mapStringNull(u.CustomerID), u.UpdatedAt.UTC(), u.ID,
	)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.query(ctx, `SELECT `+userColumns+` FROM users ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
