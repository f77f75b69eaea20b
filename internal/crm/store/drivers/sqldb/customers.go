package sqldb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/store"
)

type customersRepo struct {
	q *Queries
}

const customerColumns = `id, type, first_name, infix, last_name, company_name, email, phone,
	street, house_number, postcode, city, status, created_at, updated_at, last_activity`

// Columns matched by the free-text query.
var customerSearchColumns = []string{"first_name", "infix", "last_name", "company_name", "email", "city"}

func scanCustomer(s scanner) (domain.Customer, error) {
	var (
		c     domain.Customer
		ctype string
	)
	err := s.Scan(&c.ID, &ctype, &c.FirstName, &c.Infix, &c.LastName, &c.CompanyName, &c.Email, &c.Phone,
		&c.Street, &c.HouseNumber, &c.Postcode, &c.City, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.LastActivity)
	if err != nil {
		return domain.Customer{}, err
	}
	c.Type = domain.CustomerType(ctype)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	c.LastActivity = c.LastActivity.UTC()
	return c, nil
}

func (r *customersRepo) collect(ctx context.Context, query string, args ...any) ([]domain.Customer, error) {
	rows, err := r.q.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *customersRepo) CreateCustomer(ctx context.Context, c domain.Customer) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO customers (`+customerColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, string(c.Type), c.FirstName, c.Infix, c.LastName, c.CompanyName, c.Email, c.Phone,
		c.Street, c.HouseNumber, c.Postcode, c.City, c.Status,
		c.CreatedAt.UTC(), c.UpdatedAt.UTC(), c.LastActivity.UTC(),
	)
	return err
}

func (r *customersRepo) GetCustomerByID(ctx context.Context, id string) (domain.Customer, error) {
	c, err := scanCustomer(r.q.queryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = ?`, id))
	if err != nil {
		return domain.Customer{}, mapNotFound(err)
	}
	return c, nil
}

func (r *customersRepo) UpdateCustomer(ctx context.Context, c domain.Customer) error {
	return r.q.execOne(ctx,
		`UPDATE customers SET type = ?, first_name = ?, infix = ?, last_name = ?, company_name = ?,
			email = ?, phone = ?, street = ?, house_number = ?, postcode = ?, city = ?, status = ?,
			updated_at = ?, last_activity = ?
		WHERE id = ?`,
		string(c.Type), c.FirstName, c.Infix, c.LastName, c.CompanyName,
		c.Email, c.Phone, c.Street, c.HouseNumber, c.Postcode, c.City, c.Status,
		c.UpdatedAt.UTC(), c.LastActivity.UTC(), c.ID,
	)
}

func (r *customersRepo) DeleteCustomer(ctx context.Context, id string) error {
	return r.q.execOne(ctx, `DELETE FROM customers WHERE id = ?`, id)
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *customersRepo) ListCustomers(ctx context.Context, f store.CustomerFilter) ([]domain.Customer, int, error) {
	col, ok := store.CustomerSortColumns[f.Sort]
	if !ok {
		return nil, 0, fmt.Errorf("sqldb: unsupported sort %q", f.Sort)
	}

	var (
		where []string
		args  []any
	)
	if q := strings.TrimSpace(f.Query); q != "" {
		like := "%" + escapeLike(strings.ToLower(q)) + "%"
		ors := make([]string, len(customerSearchColumns))
		for i, c := range customerSearchColumns {
			ors[i] = r.q.d.Fold(c) + ` LIKE ? ESCAPE '\'`
			args = append(args, like)
		}
		where = append(where, "("+strings.Join(ors, " OR ")+")")
	}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}
	if f.Type != "" {
		where = append(where, "type = ?")
		args = append(args, string(f.Type))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.q.queryRow(ctx, `SELECT COUNT(*) FROM customers`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dir := "ASC"
	if f.Desc {
		dir = "DESC"
	}
	page, err := r.collect(ctx,
		`SELECT `+customerColumns+` FROM customers`+clause+
			` ORDER BY `+col+` `+dir+`, id `+dir+` LIMIT ? OFFSET ?`,
		append(args, f.Limit, f.Offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	return page, total, nil
}

func (r *customersRepo) ListCustomersAfter(ctx context.Context, afterID string, limit int) ([]domain.Customer, error) {
	return r.collect(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id > ? ORDER BY id ASC LIMIT ?`,
		afterID, limit,
	)
}

func (r *customersRepo) CountCustomers(ctx context.Context) (int, error) {
	var n int
	err := r.q.queryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n)
	return n, err
}

func (r *customersRepo) CountCustomersByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.q.queryRow(ctx, `SELECT COUNT(*) FROM customers WHERE status = ?`, status).Scan(&n)
	return n, err
}

func (r *customersRepo) TouchCustomer(ctx context.Context, id string, at time.Time) error {
	return r.q.execOne(ctx, `UPDATE customers SET last_activity = ? WHERE id = ?`, at.UTC(), id)
}
