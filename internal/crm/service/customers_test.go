package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/store"
)

func TestParsePaging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, size         string
		wantPage, wantSize int
	}{
		{"", "", 1, 10},
		{"0", "5", 1, 5},
		{"-3", "abc", 1, 10},
		{"2", "0", 2, 1},
		{"2", "-7", 2, 1},
		{"3", "101", 3, 100},
		{"3", "5000", 3, 100},
		{"x", "100", 1, 100},
		{"9223372036854775807", "100", maxPage, 100},
		{"99999999999999999999", "10", 1, 10},
	}
	for _, tt := range tests {
		p, s := parsePaging(tt.page, tt.size)
		require.Equal(t, tt.wantPage, p, "page %q", tt.page)
		require.Equal(t, tt.wantSize, s, "pageSize %q", tt.size)
	}
}

func TestCustomerList(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CustomerService{Store: st}

	seedCustomer(t, st, "Sophie", "Jansen", "sophie@example.com")
	seedCustomer(t, st, "Jan", "Sophiesen", "jan@example.com")
	seedCustomer(t, st, "Piet", "Bakker", "piet@sophie-consult.nl")
	seedCustomer(t, st, "Klaas", "de Boer", "klaas@example.com")

	t.Run("q matches case-insensitively", func(t *testing.T) {
		res, err := svc.List(ctx, CustomerQuery{Q: "sophie"})
		require.NoError(t, err)
		require.Equal(t, 3, res.Total)
		for _, c := range res.Items {
			hay := strings.ToLower(c.FirstName + c.LastName + c.Email + c.City)
			require.Contains(t, hay, "sophie")
		}
	})

	t.Run("pageSize clamps", func(t *testing.T) {
		res, err := svc.List(ctx, CustomerQuery{PageSize: "1000"})
		require.NoError(t, err)
		require.Equal(t, 100, res.PageSize)
		require.Len(t, res.Items, 4)

		res, err = svc.List(ctx, CustomerQuery{PageSize: "0"})
		require.NoError(t, err)
		require.Equal(t, 1, res.PageSize)
		require.Len(t, res.Items, 1)
		require.Equal(t, 4, res.Total)
	})

	t.Run("default order is newest first", func(t *testing.T) {
		res, err := svc.List(ctx, CustomerQuery{})
		require.NoError(t, err)
		require.Equal(t, "Klaas", res.Items[0].FirstName)

		res, err = svc.List(ctx, CustomerQuery{Sort: "firstName", Order: "asc"})
		require.NoError(t, err)
		require.Equal(t, "Jan", res.Items[0].FirstName)
	})

	t.Run("sort is whitelisted", func(t *testing.T) {
		_, err := svc.List(ctx, CustomerQuery{Sort: "passwordHash"})
		require.ErrorIs(t, err, ErrInvalidInput)
		_, err = svc.List(ctx, CustomerQuery{Sort: "createdAt; DROP TABLE customers"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("type filter", func(t *testing.T) {
		res, err := svc.List(ctx, CustomerQuery{Type: "organization"})
		require.NoError(t, err)
		require.Zero(t, res.Total)
		require.NotNil(t, res.Items)

		_, err = svc.List(ctx, CustomerQuery{Type: "alien"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("huge page is an empty page", func(t *testing.T) {
		res, err := svc.List(ctx, CustomerQuery{Page: "9223372036854775807"})
		require.NoError(t, err)
		require.Equal(t, maxPage, res.Page)
		require.Equal(t, 4, res.Total)
		require.Empty(t, res.Items)
	})
}

func TestCustomerListFoldsNonASCII(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CustomerService{Store: st}

	seedCustomer(t, st, "Élise", "Öztürk", "elise@example.com")
	seedCustomer(t, st, "Elise", "Ozturk", "ozturk@example.com")

	for _, q := range []string{"Élise", "élise", "ÉLISE", "öztürk", "ÖZTÜRK"} {
		res, err := svc.List(ctx, CustomerQuery{Q: q})
		require.NoError(t, err, q)
		require.Equal(t, 1, res.Total, q)
		require.Equal(t, "elise@example.com", res.Items[0].Email, q)
	}
}

func TestCustomerCreate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CustomerService{Store: st}

	t.Run("defaults", func(t *testing.T) {
		c, err := svc.Create(ctx, CustomerInput{FirstName: " Eva ", LastName: "Smit", Email: "EVA@Example.com"})
		require.NoError(t, err)
		require.Equal(t, domain.CustomerPerson, c.Type)
		require.Equal(t, "Eva", c.FirstName)
		require.Equal(t, "eva@example.com", c.Email)
		require.Equal(t, "NIEUW", c.Status)
		require.True(t, c.CreatedAt.Equal(c.LastActivity))
	})

	t.Run("duplicate email conflicts without a second row", func(t *testing.T) {
		_, err := svc.Create(ctx, CustomerInput{FirstName: "Eva", LastName: "Anders", Email: "eva@example.com"})
		require.ErrorIs(t, err, ErrCustomerExists)

		n, err := st.Customers().CountCustomers(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})

	t.Run("person needs names", func(t *testing.T) {
		_, err := svc.Create(ctx, CustomerInput{Email: "x@example.com"})
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Contains(t, Message(err), "firstName is required")
	})

	t.Run("organisation needs company", func(t *testing.T) {
		_, err := svc.Create(ctx, CustomerInput{Type: "ORGANIZATION", Email: "info@acme.nl"})
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Contains(t, Message(err), "companyName is required")

		c, err := svc.Create(ctx, CustomerInput{Type: "organization", CompanyName: "Acme BV", Email: "info@acme.nl"})
		require.NoError(t, err)
		require.Equal(t, "Acme BV", c.DisplayName())
	})

	t.Run("bad email", func(t *testing.T) {
		_, err := svc.Create(ctx, CustomerInput{FirstName: "A", LastName: "B", Email: "not-an-email"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := svc.Create(ctx, CustomerInput{FirstName: "A", LastName: "B", Email: "ab@example.com", Status: "GEWONNEN"})
		require.ErrorIs(t, err, ErrInvalidInput)

		c, err := svc.Create(ctx, CustomerInput{FirstName: "A", LastName: "B", Email: "ab@example.com", Status: "offerte_gestuurd"})
		require.NoError(t, err)
		require.Equal(t, "OFFERTE_GESTUURD", c.Status)
	})
}

func TestCustomerUpdateAndStatus(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CustomerService{Store: st}

	c := seedCustomer(t, st, "Eva", "Smit", "eva@example.com")
	seedCustomer(t, st, "Tom", "Smit", "tom@example.com")

	city := "Utrecht"
	got, err := svc.Update(ctx, c.ID, CustomerPatch{City: &city})
	require.NoError(t, err)
	require.Equal(t, "Utrecht", got.City)
	require.Equal(t, "Eva", got.FirstName)
	require.False(t, got.LastActivity.Before(c.LastActivity))

	taken := "tom@example.com"
	_, err = svc.Update(ctx, c.ID, CustomerPatch{Email: &taken})
	require.ErrorIs(t, err, ErrCustomerExists)

	empty := ""
	_, err = svc.Update(ctx, c.ID, CustomerPatch{LastName: &empty})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, "missing", CustomerPatch{City: &city})
	require.ErrorIs(t, err, ErrCustomerNotFound)

	moved, err := svc.SetStatus(ctx, c.ID, "onderhandeling")
	require.NoError(t, err)
	require.Equal(t, "ONDERHANDELING", moved.Status)

	_, err = svc.SetStatus(ctx, c.ID, "NOPE")
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.SetStatus(ctx, "missing", "NIEUW")
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerDeleteRemovesFiles(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	disk := newTestDisk(t)
	svc := &CustomerService{Store: st, Files: disk}
	docs := &DocumentService{Store: st, Files: disk}

	c := seedCustomer(t, st, "Eva", "Smit", "eva@example.com")
	doc, err := docs.Upload(ctx, UploadInput{CustomerID: c.ID, FileName: "a.txt", Body: strings.NewReader("hi")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, c.ID))
	require.ErrorIs(t, svc.Delete(ctx, c.ID), ErrCustomerNotFound)

	_, err = os.Stat(doc.Path)
	require.True(t, os.IsNotExist(err))

	_, err = svc.Get(ctx, c.ID)
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CustomerService{Store: st}

	const total = ExportPageSize*2 + 37
	ts := now()
	err := st.WithTx(ctx, func(tx store.Tx) error {
		for i := range total {
			c := domain.Customer{
				ID:           fmt.Sprintf("01HZ%022d", i),
				Type:         domain.CustomerPerson,
				FirstName:    "Klant",
				LastName:     fmt.Sprint(i),
				Email:        fmt.Sprintf("klant%d@example.com", i),
				City:         "Zwolle, Overijssel",
				Status:       "NIEUW",
				CreatedAt:    ts,
				UpdatedAt:    ts,
				LastActivity: ts,
			}
			if err := tx.Customers().CreateCustomer(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	var (
		buf     bytes.Buffer
		flushes int
	)
	rows, err := svc.ExportCSV(ctx, &buf, func() { flushes++ })
	require.NoError(t, err)
	require.Equal(t, total, rows)
	require.Equal(t, 3, flushes)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, ExportHeader, records[0])
	require.Equal(t,
		"id,firstName,infix,lastName,email,phone,street,houseNumber,postcode,city,createdAt",
		strings.Join(records[0], ","),
	)
	require.Len(t, records, total+1)

	seen := map[string]bool{}
	for _, r := range records[1:] {
		require.False(t, seen[r[0]], "duplicate row %s", r[0])
		seen[r[0]] = true
		require.Equal(t, "Zwolle, Overijssel", r[9])
	}

	n, err := st.Customers().CountCustomers(ctx)
	require.NoError(t, err)
	require.Equal(t, n, len(records)-1)
}
