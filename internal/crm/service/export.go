package service

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"time"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/pkg/slogx"
)

// ExportPageSize bounds how many customers the export holds in memory.
const ExportPageSize = 500

// ExportHeader is the fixed CSV header row. Spreadsheets built on the
// export rely on the column order.
var ExportHeader = []string{
	"id", "firstName", "infix", "lastName", "email", "phone",
	"street", "houseNumber", "postcode", "city", "createdAt",
}

func exportRecord(c domain.Customer) []string {
	return []string{
		c.ID, c.FirstName, c.Infix, c.LastName, c.Email, c.Phone,
		c.Street, c.HouseNumber, c.Postcode, c.City, c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ExportCSV streams every customer as CSV, ordered by id. flush (optional)
// runs after each page so the client receives rows while the next page
// loads. It returns the number of data rows written.
func (s *CustomerService) ExportCSV(ctx context.Context, w io.Writer, flush func()) (int, error) {
	log := slogx.FromContext(ctx)

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return 0, err
	}

	rows := 0
	err := eachCustomerPage(ctx, s.Store, ExportPageSize, func(page []domain.Customer) error {
		for _, c := range page {
			if err := cw.Write(exportRecord(c)); err != nil {
				return err
			}
		}
		rows += len(page)

		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
		if flush != nil {
			flush()
		}
		return ctx.Err()
	})
	if err != nil {
		log.Error("customer export aborted", slog.Int("rows", rows), slog.Any("error", err))
		return rows, err
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, err
	}

	log.Info("customers exported", slog.Int("rows", rows))
	return rows, nil
}
