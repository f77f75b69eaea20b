package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/store"
	"github.com/vos-crm/crm/pkg/idx"
	"github.com/vos-crm/crm/pkg/slogx"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerExists   = errors.New("a customer with this e-mail already exists")
)

// Paging bounds for the customer list.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultSort     = "createdAt"

	// maxPage keeps (page-1)*pageSize inside a 32-bit offset.
	maxPage = math.MaxInt32 / MaxPageSize
)

// CustomerQuery carries the raw list query parameters. Normalisation and
// clamping happen in List so every caller gets the same rules.
type CustomerQuery struct {
	Q        string
	Page     string
	PageSize string
	Sort     string
	Order    string
	Status   string
	Type     string
}

type CustomerPage struct {
	Total    int
	Page     int
	PageSize int
	Items    []domain.Customer
}

// CustomerInput is the full set of editable fields.
type CustomerInput struct {
	Type        string `json:"type" validate:"oneof=PERSON ORGANIZATION"`
	FirstName   string `json:"firstName" validate:"required_if=Type PERSON,max=100"`
	Infix       string `json:"infix" validate:"max=30"`
	LastName    string `json:"lastName" validate:"required_if=Type PERSON,max=100"`
	CompanyName string `json:"companyName" validate:"required_if=Type ORGANIZATION,max=200"`
	Email       string `json:"email" validate:"required,email,max=254"`
	Phone       string `json:"phone" validate:"max=50"`
	Street      string `json:"street" validate:"max=200"`
	HouseNumber string `json:"houseNumber" validate:"max=20"`
	Postcode    string `json:"postcode" validate:"max=20"`
	City        string `json:"city" validate:"max=100"`
	Status      string `json:"status" validate:"max=64"`
}

// CustomerPatch changes only the non-nil fields.
type CustomerPatch struct {
	Type        *string `json:"type"`
	FirstName   *string `json:"firstName"`
	Infix       *string `json:"infix"`
	LastName    *string `json:"lastName"`
	CompanyName *string `json:"companyName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Street      *string `json:"street"`
	HouseNumber *string `json:"houseNumber"`
	Postcode    *string `json:"postcode"`
	City        *string `json:"city"`
	Status      *string `json:"status"`
}

// CustomerDetail is a customer with its documents.
type CustomerDetail struct {
	domain.Customer
	Documents []domain.Document
}

type CustomerService struct {
	Store store.Store
	Files FileStore
}

// parsePaging applies the list defaults: page below 1 or unparsable is 1,
// page above maxPage is maxPage, a missing page size is DefaultPageSize and anything else is clamped to
// [1, MaxPageSize].
func parsePaging(page, pageSize string) (int, int) {
	p, err := strconv.Atoi(strings.TrimSpace(page))
	switch {
	case err != nil || p < 1:
		p = 1
	case p > maxPage:
		p = maxPage
	}
	ps, err := strconv.Atoi(strings.TrimSpace(pageSize))
	switch {
	case err != nil:
		ps = DefaultPageSize
	case ps < 1:
		ps = 1
	case ps > MaxPageSize:
		ps = MaxPageSize
	}
	return p, ps
}

// List returns one page of customers.
func (s *CustomerService) List(ctx context.Context, q CustomerQuery) (CustomerPage, error) {
	page, pageSize := parsePaging(q.Page, q.PageSize)

	sort := strings.TrimSpace(q.Sort)
	if sort == "" {
		sort = DefaultSort
	}
	if _, ok := store.CustomerSortColumns[sort]; !ok {
		return CustomerPage{}, invalid("unsupported sort field %q", sort)
	}

	f := store.CustomerFilter{
		Query:  strings.TrimSpace(q.Q),
		Status: strings.TrimSpace(q.Status),
		Sort:   sort,
		Desc:   !strings.EqualFold(strings.TrimSpace(q.Order), "asc"),
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
	if t := strings.TrimSpace(q.Type); t != "" {
		ct, ok := domain.ParseCustomerType(t)
		if !ok {
			return CustomerPage{}, invalid("type must be PERSON or ORGANIZATION")
		}
		f.Type = ct
	}

	items, total, err := s.Store.Customers().ListCustomers(ctx, f)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list customers", slog.Any("error", err))
		return CustomerPage{}, err
	}
	if items == nil {
		items = []domain.Customer{}
	}
	return CustomerPage{Total: total, Page: page, PageSize: pageSize, Items: items}, nil
}

// Get returns the customer with its documents, newest first.
func (s *CustomerService) Get(ctx context.Context, id string) (CustomerDetail, error) {
	c, err := s.Store.Customers().GetCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CustomerDetail{}, ErrCustomerNotFound
		}
		return CustomerDetail{}, err
	}
	docs, err := s.Store.Documents().ListDocuments(ctx, id)
	if err != nil {
		return CustomerDetail{}, err
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return CustomerDetail{Customer: c, Documents: docs}, nil
}

// normalize trims every field, upper-cases the type (default PERSON) and
// lower-cases the e-mail.
func (in *CustomerInput) normalize() {
	for _, p := range []*string{&in.FirstName, &in.Infix, &in.LastName, &in.CompanyName, &in.Phone,
		&in.Street, &in.HouseNumber, &in.Postcode, &in.City} {
		*p = strings.TrimSpace(*p)
	}
	in.Type = strings.ToUpper(strings.TrimSpace(in.Type))
	if in.Type == "" {
		in.Type = string(domain.CustomerPerson)
	}
	in.Email = domain.NormalizeEmail(in.Email)
	in.Status = strings.ToUpper(strings.TrimSpace(in.Status))
	in.Postcode = strings.ToUpper(in.Postcode)
}

func (s *CustomerService) checkStatus(ctx context.Context, st store.Store, status string) error {
	ok, err := stageExists(ctx, st, status)
	if err != nil {
		return err
	}
	if !ok {
		return invalid("unknown pipeline stage %q", status)
	}
	return nil
}

// Create validates and stores a new customer.
func (s *CustomerService) Create(ctx context.Context, in CustomerInput) (domain.Customer, error) {
	log := slogx.FromContext(ctx)

	// 1. Normalise and validate the fields
	in.normalize()
	if err := validate.Struct(in); err != nil {
		return domain.Customer{}, validationError(err)
	}

	ts := now()
	c := domain.Customer{
		ID:           idx.NewAt(ts).String(),
		Type:         domain.CustomerType(in.Type),
		FirstName:    in.FirstName,
		Infix:        in.Infix,
		LastName:     in.LastName,
		CompanyName:  in.CompanyName,
		Email:        in.Email,
		Phone:        in.Phone,
		Street:       in.Street,
		HouseNumber:  in.HouseNumber,
		Postcode:     in.Postcode,
		City:         in.City,
		Status:       in.Status,
		CreatedAt:    ts,
		UpdatedAt:    ts,
		LastActivity: ts,
	}

	// 2. Resolve the stage and insert; the unique index settles duplicates
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if c.Status == "" {
			first, err := firstStage(ctx, tx)
			if err != nil {
				return err
			}
			c.Status = first
		} else if err := s.checkStatus(ctx, tx, c.Status); err != nil {
			return err
		}

		if err := tx.Customers().CreateCustomer(ctx, c); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrCustomerExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCustomerExists) && !errors.Is(err, ErrInvalidInput) {
			log.Error("failed to create customer", slog.Any("error", err))
		}
		return domain.Customer{}, err
	}

	log.Info("customer created", slog.String("customer_id", c.ID), slog.String("type", string(c.Type)))
	return c, nil
}

// Update applies a partial edit.
func (s *CustomerService) Update(ctx context.Context, id string, p CustomerPatch) (domain.Customer, error) {
	log := slogx.FromContext(ctx)

	var out domain.Customer
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Customers().GetCustomerByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		in := CustomerInput{
			Type: string(c.Type), FirstName: c.FirstName, Infix: c.Infix, LastName: c.LastName,
			CompanyName: c.CompanyName, Email: c.Email, Phone: c.Phone, Street: c.Street,
			HouseNumber: c.HouseNumber, Postcode: c.Postcode, City: c.City, Status: c.Status,
		}
		apply := func(dst *string, src *string) {
			if src != nil {
				*dst = *src
			}
		}
		apply(&in.Type, p.Type)
		apply(&in.FirstName, p.FirstName)
		apply(&in.Infix, p.Infix)
		apply(&in.LastName, p.LastName)
		apply(&in.CompanyName, p.CompanyName)
		apply(&in.Email, p.Email)
		apply(&in.Phone, p.Phone)
		apply(&in.Street, p.Street)
		apply(&in.HouseNumber, p.HouseNumber)
		apply(&in.Postcode, p.Postcode)
		apply(&in.City, p.City)
		apply(&in.Status, p.Status)

		in.normalize()
		if err := validate.Struct(in); err != nil {
			return validationError(err)
		}
		if in.Status != c.Status {
			if err := s.checkStatus(ctx, tx, in.Status); err != nil {
				return err
			}
		}

		ts := now()
		c.Type = domain.CustomerType(in.Type)
		c.FirstName, c.Infix, c.LastName = in.FirstName, in.Infix, in.LastName
		c.CompanyName, c.Email, c.Phone = in.CompanyName, in.Email, in.Phone
		c.Street, c.HouseNumber, c.Postcode, c.City = in.Street, in.HouseNumber, in.Postcode, in.City
		c.Status = in.Status
		c.UpdatedAt = ts
		c.LastActivity = ts

		if err := tx.Customers().UpdateCustomer(ctx, c); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrCustomerExists
			}
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return domain.Customer{}, err
	}

	log.Info("customer updated", slog.String("customer_id", id))
	return out, nil
}

// SetStatus moves a customer to another pipeline stage.
func (s *CustomerService) SetStatus(ctx context.Context, id, status string) (domain.Customer, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status == "" {
		return domain.Customer{}, invalid("status is required")
	}

	var out domain.Customer
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Customers().GetCustomerByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}
		if err := s.checkStatus(ctx, tx, status); err != nil {
			return err
		}

		ts := now()
		c.Status = status
		c.UpdatedAt = ts
		c.LastActivity = ts
		if err := tx.Customers().UpdateCustomer(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return domain.Customer{}, err
	}

	slogx.FromContext(ctx).Info("customer moved",
		slog.String("customer_id", id),
		slog.String("status", status),
	)
	return out, nil
}

// Delete removes a customer. Documents and notes go with it; document files
// are removed afterwards on a best-effort basis.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	var docs []domain.Document
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if docs, err = tx.Documents().ListDocuments(ctx, id); err != nil {
			return err
		}
		if err := tx.Customers().DeleteCustomer(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Files != nil {
		for _, d := range docs {
			if err := s.Files.Remove(d.Path); err != nil {
				log.Warn("failed to remove document file", slog.String("document_id", d.ID), slog.Any("error", err))
			}
		}
	}

	log.Info("customer deleted", slog.String("customer_id", id), slog.Int("documents", len(docs)))
	return nil
}
