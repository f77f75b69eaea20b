package domain

import (
	"strings"
	"time"
)

type CustomerType string

const (
	CustomerPerson       CustomerType = "PERSON"
	CustomerOrganization CustomerType = "ORGANIZATION"
)

func ParseCustomerType(s string) (CustomerType, bool) {
	switch t := CustomerType(strings.ToUpper(strings.TrimSpace(s))); t {
	case CustomerPerson, CustomerOrganization:
		return t, true
	}
	return "", false
}

// Customer is a person or organisation tracked through the sales pipeline.
// Optional text fields are empty strings, never NULL.
type Customer struct {
	ID           string
	Type         CustomerType
	FirstName    string
	Infix        string // Dutch name particle, e.g. "van", "de"
	LastName     string
	CompanyName  string
	Email        string
	Phone        string
	Street       string
	HouseNumber  string
	Postcode     string
	City         string
	Status       string // pipeline stage name
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastActivity time.Time
}

// DisplayName is "first infix last" for persons and the company name for
// organisations.
func (c Customer) DisplayName() string {
	if c.Type == CustomerOrganization && c.CompanyName != "" {
		return c.CompanyName
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{c.FirstName, c.Infix, c.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
