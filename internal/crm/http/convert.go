package http

import (
	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/pkg/crmsdk"
)

// Domain values are converted to the wire types here so storage-only fields
// (password hashes, file paths, token hashes) never reach a response.

func toUser(u domain.User) crmsdk.User {
	return crmsdk.User{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		CustomerID: u.CustomerID,
		CreatedAt:  u.CreatedAt,
	}
}

func toSession(s service.Session) crmsdk.AuthResponse {
	return crmsdk.AuthResponse{Token: s.Token, ExpiresAt: s.ExpiresAt, User: toUser(s.User)}
}

func toCustomer(c domain.Customer) crmsdk.Customer {
	return crmsdk.Customer{
		ID:           c.ID,
		Type:         string(c.Type),
		FirstName:    c.FirstName,
		Infix:        c.Infix,
		LastName:     c.LastName,
		CompanyName:  c.CompanyName,
		Email:        c.Email,
		Phone:        c.Phone,
		Street:       c.Street,
		HouseNumber:  c.HouseNumber,
		Postcode:     c.Postcode,
		City:         c.City,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		LastActivity: c.LastActivity,
	}
}

func toCustomers(cs []domain.Customer) []crmsdk.Customer {
	out := make([]crmsdk.Customer, len(cs))
	for i, c := range cs {
		out[i] = toCustomer(c)
	}
	return out
}

func toDocument(d domain.Document) crmsdk.Document {
	return crmsdk.Document{
		ID:           d.ID,
		CustomerID:   d.CustomerID,
		OriginalName: d.OriginalName,
		FileName:     d.FileName,
		MimeType:     d.MimeType,
		Size:         d.Size,
		UploadedBy:   d.UploadedBy,
		CreatedAt:    d.CreatedAt,
	}
}

func toDocuments(ds []domain.Document) []crmsdk.Document {
	out := make([]crmsdk.Document, len(ds))
	for i, d := range ds {
		out[i] = toDocument(d)
	}
	return out
}

func toStage(s domain.Stage) crmsdk.Stage {
	return crmsdk.Stage{ID: s.ID, Name: s.Name, Label: s.Label, Color: s.Color, Order: s.Order}
}

func toStages(ss []domain.Stage) []crmsdk.Stage {
	out := make([]crmsdk.Stage, len(ss))
	for i, s := range ss {
		out[i] = toStage(s)
	}
	return out
}

func toTask(t domain.Task) crmsdk.Task {
	return crmsdk.Task{
		ID:          t.ID,
		Title:       t.Title,
		Notes:       t.Notes,
		Status:      string(t.Status),
		Deadline:    t.Deadline,
		CustomerID:  t.CustomerID,
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CompletedAt: t.CompletedAt,
	}
}

func toNote(n domain.Note) crmsdk.Note {
	return crmsdk.Note{
		ID:         n.ID,
		CustomerID: n.CustomerID,
		AuthorID:   n.AuthorID,
		AuthorName: n.AuthorName,
		Content:    n.Content,
		CreatedAt:  n.CreatedAt,
	}
}

func toKPIResult(r service.KPIResult) crmsdk.KPIResult {
	out := crmsdk.KPIResult{
		Type:      string(r.Type),
		Label:     r.Label,
		Value:     r.Value,
		Display:   r.Display,
		SubValue:  r.SubValue,
		Breakdown: r.Breakdown,
	}
	for _, p := range r.Series {
		out.Series = append(out.Series, crmsdk.SeriesPoint{Label: p.Label, Value: p.Value})
	}
	return out
}

func toLayout(l domain.DashboardLayout) crmsdk.DashboardLayout {
	out := crmsdk.DashboardLayout{
		KPIs:    make([]crmsdk.KPIConfig, len(l.KPIs)),
		Widgets: make([]crmsdk.WidgetConfig, len(l.Widgets)),
	}
	for i, k := range l.KPIs {
		out.KPIs[i] = crmsdk.KPIConfig{ID: k.ID, Type: string(k.Type), Label: k.Label, Order: k.Order}
	}
	for i, w := range l.Widgets {
		out.Widgets[i] = crmsdk.WidgetConfig(w)
	}
	if !l.UpdatedAt.IsZero() {
		at := l.UpdatedAt
		out.UpdatedAt = &at
	}
	return out
}

func fromLayout(userID string, l crmsdk.DashboardLayout) domain.DashboardLayout {
	out := domain.DashboardLayout{
		UserID:  userID,
		KPIs:    make([]domain.KPIConfig, len(l.KPIs)),
		Widgets: make([]domain.WidgetConfig, len(l.Widgets)),
	}
	for i, k := range l.KPIs {
		out.KPIs[i] = domain.KPIConfig{ID: k.ID, Type: domain.KPIType(k.Type), Label: k.Label, Order: k.Order}
	}
	for i, w := range l.Widgets {
		out.Widgets[i] = domain.WidgetConfig(w)
	}
	return out
}
