// Package mail renders and delivers the invitation e-mail.
package mail

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/vos-crm/crm/internal/crm/service"
)

// InviteSubject is the subject line of every invitation.
const InviteSubject = "Uitnodiging VOS CRM"

// Message is a rendered mail with a plain-text and an HTML body.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

var inviteTemplate = template.Must(template.New("invite").Parse(`Je bent uitgenodigd om een account aan te maken bij **VOS CRM**{{with .Role}} als {{.}}{{end}}.

Klik op de link om je wachtwoord in te stellen:

<{{.Link}}>

Deze link verloopt op {{.Expires}}.
`))

var htmlPolicy = bluemonday.UGCPolicy()

var roleLabels = map[string]string{
	"BEHEERDER":  "beheerder",
	"MEDEWERKER": "medewerker",
	"KLANT":      "klant",
}

// RenderInvite builds the invitation. The markdown source doubles as the
// plain-text part.
func RenderInvite(msg service.InviteMessage) (Message, error) {
	data := struct {
		Role    string
		Link    string
		Expires string
	}{
		Role:    roleLabels[strings.ToUpper(msg.Role)],
		Link:    msg.Link,
		Expires: msg.ExpiresAt.In(amsterdam()).Format("02-01-2006 15:04"),
	}

	var md bytes.Buffer
	if err := inviteTemplate.Execute(&md, data); err != nil {
		return Message{}, fmt.Errorf("render invite template: %w", err)
	}

	var html bytes.Buffer
	if err := goldmark.Convert(md.Bytes(), &html); err != nil {
		return Message{}, fmt.Errorf("convert invite markdown: %w", err)
	}

	return Message{
		Subject: InviteSubject,
		Text:    md.String(),
		HTML:    htmlPolicy.Sanitize(html.String()),
	}, nil
}

// amsterdam falls back to UTC on hosts without zoneinfo.
func amsterdam() *time.Location {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		return time.UTC
	}
	return loc
}
