package notify

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"text/template"
	"time"

	"parkease/internal/usecase/shared"
)

type templateSet struct {
	subject string
	text    *template.Template
	html    *htmltemplate.Template
}

var funcs = map[string]any{
	"when":  func(t time.Time) string { return t.UTC().Format("Mon 02 Jan 2006 15:04 MST") },
	"money": func(cents int64) string { return fmt.Sprintf("%d.%02d", cents/100, cents%100) },
}

const approvedText = `Hello {{.Name}},

Your parking request at {{.Data.LocationName}} has been approved.

Confirmation code: {{.Data.ConfirmationCode}}
Vehicle: {{.Data.Plate}}
From: {{when .Data.Start}}
Until: {{when .Data.End}}
Total: {{money .Data.TotalCents}}

Please show the confirmation code to the attendant on arrival.
`

const approvedHTML = `<p>Hello {{.Name}},</p>
<p>Your parking request at <b>{{.Data.LocationName}}</b> has been approved.</p>
<ul>
<li>Confirmation code: <b>{{.Data.ConfirmationCode}}</b></li>
<li>Vehicle: {{.Data.Plate}}</li>
<li>From: {{when .Data.Start}}</li>
<li>Until: {{when .Data.End}}</li>
<li>Total: {{money .Data.TotalCents}}</li>
</ul>
<p>Please show the confirmation code to the attendant on arrival.</p>
`

const rejectedText = `Hello {{.Name}},

We could not accept your parking request at {{.Data.LocationName}}
for {{when .Data.Start}} to {{when .Data.End}}.

Reason: {{.Data.Reason}}
`

const rejectedHTML = `<p>Hello {{.Name}},</p>
<p>We could not accept your parking request at <b>{{.Data.LocationName}}</b>
for {{when .Data.Start}} to {{when .Data.End}}.</p>
<p>Reason: {{.Data.Reason}}</p>
`

func mustTemplateSet(subject, text, html string) templateSet {
	return templateSet{
		subject: subject,
		text:    template.Must(template.New("text").Funcs(funcs).Parse(text)),
		html:    htmltemplate.Must(htmltemplate.New("html").Funcs(funcs).Parse(html)),
	}
}

var templates = map[shared.NotificationKind]templateSet{
	shared.NotificationApproved: mustTemplateSet("Your ParkEase booking is confirmed", approvedText, approvedHTML),
	shared.NotificationRejected: mustTemplateSet("Your ParkEase booking request was declined", rejectedText, rejectedHTML),
}

type templateData struct {
	Name string
	Data shared.NotificationData
}

// Render builds the email for a notification.
func Render(n shared.Notification) (Message, error) {
	set, ok := templates[n.Kind]
	if !ok {
		return Message{}, fmt.Errorf("no template for notification kind %q", n.Kind)
	}

	name := n.RecipientName
	if name == "" {
		name = "there"
	}
	data := templateData{Name: name, Data: n.Data}

	var text, html bytes.Buffer
	if err := set.text.Execute(&text, data); err != nil {
		return Message{}, fmt.Errorf("failed to render text body: %w", err)
	}
	if err := set.html.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("failed to render html body: %w", err)
	}

	return Message{
		ToEmail: n.RecipientEmail,
		ToName:  n.RecipientName,
		Subject: set.subject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
