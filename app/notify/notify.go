// Package notify delivers employee change notifications to email, slack and webhook destinations
package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/notify"
	"github.com/go-pkgz/syncs"

	"github.com/umputun/empdir/app/enums"
	"github.com/umputun/empdir/app/store"
)

// Params defines what and how to notify
type Params struct {
	ChangeTemplate string             // path to custom html template, embedded default if empty or broken
	Kinds          []enums.ChangeKind // change kinds to notify about, added, updated and removed if empty
	HostName       string
	Timeout        time.Duration // timeout of a single background delivery
	Concurrency    int           // max parallel background deliveries
}

// SendersParams defines destinations and their credentials
type SendersParams struct {
	SMTPParams notify.SMTPParams
	FromEmail  string
	ToEmails   []string

	SlackToken    string
	SlackChannels []string

	WebhookURLs []string
}

// Message is a notification with html body for email and plain text for others
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// Service sends notifications about changes of the employee store
type Service struct {
	Params

	destinations  []notify.Notifier
	fromEmail     string
	toEmails      []string
	slackChannels []string
	webhookURLs   []string

	bg *syncs.SizedGroup
}

// NewService makes notification service, returns nil if no destinations defined
func NewService(p Params, sp SendersParams) *Service {
	res := &Service{Params: p, fromEmail: sp.FromEmail, toEmails: sp.ToEmails,
		slackChannels: sp.SlackChannels, webhookURLs: sp.WebhookURLs}

	if len(sp.ToEmails) > 0 {
		res.destinations = append(res.destinations, notify.NewEmail(sp.SMTPParams))
	}
	if sp.SlackToken != "" && len(sp.SlackChannels) > 0 {
		res.destinations = append(res.destinations, notify.NewSlack(sp.SlackToken))
	}
	if len(sp.WebhookURLs) > 0 {
		res.destinations = append(res.destinations, notify.NewWebhook(notify.WebhookParams{Timeout: p.Timeout}))
	}
	if len(res.destinations) == 0 {
		return nil
	}

	if res.Timeout <= 0 {
		res.Timeout = 10 * time.Second
	}
	if res.Concurrency <= 0 {
		res.Concurrency = 4
	}
	if len(res.Kinds) == 0 {
		res.Kinds = []enums.ChangeKind{enums.ChangeKindAdded, enums.ChangeKindUpdated, enums.ChangeKindRemoved}
	}
	if res.HostName == "" {
		res.HostName = "unknown"
		if h, err := os.Hostname(); err == nil {
			res.HostName = h
		}
	}
	res.bg = syncs.NewSizedGroup(res.Concurrency)
	log.Printf("[INFO] notifications enabled for %v, %d destination types", res.Kinds, len(res.destinations))
	return res
}

// OnChange is a store subscriber, sends notification for the event in background
func (s *Service) OnChange(evt store.Event) {
	if !slices.Contains(s.Kinds, evt.Kind) {
		return
	}
	msg, err := s.MakeMessage(evt)
	if err != nil {
		log.Printf("[WARN] can't make notification for %s, %v", evt.Kind, err)
		return
	}
	s.bg.Go(func(ctx context.Context) {
		ctxTimeout, cancel := context.WithTimeout(ctx, s.Timeout)
		defer cancel()
		if err := s.Send(ctxTimeout, msg); err != nil {
			log.Printf("[WARN] failed to notify, %v", err)
		}
	})
}

// Close waits for background deliveries
func (s *Service) Close() {
	s.bg.Wait()
}

// Send delivers the message to all destinations, html body to email and text to others
func (s *Service) Send(ctx context.Context, msg Message) error {
	var errs []error
	for _, dest := range s.makeDestinations(msg.Subject) {
		text := msg.Text
		if strings.HasPrefix(dest, "mailto:") {
			text = msg.HTML
		}
		if err := s.send(ctx, dest, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// send passes text to the notifier matching destination schema
func (s *Service) send(ctx context.Context, dest, text string) error {
	for _, n := range s.destinations {
		if strings.HasPrefix(dest, n.Schema()) {
			return n.Send(ctx, dest, text)
		}
	}
	return fmt.Errorf("no notifier for %s", dest)
}

func (s *Service) makeDestinations(subj string) []string {
	var res []string
	if len(s.toEmails) > 0 {
		q := url.Values{}
		q.Set("from", s.fromEmail)
		q.Set("subject", subj)
		res = append(res, "mailto:"+strings.Join(s.toEmails, ",")+"?"+q.Encode())
	}
	for _, ch := range s.slackChannels {
		res = append(res, "slack:"+ch+"?"+url.Values{"title": {subj}}.Encode())
	}
	res = append(res, s.webhookURLs...)
	return res
}

// MakeMessage makes notification for the store event
func (s *Service) MakeMessage(evt store.Event) (Message, error) {
	e := evt.Employee
	subj := fmt.Sprintf("employee %q %s on %s", e.Name, evt.Kind, s.HostName)
	text := fmt.Sprintf("employee #%d %s %s (%s, %s, %d, %s), %d employees total",
		e.ID, e.Name, evt.Kind, e.Location, e.Gender, e.Age, e.Contact, len(evt.Employees))
	html, err := s.MakeChangeHTML(evt)
	if err != nil {
		return Message{}, err
	}
	return Message{Subject: subj, HTML: html, Text: text}, nil
}

// MakeChangeHTML renders html notification of the event with custom template if set and valid
func (s *Service) MakeChangeHTML(evt store.Event) (string, error) {
	tmpl := defaultChangeTemplate
	if s.ChangeTemplate != "" {
		if data, err := os.ReadFile(s.ChangeTemplate); err == nil {
			tmpl = string(data)
		} else {
			log.Printf("[WARN] can't read change template %s, use default, %v", s.ChangeTemplate, err)
		}
	}

	data := struct {
		Kind     string
		Employee store.Employee
		Total    int
		TS       time.Time
		Host     string
	}{
		Kind:     evt.Kind.String(),
		Employee: evt.Employee,
		Total:    len(evt.Employees),
		TS:       time.Now(),
		Host:     s.HostName,
	}

	res, err := execTemplate(tmpl, data)
	if err != nil && tmpl != defaultChangeTemplate {
		log.Printf("[WARN] can't apply custom template %s, use default, %v", s.ChangeTemplate, err)
		return execTemplate(defaultChangeTemplate, data)
	}
	return res, err
}

func execTemplate(tmpl string, data any) (string, error) {
	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("can't parse message template: %w", err)
	}
	buf := bytes.Buffer{}
	if err = t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to apply template: %w", err)
	}
	return buf.String(), nil
}

const defaultChangeTemplate = `<!DOCTYPE html>
<html>
	<head>
		<meta name="viewport" content="width=device-width" />
		<meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
		<style type="text/css">
			body {
				font-family: "Arial";
				font-size: 1.0em;
			}
			ul {
				margin-top: -0.5em;
				margin-left: -0.5em;
			}
			.bold {
				color: #1f4e79;
				font-weight: 900;
			}
		</style>
	</head>

	<body>
		<p>Employee {{.Kind}} on <span class="bold">{{.Host}}</span> at {{.TS.Format "2006-01-02T15:04:05Z07:00"}}</p>
		<ul>
			<li>Name: <span class="bold">{{.Employee.Name}}</span></li>
			<li>Contact: {{.Employee.Contact}}</li>
			<li>Location: {{.Employee.Location}}</li>
			<li>Gender: {{.Employee.Gender}}</li>
			<li>Age: {{.Employee.Age}}</li>
		</ul>
		<p>{{.Total}} employees in the directory</p>
	</body>
</html>
`
