package services

import (
	"bytes"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"github.com/Dirk1989/ideal-car/models"
	log "github.com/sirupsen/logrus"
)

// Mailer sends admin notification emails for form submissions. When the SMTP
// transport is not configured every Send call is a logged no-op that returns
// nil; persistence of the triggering record never depends on mail delivery.
type Mailer struct {
	host string
	port int
	user string
	pass string
	to   string
}

func NewMailer(host string, port int, user, pass, to string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, to: to}
}

// Configured reports whether the SMTP transport is usable.
func (m *Mailer) Configured() bool {
	return m.host != "" && m.user != "" && m.pass != ""
}

type emailRow struct {
	Label string
	Value string
}

type emailData struct {
	Title    string
	Subtitle string
	Rows     []emailRow
}

var emailTemplate = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #2563eb 0%, #4f46e5 100%); color: white; padding: 30px; border-radius: 10px 10px 0 0; }
    .content { background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px; }
    .detail-row { margin: 15px 0; padding: 15px; background: white; border-radius: 8px; border-left: 4px solid #2563eb; }
    .label { font-weight: bold; color: #2563eb; margin-bottom: 5px; }
    .value { color: #1f2937; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0; font-size: 24px;">{{.Title}}</h1>
      <p style="margin: 10px 0 0 0; opacity: 0.9;">{{.Subtitle}}</p>
    </div>
    <div class="content">
      {{- range .Rows}}
      <div class="detail-row">
        <div class="label">{{.Label}}</div>
        <div class="value">{{.Value}}</div>
      </div>
      {{- end}}
    </div>
  </div>
</body>
</html>`))

// SendLeadNotification emails a new sell-car lead to the notify address. The
// lead is already persisted when this runs; the caller swallows any error.
func (m *Mailer) SendLeadNotification(lead models.Lead) error {
	rows := []emailRow{
		{"Contact Name", orText(lead.Name, "Not provided")},
		{"Phone Number", orText(lead.Phone, "Not provided")},
		{"Email Address", orText(lead.Email, "Not provided")},
		{"Vehicle Details", strings.TrimSpace(fmt.Sprintf("%s %s %s", lead.CarYear, lead.CarMake, lead.CarModel))},
		{"Mileage", orText(lead.CarMileage, "Not provided") + " km"},
		{"Location", orText(lead.CarLocation, "Not provided")},
		{"Preferred Contact Method", orText(lead.PreferredContact, "Not specified")},
	}
	if lead.AdditionalInfo != "" {
		rows = append(rows, emailRow{"Additional Information", lead.AdditionalInfo})
	}
	if lead.Urgency != "" {
		rows = append(rows, emailRow{"Urgency", lead.Urgency})
	}
	rows = append(rows, emailRow{"Received", lead.CreatedAt})

	subject := strings.TrimSpace(fmt.Sprintf("🚗 Car for Sale: %s %s %s", lead.CarYear, lead.CarMake, lead.CarModel))
	return m.send(subject, emailData{
		Title:    "🚗 Car for Sale",
		Subtitle: "New vehicle listing submission",
		Rows:     rows,
	})
}

// SendContactNotification emails a contact form submission.
func (m *Mailer) SendContactNotification(contact models.ContactMessage) error {
	rows := []emailRow{
		{"Name", contact.Name},
		{"Email", contact.Email},
	}
	if contact.Phone != "" {
		rows = append(rows, emailRow{"Phone", contact.Phone})
	}
	rows = append(rows,
		emailRow{"Subject", contact.Subject},
		emailRow{"Message", contact.Message},
		emailRow{"Received", time.Now().UTC().Format(time.RFC3339)},
	)

	return m.send("✉️ Contact: "+contact.Subject, emailData{
		Title:    "✉️ Contact Form Submission",
		Subtitle: "New message from website",
		Rows:     rows,
	})
}

// SendInspectionNotification emails an inspection booking request.
func (m *Mailer) SendInspectionNotification(req models.InspectionRequest) error {
	rows := []emailRow{
		{"Name", req.Name},
		{"Phone", req.Phone},
		{"Email", req.Email},
		{"Vehicle Details", req.VehicleDetails},
		{"Vehicle Location", req.Location},
		{"Preferred Contact Method", req.PreferredContact},
	}
	if req.Notes != "" {
		rows = append(rows, emailRow{"Additional Notes", req.Notes})
	}

	return m.send("🔍 Inspection Enquiry: "+req.VehicleDetails, emailData{
		Title:    "🔍 Inspection Enquiry",
		Subtitle: "New inspection booking request",
		Rows:     rows,
	})
}

// SendEnquiryNotification emails a vehicle enquiry for a specific listing.
func (m *Mailer) SendEnquiryNotification(enq models.VehicleEnquiry) error {
	rows := []emailRow{
		{"Vehicle of Interest", enq.VehicleTitle},
		{"Price", enq.VehiclePrice},
		{"Name", enq.Name},
		{"Phone", enq.Phone},
		{"Email", enq.Email},
		{"Preferred Contact Method", enq.PreferredContact},
	}
	if enq.Message != "" {
		rows = append(rows, emailRow{"Message", enq.Message})
	}

	return m.send("🚗 Vehicle Enquiry: "+enq.VehicleTitle, emailData{
		Title:    "🚗 Vehicle Enquiry",
		Subtitle: "Customer interested in vehicle",
		Rows:     rows,
	})
}

func renderHTML(data emailData) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (m *Mailer) send(subject string, data emailData) error {
	if !m.Configured() {
		log.Info("SMTP not configured, skipping email send")
		return nil
	}

	body, err := renderHTML(data)
	if err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", m.user)
	fmt.Fprintf(&msg, "To: %s\r\n", m.to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)

	if err := smtp.SendMail(addr, auth, m.user, []string{m.to}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}

func orText(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
