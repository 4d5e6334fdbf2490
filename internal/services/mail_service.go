package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

type ConfigurationLine struct {
	Label string
	Value string
}

// QuoteEmailData feeds both the customer quote email and the internal
// notification. Prices arrive pre-formatted.
type QuoteEmailData struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	ProductName     string
	Configuration   []ConfigurationLine
	PriceMin        string
	PriceMax        string
}

type IMailService interface {
	SendQuoteEmail(to string, data QuoteEmailData) error
	SendQuoteAdminNotification(data QuoteEmailData) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string // envelope from, e.g. "noreply@vpg.be"
	FromName   string // display name, e.g. "VPG"
	UseSSL     bool   // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool   // fail if STARTTLS not available

	AppName        string
	QuoteRecipient string // internal mailbox for new quote requests

	// In development all outgoing mail is redirected to TestRecipient so
	// real customers never receive test quotes.
	TestMode      bool
	TestRecipient string
}

type smtpMailService struct {
	cfg       SMTPConfig
	quoteHTML *template.Template
	adminHTML *template.Template
	quoteText *template.Template
	adminText *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	return &smtpMailService{
		cfg:       cfg,
		quoteHTML: template.Must(template.New("quoteHTML").Parse(quoteHTMLTemplate)),
		adminHTML: template.Must(template.New("adminHTML").Parse(adminHTMLTemplate)),
		quoteText: template.Must(template.New("quoteText").Parse(quoteTextTemplate)),
		adminText: template.Must(template.New("adminText").Parse(adminTextTemplate)),
	}, nil
}

// ------------------- Public API -------------------

func (s *smtpMailService) SendQuoteEmail(to string, data QuoteEmailData) error {
	subject := fmt.Sprintf("Jouw offerteaanvraag - %s", data.ProductName)
	html, text, err := s.render(s.quoteHTML, s.quoteText, data)
	if err != nil {
		return err
	}
	return s.send(s.recipient(to), subject, html, text)
}

func (s *smtpMailService) SendQuoteAdminNotification(data QuoteEmailData) error {
	subject := fmt.Sprintf("Nieuwe offerteaanvraag: %s - %s", data.CustomerName, data.ProductName)
	html, text, err := s.render(s.adminHTML, s.adminText, data)
	if err != nil {
		return err
	}
	return s.send(s.recipient(s.cfg.QuoteRecipient), subject, html, text)
}

func (s *smtpMailService) recipient(email string) string {
	if s.cfg.TestMode && s.cfg.TestRecipient != "" {
		return s.cfg.TestRecipient
	}
	return email
}

// ------------------- Rendering -------------------

type emailContext struct {
	QuoteEmailData
	AppName string
	Year    int
}

const quoteHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>Jouw offerteaanvraag</title>
  <style>
    body { margin: 0; padding: 0; background: #f4f4f5; color: #18181b; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; overflow: hidden; }
    .header { padding: 24px 32px; background: #14532d; color: #ffffff; font-weight: 700; font-size: 20px; }
    .body { padding: 32px; }
    h1 { margin: 0 0 16px; font-size: 22px; }
    p { margin: 0 0 16px; line-height: 1.6; color: #3f3f46; }
    table { width: 100%; border-collapse: collapse; margin: 16px 0; }
    td { padding: 8px 0; border-bottom: 1px solid #e4e4e7; font-size: 14px; }
    td.label { color: #71717a; width: 45%; }
    .price { font-size: 18px; font-weight: 700; color: #14532d; margin: 16px 0; }
    .footer { padding: 16px 32px; color: #a1a1aa; font-size: 12px; text-align: center; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">{{.AppName}}</div>
    <div class="body">
      <h1>Bedankt voor je aanvraag, {{.CustomerName}}!</h1>
      <p>We hebben je offerteaanvraag voor <strong>{{.ProductName}}</strong> goed ontvangen. Hieronder vind je een overzicht van je samenstelling.</p>
      <table>
        {{range .Configuration}}
        <tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>
        {{end}}
      </table>
      <p class="price">Geschatte prijs: {{.PriceMin}} – {{.PriceMax}}</p>
      <p>Dit is een vrijblijvende schatting. We nemen zo snel mogelijk contact met je op voor een offerte op maat.</p>
    </div>
    <div class="footer">© {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const adminHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Nieuwe offerteaanvraag</title>
  <style>
    body { margin: 0; padding: 0; background: #f4f4f5; color: #18181b; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 600px; margin: 0 auto; background: #ffffff; padding: 32px; }
    h1 { margin: 0 0 16px; font-size: 20px; }
    table { width: 100%; border-collapse: collapse; margin: 16px 0; }
    td { padding: 6px 0; border-bottom: 1px solid #e4e4e7; font-size: 14px; }
    td.label { color: #71717a; width: 40%; }
    .price { font-weight: 700; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Nieuwe offerteaanvraag: {{.ProductName}}</h1>
    <table>
      <tr><td class="label">Naam</td><td>{{.CustomerName}}</td></tr>
      <tr><td class="label">E-mail</td><td>{{.CustomerEmail}}</td></tr>
      <tr><td class="label">Telefoon</td><td>{{.CustomerPhone}}</td></tr>
      <tr><td class="label">Adres</td><td>{{.CustomerAddress}}</td></tr>
    </table>
    <h1>Samenstelling</h1>
    <table>
      {{range .Configuration}}
      <tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>
      {{end}}
    </table>
    <p class="price">Geschatte prijs: {{.PriceMin}} – {{.PriceMax}}</p>
  </div>
</body>
</html>`

const quoteTextTemplate = `Bedankt voor je aanvraag, {{.CustomerName}}!

We hebben je offerteaanvraag voor {{.ProductName}} goed ontvangen.

Samenstelling:
{{range .Configuration}}- {{.Label}}: {{.Value}}
{{end}}
Geschatte prijs: {{.PriceMin}} – {{.PriceMax}}

Dit is een vrijblijvende schatting. We nemen zo snel mogelijk contact met je op.

— {{.AppName}} (c) {{.Year}}
`

const adminTextTemplate = `Nieuwe offerteaanvraag: {{.ProductName}}

Naam: {{.CustomerName}}
E-mail: {{.CustomerEmail}}
Telefoon: {{.CustomerPhone}}
Adres: {{.CustomerAddress}}

Samenstelling:
{{range .Configuration}}- {{.Label}}: {{.Value}}
{{end}}
Geschatte prijs: {{.PriceMin}} – {{.PriceMax}}
`

func (s *smtpMailService) render(htmlTpl, textTpl *template.Template, data QuoteEmailData) (html string, text string, err error) {
	ctx := emailContext{
		QuoteEmailData: data,
		AppName:        s.cfg.AppName,
		Year:           time.Now().Year(),
	}

	var hb, tb bytes.Buffer
	if err = htmlTpl.Execute(&hb, ctx); err != nil {
		return "", "", err
	}
	if err = textTpl.Execute(&tb, ctx); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		return s.transmit(c, auth, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	return s.transmit(c, auth, to, msg.Bytes())
}

func (s *smtpMailService) transmit(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", name), s.cfg.From)
}
