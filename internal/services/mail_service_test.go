package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMailData() QuoteEmailData {
	return QuoteEmailData{
		CustomerName:    "Jan Peeters",
		CustomerEmail:   "jan@example.be",
		CustomerPhone:   "+32 470 00 00 00",
		CustomerAddress: "-",
		ProductName:     "Carport Modern",
		Configuration: []ConfigurationLine{
			{Label: "Kleur", Value: "Antraciet"},
			{Label: "Lengte", Value: "6"},
		},
		PriceMin: "€ 5.100",
		PriceMax: "€ 6.150",
	}
}

func TestMailTemplates_Render(t *testing.T) {
	svc, err := NewSMTPMailService(SMTPConfig{AppName: "VPG"})
	require.NoError(t, err)
	s := svc.(*smtpMailService)

	html, text, err := s.render(s.quoteHTML, s.quoteText, testMailData())
	require.NoError(t, err)
	assert.Contains(t, html, "Bedankt voor je aanvraag, Jan Peeters!")
	assert.Contains(t, html, "Carport Modern")
	assert.Contains(t, html, "Antraciet")
	assert.Contains(t, html, "€ 5.100")
	assert.Contains(t, text, "Geschatte prijs: € 5.100 – € 6.150")

	html, text, err = s.render(s.adminHTML, s.adminText, testMailData())
	require.NoError(t, err)
	assert.Contains(t, html, "Nieuwe offerteaanvraag: Carport Modern")
	assert.Contains(t, html, "jan@example.be")
	assert.Contains(t, text, "Naam: Jan Peeters")
}

// HTML templates must escape admin-authored and customer-provided values.
func TestMailTemplates_EscapeHTML(t *testing.T) {
	svc, err := NewSMTPMailService(SMTPConfig{AppName: "VPG"})
	require.NoError(t, err)
	s := svc.(*smtpMailService)

	data := testMailData()
	data.CustomerName = `<script>alert("x")</script>`

	html, _, err := s.render(s.quoteHTML, s.quoteText, data)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRecipient_TestModeRedirect(t *testing.T) {
	svc, err := NewSMTPMailService(SMTPConfig{
		TestMode:      true,
		TestRecipient: "dev@vpg.be",
	})
	require.NoError(t, err)
	s := svc.(*smtpMailService)

	assert.Equal(t, "dev@vpg.be", s.recipient("klant@example.be"))
}

func TestRecipient_ProductionPassthrough(t *testing.T) {
	svc, err := NewSMTPMailService(SMTPConfig{TestMode: false, TestRecipient: "dev@vpg.be"})
	require.NoError(t, err)
	s := svc.(*smtpMailService)

	assert.Equal(t, "klant@example.be", s.recipient("klant@example.be"))
}
