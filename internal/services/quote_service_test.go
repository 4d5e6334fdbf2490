package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpgquote/internal/configurator"
	"vpgquote/internal/models/db_models"
	"vpgquote/internal/models/request_models"
	"vpgquote/internal/models/response_models"
	"vpgquote/pkg/utils"
)

type stubConfiguratorService struct {
	siteID    uuid.UUID
	siteErr   error
	price     configurator.PriceResult
	questions []configurator.Question
}

func (s *stubConfiguratorService) ResolveSiteID(_ context.Context, _ string) (uuid.UUID, error) {
	if s.siteErr != nil {
		return uuid.Nil, s.siteErr
	}
	return s.siteID, nil
}

func (s *stubConfiguratorService) GetQuestions(_ context.Context, _, _ string) (*response_models.QuestionListResponse, error) {
	return nil, nil
}

func (s *stubConfiguratorService) CalculatePrice(_ context.Context, _, _ string, _ configurator.AnswerMap) (configurator.PriceResult, error) {
	return s.price, nil
}

func (s *stubConfiguratorService) PriceQuote(_ context.Context, _, _ string, _ configurator.AnswerMap) (configurator.PriceResult, []configurator.Question, error) {
	return s.price, s.questions, nil
}

type recordingSubmissionRepo struct {
	created *db_models.QuoteSubmission
	err     error
}

func (r *recordingSubmissionRepo) Create(_ context.Context, submission *db_models.QuoteSubmission) error {
	if r.err != nil {
		return r.err
	}
	submission.ID = uuid.New()
	r.created = submission
	return nil
}

func (r *recordingSubmissionRepo) ListBySite(_ context.Context, _ uuid.UUID, _, _ int) ([]db_models.QuoteSubmission, error) {
	return nil, nil
}

type recordingMailService struct {
	mu          sync.Mutex
	customerTo  string
	customerErr error
	adminErr    error
	lastData    QuoteEmailData
}

func (m *recordingMailService) SendQuoteEmail(to string, data QuoteEmailData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customerTo = to
	m.lastData = data
	return m.customerErr
}

func (m *recordingMailService) SendQuoteAdminNotification(_ QuoteEmailData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.adminErr
}

func submitRequest() request_models.SubmitQuoteRequest {
	return request_models.SubmitQuoteRequest{
		ProductSlug: "carport-modern",
		Site:        "vpg",
		Answers:     map[string]any{"kleur": "antraciet"},
		Contact: request_models.ContactDetails{
			Name:  "Jan Peeters",
			Email: "Jan.Peeters@Example.be",
			Phone: "+32 470 00 00 00",
		},
	}
}

func priceOf(min, max float64) configurator.PriceResult {
	return configurator.PriceResult{Min: min, Max: max,
		Breakdown: configurator.PriceBreakdown{Modifiers: []configurator.BreakdownLine{}}}
}

func TestSubmitQuote_PersistsAndResponds(t *testing.T) {
	repo := &recordingSubmissionRepo{}
	mail := &recordingMailService{}
	svc := NewQuoteService(&stubConfiguratorService{
		siteID: uuid.New(),
		price:  priceOf(510000, 615000.4),
	}, repo, mail)

	resp, err := svc.SubmitQuote(context.Background(), submitRequest())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.SubmissionID)
	assert.Equal(t, 510000.0, resp.Price.Min)
	assert.Equal(t, "€ 5.100", resp.Price.MinFormatted)
	assert.True(t, resp.Emails.Customer)
	assert.True(t, resp.Emails.Admin)

	require.NotNil(t, repo.created)
	assert.Equal(t, "jan.peeters@example.be", repo.created.ContactEmail, "emails are stored lowercased")
	require.NotNil(t, repo.created.PriceEstimateMin)
	assert.Equal(t, int64(510000), *repo.created.PriceEstimateMin)
	require.NotNil(t, repo.created.PriceEstimateMax)
	assert.Equal(t, int64(615000), *repo.created.PriceEstimateMax, "estimates are stored rounded")
	assert.Equal(t, "carport-modern", repo.created.Configuration["product_slug"])
	require.NotNil(t, repo.created.ContactPhone)
	assert.Nil(t, repo.created.ContactAddress, "empty contact fields store as NULL")

	assert.Equal(t, "Jan.Peeters@Example.be", mail.customerTo)
	assert.Equal(t, "Carport Modern", mail.lastData.ProductName)
	assert.Equal(t, "-", mail.lastData.CustomerAddress)
}

func TestSubmitQuote_UnknownSite(t *testing.T) {
	svc := NewQuoteService(&stubConfiguratorService{siteErr: utils.ErrSiteNotFound},
		&recordingSubmissionRepo{}, &recordingMailService{})

	_, err := svc.SubmitQuote(context.Background(), submitRequest())
	assert.ErrorIs(t, err, utils.ErrSiteNotFound)
}

func TestSubmitQuote_PersistenceFailureIsFatal(t *testing.T) {
	repo := &recordingSubmissionRepo{err: errors.New("connection reset")}
	mail := &recordingMailService{}
	svc := NewQuoteService(&stubConfiguratorService{siteID: uuid.New(), price: priceOf(0, 0)}, repo, mail)

	_, err := svc.SubmitQuote(context.Background(), submitRequest())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Empty(t, mail.customerTo, "no emails when the submission was not stored")
}

// Email delivery is best effort: failures are reported per channel in the
// response, never as an error.
func TestSubmitQuote_EmailFailuresAreReported(t *testing.T) {
	mail := &recordingMailService{customerErr: errors.New("smtp timeout")}
	svc := NewQuoteService(&stubConfiguratorService{siteID: uuid.New(), price: priceOf(1000, 2000)},
		&recordingSubmissionRepo{}, mail)

	resp, err := svc.SubmitQuote(context.Background(), submitRequest())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.False(t, resp.Emails.Customer)
	assert.True(t, resp.Emails.Admin)
}

func TestBuildConfigurationSummary(t *testing.T) {
	questions := []configurator.Question{
		{QuestionKey: "kleur", Label: "Kleur", Type: configurator.QuestionTypeSingleSelect,
			Options: []configurator.QuestionOption{{Value: "antraciet", Label: "Antraciet (RAL 7016)"}}},
		{QuestionKey: "extras", Label: "Extra's", Type: configurator.QuestionTypeMultiSelect,
			Options: []configurator.QuestionOption{
				{Value: "led", Label: "LED-verlichting"},
				{Value: "spots", Label: "Spots"},
			}},
		{QuestionKey: "lengte", Label: "Lengte", Type: configurator.QuestionTypeNumber},
		{QuestionKey: "onbeantwoord", Label: "Onbeantwoord", Type: configurator.QuestionTypeText},
	}
	answers := configurator.AnswerMap{
		"kleur":      "antraciet",
		"extras":     []any{"led", "spots"},
		"lengte":     float64(4.5),
		"stale_key":  "oude waarde",
		"empty_note": "",
	}

	lines := buildConfigurationSummary(questions, answers)

	require.Len(t, lines, 5)
	assert.Equal(t, ConfigurationLine{Label: "Kleur", Value: "Antraciet (RAL 7016)"}, lines[0])
	assert.Equal(t, ConfigurationLine{Label: "Extra's", Value: "LED-verlichting, Spots"}, lines[1])
	assert.Equal(t, ConfigurationLine{Label: "Lengte", Value: "4.5"}, lines[2])
	// Leftover keys sort alphabetically after the known questions.
	assert.Equal(t, ConfigurationLine{Label: "empty note", Value: "-"}, lines[3])
	assert.Equal(t, ConfigurationLine{Label: "stale key", Value: "oude waarde"}, lines[4])
}

func TestProductNameFromSlug(t *testing.T) {
	assert.Equal(t, "Carport Modern", productNameFromSlug("carport-modern"))
	assert.Equal(t, "Pergola", productNameFromSlug("pergola"))
	assert.Equal(t, "", productNameFromSlug(""))
}
