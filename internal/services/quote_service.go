package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"vpgquote/internal/configurator"
	"vpgquote/internal/models/db_models"
	"vpgquote/internal/models/request_models"
	"vpgquote/internal/models/response_models"
	"vpgquote/internal/repositories"
	"vpgquote/pkg/utils"
)

type QuoteServiceInterface interface {
	SubmitQuote(ctx context.Context, req request_models.SubmitQuoteRequest) (*response_models.SubmitQuoteResponse, error)
}

type QuoteService struct {
	configuratorService ConfiguratorServiceInterface
	submissionRepo      repositories.SubmissionRepositoryInterface
	mailService         IMailService
}

func NewQuoteService(
	configuratorService ConfiguratorServiceInterface,
	submissionRepo repositories.SubmissionRepositoryInterface,
	mailService IMailService,
) QuoteServiceInterface {
	return &QuoteService{
		configuratorService: configuratorService,
		submissionRepo:      submissionRepo,
		mailService:         mailService,
	}
}

// SubmitQuote prices the finished configuration, persists the submission
// and notifies both the customer and the internal mailbox. Pricing and
// persistence are the critical path; email delivery is best effort and
// reported per channel.
func (s *QuoteService) SubmitQuote(ctx context.Context, req request_models.SubmitQuoteRequest) (*response_models.SubmitQuoteResponse, error) {
	siteID, err := s.configuratorService.ResolveSiteID(ctx, req.Site)
	if err != nil {
		return nil, err
	}

	answers := configurator.AnswerMap(req.Answers)
	price, questions, err := s.configuratorService.PriceQuote(ctx, req.ProductSlug, req.Site, answers)
	if err != nil {
		return nil, err
	}

	estimateMin := int64(math.Round(price.Min))
	estimateMax := int64(math.Round(price.Max))
	submission := &db_models.QuoteSubmission{
		SiteID: siteID,
		Configuration: db_models.ConfigurationJSON{
			"product_slug": req.ProductSlug,
			"answers":      req.Answers,
		},
		PriceEstimateMin: &estimateMin,
		PriceEstimateMax: &estimateMax,
		ContactName:      req.Contact.Name,
		ContactEmail:     strings.ToLower(req.Contact.Email),
		ContactPhone:     optionalString(req.Contact.Phone),
		ContactAddress:   optionalString(req.Contact.Address),
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, utils.ErrDatabaseError
	}

	emailData := QuoteEmailData{
		CustomerName:    req.Contact.Name,
		CustomerEmail:   req.Contact.Email,
		CustomerPhone:   valueOrDash(req.Contact.Phone),
		CustomerAddress: valueOrDash(req.Contact.Address),
		ProductName:     productNameFromSlug(req.ProductSlug),
		Configuration:   buildConfigurationSummary(questions, answers),
		PriceMin:        configurator.FormatPrice(price.Min),
		PriceMax:        configurator.FormatPrice(price.Max),
	}

	var wg sync.WaitGroup
	var customerOK, adminOK bool
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := s.mailService.SendQuoteEmail(req.Contact.Email, emailData); err != nil {
			log.Printf("Failed to send customer quote email: %v", err)
			return
		}
		customerOK = true
	}()
	go func() {
		defer wg.Done()
		if err := s.mailService.SendQuoteAdminNotification(emailData); err != nil {
			log.Printf("Failed to send admin notification email: %v", err)
			return
		}
		adminOK = true
	}()
	wg.Wait()

	return &response_models.SubmitQuoteResponse{
		Success:      true,
		SubmissionID: submission.ID.String(),
		Price: response_models.SubmitPriceDetails{
			Min:          price.Min,
			Max:          price.Max,
			MinFormatted: configurator.FormatPrice(price.Min),
			MaxFormatted: configurator.FormatPrice(price.Max),
		},
		Emails: response_models.EmailStatus{
			Customer: customerOK,
			Admin:    adminOK,
		},
	}, nil
}

// buildConfigurationSummary renders the answer map as label/value lines
// for the emails. Answers to known questions come first in definition
// order, with selected option values mapped to their labels; leftover
// answers (stale keys) follow with a humanized key.
func buildConfigurationSummary(questions []configurator.Question, answers configurator.AnswerMap) []ConfigurationLine {
	lines := make([]ConfigurationLine, 0, len(answers))
	seen := make(map[string]bool, len(answers))

	for _, q := range questions {
		answer, ok := answers[q.QuestionKey]
		if !ok {
			continue
		}
		seen[q.QuestionKey] = true
		lines = append(lines, ConfigurationLine{
			Label: q.Label,
			Value: formatAnswerValue(&q, answer),
		})
	}

	leftover := make([]string, 0)
	for key := range answers {
		if !seen[key] {
			leftover = append(leftover, key)
		}
	}
	sort.Strings(leftover)
	for _, key := range leftover {
		lines = append(lines, ConfigurationLine{
			Label: strings.ReplaceAll(key, "_", " "),
			Value: formatAnswerValue(nil, answers[key]),
		})
	}
	return lines
}

func formatAnswerValue(q *configurator.Question, answer any) string {
	switch v := answer.(type) {
	case nil:
		return "-"
	case string:
		if q != nil {
			if opt := q.OptionByValue(v); opt != nil {
				return opt.Label
			}
		}
		if v == "" {
			return "-"
		}
		return v
	case []any, []string:
		values, _ := answerValues(v)
		if len(values) == 0 {
			return "-"
		}
		if q != nil {
			for i, value := range values {
				if opt := q.OptionByValue(value); opt != nil {
					values[i] = opt.Label
				}
			}
		}
		return strings.Join(values, ", ")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return toDisplayString(v)
	}
}

func toDisplayString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func answerValues(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out, true
	case []any:
		out := make([]string, len(t))
		for i, e := range t {
			out[i] = toDisplayString(e)
		}
		return out, true
	default:
		return nil, false
	}
}

func productNameFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
