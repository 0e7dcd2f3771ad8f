package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/discoverypromo/raffle-admin-backend/internal/models"
	"github.com/discoverypromo/raffle-admin-backend/internal/store"
	"github.com/discoverypromo/raffle-admin-backend/pkg/netprobe"
)

// submissionListTimeout bounds the submissions listing. It is the only
// explicitly bounded remote call; everything else relies on the backend's own
// timeout behavior.
const submissionListTimeout = 30 * time.Second

// SubmissionService reads raffle entries. Submissions are created by the
// public entry form; this service never writes them.
type SubmissionService struct {
	store      store.DocumentStore
	net        netprobe.Checker
	collection string
	log        zerolog.Logger
}

// NewSubmissionService creates a SubmissionService over the given collection.
func NewSubmissionService(docs store.DocumentStore, net netprobe.Checker, collection string, log zerolog.Logger) *SubmissionService {
	return &SubmissionService{
		store:      docs,
		net:        net,
		collection: collection,
		log:        log.With().Str("component", "submissions").Logger(),
	}
}

// GetSubmissions lists every raffle entry. Entries without a status read as
// pending.
func (s *SubmissionService) GetSubmissions(ctx context.Context) ([]models.Submission, error) {
	if !s.net.Online() {
		return nil, store.ErrNetworkUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, submissionListTimeout)
	defer cancel()

	docs, err := s.store.ListAll(ctx, s.collection, nil)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	submissions := make([]models.Submission, 0, len(docs))
	for _, doc := range docs {
		sub := models.Submission{
			ID:                 doc.ID,
			RaffleEntries:      fieldInt(doc.Fields, "raffleEntries"),
			EntryStatus:        fieldString(doc.Fields, "entryStatus"),
			FullName:           fieldString(doc.Fields, "fullName"),
			MobileNumber:       fieldString(doc.Fields, "mobileNumber"),
			Email:              fieldString(doc.Fields, "email"),
			Birthdate:          fieldString(doc.Fields, "birthdate"),
			ResidentialAddress: fieldString(doc.Fields, "residentialAddress"),
			Branch:             fieldString(doc.Fields, "branch"),
			DateOfPurchase:     fieldString(doc.Fields, "dateOfPurchase"),
			ReceiptNumber:      fieldString(doc.Fields, "receiptNumber"),
			ReceiptUpload:      fieldStrings(doc.Fields, "receiptUpload"),
			PurchaseAmount:     fieldFloat(doc.Fields, "purchaseAmount"),
		}
		if sub.EntryStatus == "" {
			sub.EntryStatus = models.SubmissionStatusPending
		}
		if t, ok := fieldTime(doc.Fields, "submittedAt"); ok {
			sub.SubmittedAt = t
		}
		submissions = append(submissions, sub)
	}

	s.log.Info().Int("count", len(submissions)).Msg("submissions loaded")
	return submissions, nil
}

func fieldFloat(fields map[string]any, key string) float64 {
	switch v := fields[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func fieldStrings(fields map[string]any, key string) []string {
	switch v := fields[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
