package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/discoverypromo/raffle-admin-backend/internal/models"
	"github.com/discoverypromo/raffle-admin-backend/internal/store"
	"github.com/discoverypromo/raffle-admin-backend/pkg/netprobe"
)

// WinnerService replaces, loads and clears the winners drawn for each prize.
// One collection per prize; the draw itself happens elsewhere, this service
// only synchronizes its outcome with the backend.
//
// Replacement is clear-then-insert without a transaction: a reader racing a
// save may observe an empty or partially populated collection, and a failed
// save may leave the collection partially cleared. That window is inherited
// from the backend's lack of cross-document atomicity and is accepted; the
// interface exists so a future implementation can swap in an atomic batch
// write without touching callers.
type WinnerService struct {
	store store.DocumentStore
	net   netprobe.Checker
	log   zerolog.Logger
}

// NewWinnerService creates a WinnerService.
func NewWinnerService(docs store.DocumentStore, net netprobe.Checker, log zerolog.Logger) *WinnerService {
	return &WinnerService{
		store: docs,
		net:   net,
		log:   log.With().Str("component", "winners").Logger(),
	}
}

// SaveWinners replaces all winners for a prize with documents derived from
// the given submissions.
func (s *WinnerService) SaveWinners(ctx context.Context, prizeName string, winners []models.Submission) error {
	prize, err := models.ParsePrize(prizeName)
	if err != nil {
		return err
	}
	if !s.net.Online() {
		return store.ErrNetworkUnavailable
	}
	collection := prize.Collection()

	existing, err := s.store.ListAll(ctx, collection, nil)
	if err != nil {
		return fmt.Errorf("list existing winners for %s: %w", prizeName, err)
	}
	if err := s.deleteAll(ctx, collection, existing); err != nil {
		// The collection may now be partially cleared; callers must assume
		// partial effect, there is no rollback.
		return fmt.Errorf("clear existing winners for %s: %w", prizeName, err)
	}
	s.log.Info().Str("prize", prizeName).Int("cleared", len(existing)).Msg("cleared existing winners")

	// Inserts are sequential on purpose: a failure leaves a deterministic
	// prefix of the input persisted. Do not parallelize this loop.
	for _, sub := range winners {
		entries := sub.RaffleEntries
		if entries == 0 {
			entries = 1
		}
		fields := map[string]any{
			"submissionId":  sub.ID,
			"fullName":      sub.FullName,
			"email":         sub.Email,
			"mobileNumber":  sub.MobileNumber,
			"raffleEntries": entries,
			"drawnAt":       store.ServerTimestamp,
			// status stays unset until the verification flow confirms or
			// rejects the winner
		}
		if _, err := s.store.Add(ctx, collection, fields); err != nil {
			return fmt.Errorf("save winner %s for %s: %w", sub.ID, prizeName, err)
		}
	}

	s.log.Info().Str("prize", prizeName).Int("winners", len(winners)).Msg("winners replaced")
	return nil
}

// LoadWinners returns the winners for a prize, most recently drawn first.
// A collection the backend reports as missing or forbidden means the prize
// has never been drawn; that is an empty result, not an error.
func (s *WinnerService) LoadWinners(ctx context.Context, prizeName string) ([]models.Winner, error) {
	prize, err := models.ParsePrize(prizeName)
	if err != nil {
		return nil, err
	}
	if !s.net.Online() {
		return nil, store.ErrNetworkUnavailable
	}

	docs, err := s.store.ListAll(ctx, prize.Collection(), &store.ListOptions{
		OrderBy:   "drawnAt",
		Direction: store.Descending,
	})
	if err != nil {
		switch store.KindOf(err) {
		case store.KindPermissionDenied, store.KindNotFound:
			s.log.Debug().Str("prize", prizeName).Msg("no winner collection yet, returning empty list")
			return []models.Winner{}, nil
		}
		return nil, fmt.Errorf("load winners for %s: %w", prizeName, err)
	}

	winners := make([]models.Winner, 0, len(docs))
	for _, doc := range docs {
		winners = append(winners, winnerFromDocument(doc))
	}
	return winners, nil
}

// ClearWinners deletes every winner for a prize.
func (s *WinnerService) ClearWinners(ctx context.Context, prizeName string) error {
	prize, err := models.ParsePrize(prizeName)
	if err != nil {
		return err
	}
	if !s.net.Online() {
		return store.ErrNetworkUnavailable
	}
	collection := prize.Collection()

	docs, err := s.store.ListAll(ctx, collection, nil)
	if err != nil {
		return fmt.Errorf("list winners for %s: %w", prizeName, err)
	}
	if err := s.deleteAll(ctx, collection, docs); err != nil {
		return fmt.Errorf("clear winners for %s: %w", prizeName, err)
	}
	s.log.Info().Str("prize", prizeName).Int("cleared", len(docs)).Msg("winners cleared")
	return nil
}

// LoadAllWinners loads the winners of every known prize. A failure for one
// prize is logged and replaced with an empty list; the call as a whole never
// fails because of a single prize's backend error.
func (s *WinnerService) LoadAllWinners(ctx context.Context) map[string][]models.Winner {
	all := make(map[string][]models.Winner, len(models.Prizes()))
	for _, prize := range models.Prizes() {
		winners, err := s.LoadWinners(ctx, prize.String())
		if err != nil {
			s.log.Error().Err(err).Str("prize", prize.String()).Msg("failed to load winners, substituting empty list")
			all[prize.String()] = []models.Winner{}
			continue
		}
		all[prize.String()] = winners
	}
	return all
}

// deleteAll issues all deletions concurrently and waits for every one of
// them. If any deletion fails the whole operation fails.
func (s *WinnerService) deleteAll(ctx context.Context, collection string, docs []store.Document) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			return s.store.Delete(ctx, collection, doc.ID)
		})
	}
	return g.Wait()
}

// winnerFromDocument maps raw fields onto a Winner. Optional fields pass
// through as-is; nothing is defaulted on read.
func winnerFromDocument(doc store.Document) models.Winner {
	winner := models.Winner{
		ID:              doc.ID,
		SubmissionID:    fieldString(doc.Fields, "submissionId"),
		FullName:        fieldString(doc.Fields, "fullName"),
		Email:           fieldString(doc.Fields, "email"),
		MobileNumber:    fieldString(doc.Fields, "mobileNumber"),
		RaffleEntries:   fieldInt(doc.Fields, "raffleEntries"),
		Status:          models.WinnerStatus(fieldString(doc.Fields, "status")),
		RejectionReason: fieldString(doc.Fields, "rejectionReason"),
	}
	if t, ok := fieldTime(doc.Fields, "drawnAt"); ok {
		winner.DrawnAt = t
	}
	if t, ok := fieldTime(doc.Fields, "verifiedAt"); ok {
		winner.VerifiedAt = &t
	}
	return winner
}

func fieldString(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func fieldInt(fields map[string]any, key string) int {
	switch v := fields[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func fieldTime(fields map[string]any, key string) (time.Time, bool) {
	t, ok := fields[key].(time.Time)
	return t, ok
}
