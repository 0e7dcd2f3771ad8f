package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/discoverypromo/raffle-admin-backend/internal/models"
	"github.com/discoverypromo/raffle-admin-backend/internal/store"
	"github.com/discoverypromo/raffle-admin-backend/internal/utils"
	"github.com/discoverypromo/raffle-admin-backend/pkg/netprobe"
)

// ActivityService writes and reads the admin audit trail.
type ActivityService struct {
	store      store.DocumentStore
	net        netprobe.Checker
	collection string
	log        zerolog.Logger
}

// NewActivityService creates an ActivityService writing to the given
// collection.
func NewActivityService(docs store.DocumentStore, net netprobe.Checker, collection string, log zerolog.Logger) *ActivityService {
	return &ActivityService{
		store:      docs,
		net:        net,
		collection: collection,
		log:        log.With().Str("component", "activity").Logger(),
	}
}

// Log records an admin action, best effort. Audit logging must never block or
// fail the action it accompanies: offline skips the write, and any remote
// failure is classified for diagnostics and swallowed.
func (s *ActivityService) Log(ctx context.Context, entry models.ActivityLog, admin *models.AdminInfo) {
	if !s.net.Online() {
		s.log.Warn().Str("action", entry.Action).Msg("offline, skipping activity log")
		return
	}

	fields := map[string]any{
		"action":      entry.Action,
		"description": entry.Description,
		"timestamp":   store.ServerTimestamp,
	}
	putIfSet(fields, "targetId", entry.TargetID)
	putIfSet(fields, "targetName", entry.TargetName)
	putIfSet(fields, "oldValue", entry.OldValue)
	putIfSet(fields, "newValue", entry.NewValue)
	if entry.Details != nil {
		fields["details"] = entry.Details
	}

	adminName := "Unknown Admin"
	if admin != nil {
		fields["adminId"] = admin.ID
		fields["adminEmail"] = admin.Email
		adminName = utils.DisplayName(admin.Name, admin.Email)
	}
	fields["adminName"] = adminName

	if _, err := s.store.Add(ctx, s.collection, fields); err != nil {
		event := s.log.Error()
		switch store.KindOf(err) {
		case store.KindTransport, store.KindTimeout:
			event = s.log.Warn().Str("cause", "network")
		case store.KindPermissionDenied:
			event = s.log.Warn().Str("cause", "permission")
		}
		event.Err(err).Str("action", entry.Action).Msg("failed to log activity")
		return
	}
	s.log.Info().Str("action", entry.Action).Str("admin", adminName).Msg("activity logged")
}

// GetActivityLogs returns the audit trail, newest first.
func (s *ActivityService) GetActivityLogs(ctx context.Context) ([]models.ActivityLog, error) {
	if !s.net.Online() {
		return nil, store.ErrNetworkUnavailable
	}

	docs, err := s.store.ListAll(ctx, s.collection, &store.ListOptions{
		OrderBy:   "timestamp",
		Direction: store.Descending,
	})
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}

	logs := make([]models.ActivityLog, 0, len(docs))
	for _, doc := range docs {
		entry := models.ActivityLog{
			ID:          doc.ID,
			Action:      fieldString(doc.Fields, "action"),
			Description: fieldString(doc.Fields, "description"),
			TargetID:    fieldString(doc.Fields, "targetId"),
			TargetName:  fieldString(doc.Fields, "targetName"),
			OldValue:    fieldString(doc.Fields, "oldValue"),
			NewValue:    fieldString(doc.Fields, "newValue"),
			Details:     doc.Fields["details"],
			AdminID:     fieldString(doc.Fields, "adminId"),
			AdminEmail:  fieldString(doc.Fields, "adminEmail"),
			AdminName:   fieldString(doc.Fields, "adminName"),
		}
		if t, ok := fieldTime(doc.Fields, "timestamp"); ok {
			entry.Timestamp = t
		}
		logs = append(logs, entry)
	}
	return logs, nil
}

func putIfSet(fields map[string]any, key, value string) {
	if value != "" {
		fields[key] = value
	}
}
