package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/discoverypromo/raffle-admin-backend/internal/models"
	"github.com/discoverypromo/raffle-admin-backend/internal/store"
	"github.com/discoverypromo/raffle-admin-backend/internal/store/storetest"
	"github.com/discoverypromo/raffle-admin-backend/pkg/netprobe"
)

func newWinnerService(docs *storetest.Store, online bool) *WinnerService {
	return NewWinnerService(docs, netprobe.Static(online), zerolog.Nop())
}

func TestSaveWinners_UnknownPrize(t *testing.T) {
	docs := storetest.New()
	svc := newWinnerService(docs, true)

	err := svc.SaveWinners(context.Background(), "Grand Piano", []models.Submission{{ID: "sub1"}})
	if !errors.Is(err, models.ErrUnknownPrize) {
		t.Fatalf("expected ErrUnknownPrize, got %v", err)
	}
	if docs.Calls != 0 {
		t.Errorf("expected no remote calls for unknown prize, got %d", docs.Calls)
	}
}

func TestSaveWinners_Offline(t *testing.T) {
	docs := storetest.New()
	svc := newWinnerService(docs, false)

	err := svc.SaveWinners(context.Background(), "Gift Box", []models.Submission{{ID: "sub1"}})
	if !errors.Is(err, store.ErrNetworkUnavailable) {
		t.Fatalf("expected ErrNetworkUnavailable, got %v", err)
	}
	if docs.Calls != 0 {
		t.Errorf("expected no remote calls while offline, got %d", docs.Calls)
	}
}

func TestSaveWinners_ReplacesExisting(t *testing.T) {
	docs := storetest.New()
	docs.Seed("giftBox", map[string]any{"submissionId": "old1"})
	docs.Seed("giftBox", map[string]any{"submissionId": "old2"})
	svc := newWinnerService(docs, true)

	winners := []models.Submission{
		{ID: "sub1", FullName: "Jane Doe", Email: "jane@x.com", MobileNumber: "09171234567", RaffleEntries: 3},
		{ID: "sub2", FullName: "Juan Cruz"},
	}
	if err := svc.SaveWinners(context.Background(), "Gift Box", winners); err != nil {
		t.Fatalf("SaveWinners failed: %v", err)
	}

	saved := docs.Docs("giftBox")
	if len(saved) != 2 {
		t.Fatalf("expected 2 documents after replacement, got %d", len(saved))
	}
	for i, want := range []string{"sub1", "sub2"} {
		if got := saved[i].Fields["submissionId"]; got != want {
			t.Errorf("document %d: submissionId = %v, want %s", i, got, want)
		}
	}
}

func TestSaveWinners_FieldMapping(t *testing.T) {
	docs := storetest.New()
	svc := newWinnerService(docs, true)

	// Submission with only an id: contact fields default to empty strings
	// and the entry count to 1.
	sub := models.Submission{ID: "sub9"}
	if err := svc.SaveWinners(context.Background(), "Discovery Samal", []models.Submission{sub}); err != nil {
		t.Fatalf("SaveWinners failed: %v", err)
	}

	saved := docs.Docs("discoverySamal")
	if len(saved) != 1 {
		t.Fatalf("expected 1 document, got %d", len(saved))
	}
	fields := saved[0].Fields
	if fields["fullName"] != "" || fields["email"] != "" || fields["mobileNumber"] != "" {
		t.Errorf("expected empty contact fields, got %v", fields)
	}
	if fields["raffleEntries"] != 1 {
		t.Errorf("raffleEntries = %v, want 1", fields["raffleEntries"])
	}
	if _, ok := fields["drawnAt"]; !ok {
		t.Error("expected drawnAt to be stamped")
	}
	if _, ok := fields["status"]; ok {
		t.Error("status must be unset at draw time")
	}
}

func TestSaveWinners_EmptyListClears(t *testing.T) {
	docs := storetest.New()
	docs.Seed("discoveryCoron", map[string]any{"submissionId": "old"})
	svc := newWinnerService(docs, true)

	if err := svc.SaveWinners(context.Background(), "Discovery Coron", nil); err != nil {
		t.Fatalf("SaveWinners failed: %v", err)
	}
	if got := len(docs.Docs("discoveryCoron")); got != 0 {
		t.Errorf("expected empty collection, got %d documents", got)
	}
}

func TestSaveWinners_DeleteFailurePropagates(t *testing.T) {
	docs := storetest.New()
	docs.Seed("giftBox", map[string]any{"submissionId": "old"})
	docs.FailDelete["giftBox"] = errors.New("delete refused")
	svc := newWinnerService(docs, true)

	err := svc.SaveWinners(context.Background(), "Gift Box", []models.Submission{{ID: "sub1"}})
	if err == nil {
		t.Fatal("expected error when clearing fails")
	}
	// No inserts happen after a failed clear.
	for _, doc := range docs.Docs("giftBox") {
		if doc.Fields["submissionId"] == "sub1" {
			t.Error("new winner was inserted despite failed clear")
		}
	}
}

func TestSaveWinners_InsertFailureLeavesPrefix(t *testing.T) {
	docs := storetest.New()
	svc := newWinnerService(docs, true)

	if err := svc.SaveWinners(context.Background(), "Gift Box", []models.Submission{{ID: "sub1"}}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	// Force the adds of the second save to fail after the clear: collection
	// ends up empty, which is the deterministic prefix of zero winners.
	docs.FailAdd["giftBox"] = errors.New("add refused")
	err := svc.SaveWinners(context.Background(), "Gift Box", []models.Submission{{ID: "sub2"}})
	if err == nil {
		t.Fatal("expected error when insert fails")
	}
	if got := len(docs.Docs("giftBox")); got != 0 {
		t.Errorf("expected cleared collection after failed insert, got %d documents", got)
	}
}

func TestLoadWinners_OrderedByDrawTimeDesc(t *testing.T) {
	docs := storetest.New()
	svc := newWinnerService(docs, true)

	input := []models.Submission{
		{ID: "sub1", FullName: "Jane Doe"},
		{ID: "sub2", FullName: "Juan Cruz"},
	}
	if err := svc.SaveWinners(context.Background(), "Discovery Boracay", input); err != nil {
		t.Fatalf("SaveWinners failed: %v", err)
	}

	winners, err := svc.LoadWinners(context.Background(), "Discovery Boracay")
	if err != nil {
		t.Fatalf("LoadWinners failed: %v", err)
	}
	if len(winners) != 2 {
		t.Fatalf("expected 2 winners, got %d", len(winners))
	}
	// Most recently drawn first: sub2 was inserted after sub1.
	if winners[0].SubmissionID != "sub2" || winners[1].SubmissionID != "sub1" {
		t.Errorf("wrong order: got %s, %s", winners[0].SubmissionID, winners[1].SubmissionID)
	}
	if !winners[0].DrawnAt.After(winners[1].DrawnAt) {
		t.Error("expected descending drawnAt order")
	}
	if winners[0].Status != "" {
		t.Errorf("expected unset status, got %q", winners[0].Status)
	}
}

func TestLoadWinners_UnknownPrize(t *testing.T) {
	docs := storetest.New()
	svc := newWinnerService(docs, true)

	if _, err := svc.LoadWinners(context.Background(), "Grand Piano"); !errors.Is(err, models.ErrUnknownPrize) {
		t.Fatalf("expected ErrUnknownPrize, got %v", err)
	}
	if docs.Calls != 0 {
		t.Errorf("expected no remote calls, got %d", docs.Calls)
	}
}

func TestLoadWinners_MissingCollectionMeansNoWinners(t *testing.T) {
	for _, kind := range []store.Kind{store.KindNotFound, store.KindPermissionDenied} {
		t.Run(kind.String(), func(t *testing.T) {
			docs := storetest.New()
			docs.FailList["giftBox"] = &store.RemoteError{Op: "list", Collection: "giftBox", Kind: kind, Err: errors.New("denied")}
			svc := newWinnerService(docs, true)

			winners, err := svc.LoadWinners(context.Background(), "Gift Box")
			if err != nil {
				t.Fatalf("expected empty result, got error: %v", err)
			}
			if len(winners) != 0 {
				t.Errorf("expected no winners, got %d", len(winners))
			}
		})
	}
}

func TestLoadWinners_OtherErrorsPropagate(t *testing.T) {
	docs := storetest.New()
	docs.FailList["giftBox"] = &store.RemoteError{Op: "list", Collection: "giftBox", Kind: store.KindTransport, Err: errors.New("connection reset")}
	svc := newWinnerService(docs, true)

	if _, err := svc.LoadWinners(context.Background(), "Gift Box"); err == nil {
		t.Fatal("expected transport error to propagate")
	}
}

func TestClearWinners(t *testing.T) {
	docs := storetest.New()
	docs.Seed("discoverySuites", map[string]any{"submissionId": "old1"})
	docs.Seed("discoverySuites", map[string]any{"submissionId": "old2"})
	svc := newWinnerService(docs, true)

	if err := svc.ClearWinners(context.Background(), "Discovery Suites"); err != nil {
		t.Fatalf("ClearWinners failed: %v", err)
	}
	if got := len(docs.Docs("discoverySuites")); got != 0 {
		t.Errorf("expected empty collection, got %d documents", got)
	}
}

func TestLoadAllWinners_IsolatesPerPrizeFailures(t *testing.T) {
	docs := storetest.New()
	svc := newWinnerService(docs, true)

	if err := svc.SaveWinners(context.Background(), "Gift Box", []models.Submission{{ID: "sub1"}}); err != nil {
		t.Fatalf("SaveWinners failed: %v", err)
	}
	docs.FailList["discoverySamal"] = &store.RemoteError{Op: "list", Collection: "discoverySamal", Kind: store.KindTransport, Err: errors.New("boom")}

	all := svc.LoadAllWinners(context.Background())
	if len(all) != len(models.Prizes()) {
		t.Fatalf("expected an entry for every prize, got %d", len(all))
	}
	if got := len(all["Discovery Samal"]); got != 0 {
		t.Errorf("failed prize should map to empty list, got %d winners", got)
	}
	if got := len(all["Gift Box"]); got != 1 {
		t.Errorf("expected 1 Gift Box winner, got %d", got)
	}
}

func TestSaveWinners_GiftBoxScenario(t *testing.T) {
	docs := storetest.New()
	svc := newWinnerService(docs, true)

	input := []models.Submission{{
		ID:            "sub1",
		FullName:      "Jane Doe",
		Email:         "jane@x.com",
		MobileNumber:  "09171234567",
		RaffleEntries: 3,
	}}
	if err := svc.SaveWinners(context.Background(), "Gift Box", input); err != nil {
		t.Fatalf("SaveWinners failed: %v", err)
	}

	saved := docs.Docs("giftBox")
	if len(saved) != 1 {
		t.Fatalf("expected exactly 1 document in giftBox, got %d", len(saved))
	}
	fields := saved[0].Fields
	if fields["submissionId"] != "sub1" {
		t.Errorf("submissionId = %v, want sub1", fields["submissionId"])
	}
	if fields["raffleEntries"] != 3 {
		t.Errorf("raffleEntries = %v, want 3", fields["raffleEntries"])
	}
	if _, ok := fields["status"]; ok {
		t.Error("status must be unset")
	}
	if _, ok := fields["drawnAt"]; !ok {
		t.Error("drawnAt must be set")
	}
}
