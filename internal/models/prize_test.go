package models

import (
	"errors"
	"testing"
)

func TestPrizeCollections(t *testing.T) {
	want := map[string]string{
		"Discovery Samal":          "discoverySamal",
		"Discovery Coron":          "discoveryCoron",
		"Discovery Boracay":        "discoveryBoracay",
		"Discovery Primea":         "discoveryPrimea",
		"Discovery Suites":         "discoverySuites",
		"Gift Box":                 "giftBox",
		"₱1,000 Gift Certificates": "giftCert_1000",
		"₱1,500 Gift Certificates": "giftCert_1500",
		"₱2,000 Gift Certificates": "giftCert_2000",
	}

	prizes := Prizes()
	if len(prizes) != len(want) {
		t.Fatalf("expected %d prizes, got %d", len(want), len(prizes))
	}
	for _, p := range prizes {
		collection, ok := want[p.String()]
		if !ok {
			t.Errorf("unexpected prize %q", p)
			continue
		}
		if p.Collection() != collection {
			t.Errorf("%q: collection = %q, want %q", p, p.Collection(), collection)
		}
	}
}

func TestParsePrize_RoundTrip(t *testing.T) {
	for _, p := range Prizes() {
		got, err := ParsePrize(p.String())
		if err != nil {
			t.Errorf("ParsePrize(%q) failed: %v", p, err)
			continue
		}
		if got != p {
			t.Errorf("ParsePrize(%q) = %v, want %v", p, got, p)
		}
	}
}

func TestParsePrize_Unknown(t *testing.T) {
	for _, name := range []string{"", "Grand Piano", "gift box", "giftBox"} {
		if _, err := ParsePrize(name); !errors.Is(err, ErrUnknownPrize) {
			t.Errorf("ParsePrize(%q): expected ErrUnknownPrize, got %v", name, err)
		}
	}
}
