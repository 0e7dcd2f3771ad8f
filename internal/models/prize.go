package models

import (
	"errors"
	"fmt"
)

// ErrUnknownPrize is returned when a prize name has no backing collection.
var ErrUnknownPrize = errors.New("unknown prize")

// Prize identifies one of the fixed raffle prizes. The set is closed: every
// prize maps to exactly one backend collection, and both mappings are
// exhaustive switches so a prize cannot exist without a collection.
type Prize int

const (
	PrizeDiscoverySamal Prize = iota
	PrizeDiscoveryCoron
	PrizeDiscoveryBoracay
	PrizeDiscoveryPrimea
	PrizeDiscoverySuites
	PrizeGiftBox
	PrizeGiftCert1000
	PrizeGiftCert1500
	PrizeGiftCert2000
)

// Prizes returns every prize in draw-board order.
func Prizes() []Prize {
	return []Prize{
		PrizeDiscoverySamal,
		PrizeDiscoveryCoron,
		PrizeDiscoveryBoracay,
		PrizeDiscoveryPrimea,
		PrizeDiscoverySuites,
		PrizeGiftBox,
		PrizeGiftCert1000,
		PrizeGiftCert1500,
		PrizeGiftCert2000,
	}
}

// String returns the human-readable prize name. These names are an external
// contract shared with the entry form and must match exactly.
func (p Prize) String() string {
	switch p {
	case PrizeDiscoverySamal:
		return "Discovery Samal"
	case PrizeDiscoveryCoron:
		return "Discovery Coron"
	case PrizeDiscoveryBoracay:
		return "Discovery Boracay"
	case PrizeDiscoveryPrimea:
		return "Discovery Primea"
	case PrizeDiscoverySuites:
		return "Discovery Suites"
	case PrizeGiftBox:
		return "Gift Box"
	case PrizeGiftCert1000:
		return "₱1,000 Gift Certificates"
	case PrizeGiftCert1500:
		return "₱1,500 Gift Certificates"
	case PrizeGiftCert2000:
		return "₱2,000 Gift Certificates"
	}
	return fmt.Sprintf("Prize(%d)", int(p))
}

// Collection returns the document collection holding the winners for p.
func (p Prize) Collection() string {
	switch p {
	case PrizeDiscoverySamal:
		return "discoverySamal"
	case PrizeDiscoveryCoron:
		return "discoveryCoron"
	case PrizeDiscoveryBoracay:
		return "discoveryBoracay"
	case PrizeDiscoveryPrimea:
		return "discoveryPrimea"
	case PrizeDiscoverySuites:
		return "discoverySuites"
	case PrizeGiftBox:
		return "giftBox"
	case PrizeGiftCert1000:
		return "giftCert_1000"
	case PrizeGiftCert1500:
		return "giftCert_1500"
	case PrizeGiftCert2000:
		return "giftCert_2000"
	}
	return ""
}

// ParsePrize resolves a prize name to its Prize value.
func ParsePrize(name string) (Prize, error) {
	for _, p := range Prizes() {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPrize, name)
}
