package models

import "time"

// WinnerStatus is the confirmation state assigned by the verification flow.
// A freshly drawn winner has no status at all.
type WinnerStatus string

const (
	WinnerConfirmed WinnerStatus = "confirmed"
	WinnerRejected  WinnerStatus = "rejected"
)

// Winner is a submission drawn for a specific prize. SubmissionID is a weak
// back-reference to the source submission; the contact fields are denormalized
// copies taken at draw time.
type Winner struct {
	ID              string       `json:"id,omitempty"`
	SubmissionID    string       `json:"submissionId"`
	FullName        string       `json:"fullName"`
	Email           string       `json:"email"`
	MobileNumber    string       `json:"mobileNumber"`
	RaffleEntries   int          `json:"raffleEntries"`
	DrawnAt         time.Time    `json:"drawnAt"`
	Status          WinnerStatus `json:"status,omitempty"`
	VerifiedAt      *time.Time   `json:"verifiedAt,omitempty"`
	RejectionReason string       `json:"rejectionReason,omitempty"`
}
