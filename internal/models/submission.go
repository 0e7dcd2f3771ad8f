package models

import "time"

// SubmissionStatusPending is the entry status assumed when a submission
// carries none.
const SubmissionStatusPending = "Pending"

// Submission represents a raffle entry created by the public entry form.
// The admin backend reads submissions; it never creates or deletes them.
type Submission struct {
	ID                 string    `json:"id"`
	RaffleEntries      int       `json:"raffleEntries,omitempty"`
	EntryStatus        string    `json:"entryStatus,omitempty"`
	FullName           string    `json:"fullName,omitempty"`
	MobileNumber       string    `json:"mobileNumber,omitempty"`
	Email              string    `json:"email,omitempty"`
	Birthdate          string    `json:"birthdate,omitempty"`
	ResidentialAddress string    `json:"residentialAddress,omitempty"`
	Branch             string    `json:"branch,omitempty"`
	DateOfPurchase     string    `json:"dateOfPurchase,omitempty"`
	PurchaseAmount     float64   `json:"purchaseAmount,omitempty"`
	ReceiptNumber      string    `json:"receiptNumber,omitempty"`
	ReceiptUpload      []string  `json:"receiptUpload,omitempty"`
	SubmittedAt        time.Time `json:"submittedAt,omitempty"`
}
