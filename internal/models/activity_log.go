package models

import "time"

// ActivityLog is an audit record of a significant admin action. Entries are
// append-only; nothing in this system mutates or deletes them.
type ActivityLog struct {
	ID          string    `json:"id,omitempty"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	TargetID    string    `json:"targetId,omitempty"`
	TargetName  string    `json:"targetName,omitempty"`
	OldValue    string    `json:"oldValue,omitempty"`
	NewValue    string    `json:"newValue,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Details     any       `json:"details,omitempty"`
	AdminID     string    `json:"adminId,omitempty"`
	AdminEmail  string    `json:"adminEmail,omitempty"`
	AdminName   string    `json:"adminName,omitempty"`
}

// AdminInfo identifies the admin an activity entry is attributed to.
type AdminInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
