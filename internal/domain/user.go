package domain

import "time"

// User is a Job Service account keyed by email. Accounts are created lazily
// on first submission.
type User struct {
	ID        string
	Email     string
	Name      string
	Company   string
	Role      string
	CreatedAt time.Time
}

// Profile is the locally cached user record kept in the session store.
type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Role    string `json:"role,omitempty"`
}
