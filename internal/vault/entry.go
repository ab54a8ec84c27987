package vault

import (
	"time"
)

// Entry is one stored credential. The store owns entries exclusively;
// operations hand out copies, never aliases into the live set.
type Entry struct {
	ID           string
	Website      string
	Username     string
	Password     string
	Category     string
	Notes        string
	CreatedAt    time.Time // set once at creation
	LastModified time.Time // refreshed on every successful update
}

// Draft carries the caller-supplied fields of an entry. The store
// assigns ID and timestamps itself.
type Draft struct {
	Website  string
	Username string
	Password string
	Category string
	Notes    string
}
