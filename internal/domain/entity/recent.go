package entity

import "time"

// RecentEntry is content the user opened recently.
type RecentEntry struct {
	ID         int64
	Path       string // Vault path
	Title      string
	OpenCount  int64
	LastOpened time.Time
}
