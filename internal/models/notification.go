package models

// Notification is one inbox entry for the signed-in user.
type Notification struct {
	ID        int
	Type      string
	Title     string
	Message   string
	Icon      string
	Link      string
	Read      bool
	CreatedAt string
}
