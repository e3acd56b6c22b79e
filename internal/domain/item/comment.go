package item

import "time"

// Comment is feedback left on an item by a user who finished a booking of it.
type Comment struct {
	ID       int64
	Text     string
	ItemID   int64
	AuthorID int64
	Created  time.Time
}
