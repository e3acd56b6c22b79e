package request

import "time"

// Request is an open ask for an item that nobody has listed yet. Items created
// in answer to it point back via their RequestID.
type Request struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}
