package item

// Item holds its owner by id; the owning user record lives with the identity
// collaborator and is joined on read.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

func (i Item) OwnedBy(userID int64) bool {
	return i.OwnerID == userID
}
