package queries

import "time"

// Read models (DTO for read side). Related entities appear as value copies
// assembled at read time; nothing holds a live object graph.

type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingView struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Booker UserRef   `json:"booker"`
	Item   ItemRef   `json:"item"`

	// ItemOwnerID scopes read access and approval rights; it is never exposed.
	ItemOwnerID int64 `json:"-"`
}

type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingSlot is the short booking form shown on an item to its owner.
type BookingSlot struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type ItemView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"-"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// ItemDetailView is an item plus its read-time decorations: the surrounding
// bookings (owner's eyes only) and every comment.
type ItemDetailView struct {
	ItemView
	LastBooking *BookingSlot  `json:"lastBooking"`
	NextBooking *BookingSlot  `json:"nextBooking"`
	Comments    []CommentView `json:"comments"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RequestView struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	Created     time.Time  `json:"created"`
	Items       []ItemView `json:"items"`
}
