package response

import (
	"time"

	"github.com/jinzhu/copier"

	"shareit/internal/usecase/queries"
)

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type BookingSlotResponse struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingSlotResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingSlotResponse `json:"nextBooking,omitempty"`
	Comments    []CommentResponse    `json:"comments"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromItemViews(vs []queries.ItemView) []*ItemResponse {
	resps := make([]*ItemResponse, len(vs))
	for i := range vs {
		resps[i] = FromItemView(&vs[i])
	}
	return resps
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	var resp CommentResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromItemDetailView(v *queries.ItemDetailView) *ItemDetailResponse {
	resp := ItemDetailResponse{
		ItemResponse: *FromItemView(&v.ItemView),
		LastBooking:  fromBookingSlot(v.LastBooking),
		NextBooking:  fromBookingSlot(v.NextBooking),
		Comments:     make([]CommentResponse, len(v.Comments)),
	}
	for i := range v.Comments {
		resp.Comments[i] = *FromCommentView(&v.Comments[i])
	}
	return &resp
}

func FromItemDetailViews(vs []queries.ItemDetailView) []*ItemDetailResponse {
	resps := make([]*ItemDetailResponse, len(vs))
	for i := range vs {
		resps[i] = FromItemDetailView(&vs[i])
	}
	return resps
}

func fromBookingSlot(s *queries.BookingSlot) *BookingSlotResponse {
	if s == nil {
		return nil
	}
	var resp BookingSlotResponse
	_ = copier.Copy(&resp, s)
	return &resp
}
