package response

import (
	"time"

	"shareit/internal/usecase/queries"
)

type BookingResponse struct {
	ID     int64        `json:"id"`
	Start  time.Time    `json:"start"`
	End    time.Time    `json:"end"`
	Status string       `json:"status"`
	Booker UserRef      `json:"booker"`
	Item   ItemShortRef `json:"item"`
}

type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ItemShortRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Start:  v.Start,
		End:    v.End,
		Status: v.Status,
		Booker: UserRef{ID: v.Booker.ID, Name: v.Booker.Name},
		Item:   ItemShortRef{ID: v.Item.ID, Name: v.Item.Name},
	}
}

func FromBookingViews(vs []queries.BookingView) []*BookingResponse {
	resps := make([]*BookingResponse, len(vs))
	for i := range vs {
		resps[i] = FromBookingView(&vs[i])
	}
	return resps
}
