package response

import (
	"time"

	"shareit/internal/usecase/queries"
)

type ItemRequestResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Created     time.Time       `json:"created"`
	Items       []*ItemResponse `json:"items"`
}

func FromRequestView(v *queries.RequestView) *ItemRequestResponse {
	return &ItemRequestResponse{
		ID:          v.ID,
		Description: v.Description,
		Created:     v.Created,
		Items:       FromItemViews(v.Items),
	}
}

func FromRequestViews(vs []queries.RequestView) []*ItemRequestResponse {
	resps := make([]*ItemRequestResponse, len(vs))
	for i := range vs {
		resps[i] = FromRequestView(&vs[i])
	}
	return resps
}
