package response

import (
	"github.com/jinzhu/copier"

	"shareit/internal/usecase/queries"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromUserViews(vs []queries.UserView) []*UserResponse {
	resps := make([]*UserResponse, len(vs))
	for i := range vs {
		resps[i] = FromUserView(&vs[i])
	}
	return resps
}
