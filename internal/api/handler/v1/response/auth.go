package response

import "github.com/gigguide/gigguide-api/internal/domain"

type RegisterResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
