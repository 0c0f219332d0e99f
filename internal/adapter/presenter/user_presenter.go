package presenter

import (
	"github.com/johnquangdev/ami-meeting-svc/internal/adapter/dto/auth"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *auth.UserResponse {
	if u == nil {
		return nil
	}
	return &auth.UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// ToLoginResponse packs the token alongside its owner
func ToLoginResponse(token string, expiresIn int, u *entities.User) *auth.LoginResponse {
	return &auth.LoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		TokenType:   "Bearer",
		User:        ToUserResponse(u),
	}
}
