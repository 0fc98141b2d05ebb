package response

import (
	"time"

	"rate-am/internal/data/entity"
)

type AuthResponse struct {
	UserID     string      `json:"user_id"`
	Token      string      `json:"token"`
	ExpiresAt  time.Time   `json:"expires_at"`
	Email      string      `json:"email"`
	FullName   string      `json:"full_name"`
	Role       entity.Role `json:"role"`
	IsVerified bool        `json:"is_verified"`
}

type UserResponse struct {
	ID         string      `json:"id"`
	FullName   string      `json:"full_name"`
	Email      string      `json:"email"`
	Phone      *string     `json:"phone,omitempty"`
	Whatsapp   *string     `json:"whatsapp,omitempty"`
	AvatarURL  *string     `json:"avatar_url,omitempty"`
	Role       entity.Role `json:"role"`
	IsVerified bool        `json:"is_verified"`
	IsActive   bool        `json:"is_active"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User, role entity.Role) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		FullName:   user.FullName,
		Email:      user.Email,
		Phone:      user.Phone,
		Whatsapp:   user.Whatsapp,
		AvatarURL:  user.AvatarURL,
		Role:       role,
		IsVerified: user.EmailVerified,
		IsActive:   user.IsActive,
		CreatedAt:  user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, role entity.Role, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID:     user.ID.String(),
		Email:      user.Email,
		FullName:   user.FullName,
		Role:       role,
		IsVerified: user.EmailVerified,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
