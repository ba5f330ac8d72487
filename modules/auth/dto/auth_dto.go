package dto

import "guestdesk/modules/auth/entity"

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	Host         entity.Host `json:"host"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
