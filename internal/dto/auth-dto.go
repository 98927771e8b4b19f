package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokensDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ProfileDTO struct {
	ID          uint64   `json:"id"`
	Nome        string   `json:"nome"`
	Email       string   `json:"email"`
	RoleID      uint64   `json:"role_id"`
	RoleNome    string   `json:"role_nome"`
	Permissions []string `json:"permissions"`
}
