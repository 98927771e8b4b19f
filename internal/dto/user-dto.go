package dto

type UserDTO struct {
	ID        uint64 `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	RoleID    uint64 `json:"role_id"`
	RoleNome  string `json:"role_nome,omitempty"`
	Ativo     bool   `json:"ativo"`
	CreatedAt string `json:"created_at"`
}

type CreateUserDTO struct {
	Nome     string `json:"nome" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	RoleID   uint64 `json:"role_id" validate:"required"`
}

type UpdateUserDTO struct {
	Nome     *string `json:"nome" validate:"omitempty,min=2,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	RoleID   *uint64 `json:"role_id"`
	Ativo    *bool   `json:"ativo"`
}

// OverrideDTO concede ou revoga uma permissão para um usuário específico,
// por cima do preset do perfil.
type OverrideDTO struct {
	PermissionID uint64 `json:"permission_id" validate:"required"`
	Permitido    bool   `json:"permitido"`
}

type UserPermissionsDTO struct {
	UserID    uint64            `json:"user_id"`
	Preset    []PermissionDTO   `json:"preset"`
	Overrides []UserOverrideDTO `json:"overrides"`
	Efetivas  []string          `json:"efetivas"`
}

type UserOverrideDTO struct {
	PermissionID uint64 `json:"permission_id"`
	Codigo       string `json:"codigo"`
	Permitido    bool   `json:"permitido"`
}
