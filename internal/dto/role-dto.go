package dto

type RoleDTO struct {
	ID          uint64   `json:"id"`
	Nome        string   `json:"nome"`
	Descricao   string   `json:"descricao,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

type CreateRoleDTO struct {
	Nome          string   `json:"nome" validate:"required,min=2,max=100"`
	Descricao     string   `json:"descricao" validate:"omitempty,max=255"`
	PermissionIDs []uint64 `json:"permission_ids"`
}

type UpdateRoleDTO struct {
	Nome          *string  `json:"nome" validate:"omitempty,min=2,max=100"`
	Descricao     *string  `json:"descricao" validate:"omitempty,max=255"`
	PermissionIDs []uint64 `json:"permission_ids"`
}

type PermissionDTO struct {
	ID        uint64 `json:"id"`
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao,omitempty"`
}
