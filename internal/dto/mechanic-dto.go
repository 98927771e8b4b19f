package dto

type MechanicDTO struct {
	ID        uint64 `json:"id"`
	Nome      string `json:"nome"`
	Ativo     bool   `json:"ativo"`
	CreatedAt string `json:"created_at"`
}

type CreateMechanicDTO struct {
	Nome string `json:"nome" validate:"required,min=2,max=100"`
}

type UpdateMechanicDTO struct {
	Nome  *string `json:"nome" validate:"omitempty,min=2,max=100"`
	Ativo *bool   `json:"ativo"`
}
