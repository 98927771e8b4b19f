package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type User struct {
	ID        uint64
	Nome      string
	Email     string
	SenhaHash string
	RoleID    uint64
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt null.Time
	DeletedAt null.Time
}

type Role struct {
	ID        uint64
	Nome      string
	Descricao null.String
}

type Permission struct {
	ID        uint64
	Codigo    string
	Descricao null.String
}

// UserPermissionOverride é uma exceção individual sobre o preset do perfil:
// Permitido=true concede, Permitido=false revoga.
type UserPermissionOverride struct {
	UserID       uint64
	PermissionID uint64
	Codigo       string
	Permitido    bool
}
