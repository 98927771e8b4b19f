package dto

type PartDTO struct {
	ID        uint64  `json:"id"`
	Codigo    string  `json:"codigo"`
	Nome      string  `json:"nome"`
	Unidade   string  `json:"unidade"`
	Saldo     int64   `json:"saldo"`
	Minimo    int64   `json:"minimo"`
	Custo     float64 `json:"custo"`
	CreatedAt string  `json:"created_at"`
}

type CreatePartDTO struct {
	Codigo  string  `json:"codigo" validate:"required,min=2,max=50"`
	Nome    string  `json:"nome" validate:"required,min=2,max=150"`
	Unidade string  `json:"unidade" validate:"required,min=1,max=10"`
	Saldo   int64   `json:"saldo" validate:"gte=0"`
	Minimo  int64   `json:"minimo" validate:"gte=0"`
	Custo   float64 `json:"custo" validate:"gte=0"`
}

type UpdatePartDTO struct {
	Nome    *string  `json:"nome" validate:"omitempty,min=2,max=150"`
	Unidade *string  `json:"unidade" validate:"omitempty,min=1,max=10"`
	Minimo  *int64   `json:"minimo" validate:"omitempty,gte=0"`
	Custo   *float64 `json:"custo" validate:"omitempty,gte=0"`
}

// CreateMovementDTO registra entrada ou saída de estoque. Saídas podem ser
// vinculadas a uma OS.
type CreateMovementDTO struct {
	Tipo        string  `json:"tipo" validate:"required,oneof=entrada saida"`
	Quantidade  int64   `json:"quantidade" validate:"required,gt=0"`
	WorkOrderID *uint64 `json:"work_order_id"`
	Observacao  string  `json:"observacao" validate:"omitempty,max=500"`
}

type MovementDTO struct {
	ID          uint64  `json:"id"`
	PartID      uint64  `json:"part_id"`
	Tipo        string  `json:"tipo"`
	Quantidade  int64   `json:"quantidade"`
	WorkOrderID *uint64 `json:"work_order_id,omitempty"`
	Observacao  string  `json:"observacao,omitempty"`
	ActorID     uint64  `json:"actor_id"`
	ActorNome   string  `json:"actor_nome"`
	CreatedAt   string  `json:"created_at"`
}
