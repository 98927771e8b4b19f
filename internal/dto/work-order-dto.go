package dto

type ShortMechanicDTO struct {
	ID   uint64 `json:"id"`
	Nome string `json:"nome"`
}

type WorkOrderDTO struct {
	ID             uint64            `json:"id"`
	Numero         string            `json:"numero"`
	VehicleID      uint64            `json:"vehicle_id"`
	Placa          string            `json:"placa,omitempty"`
	Descricao      string            `json:"descricao"`
	Status         string            `json:"status"`
	Departamento   string            `json:"departamento"`
	Mecanico       *ShortMechanicDTO `json:"mecanico,omitempty"`
	ExecutionOrder *int              `json:"execution_order,omitempty"`
	CreatedAt      string            `json:"created_at"`
}

type CreateWorkOrderDTO struct {
	Numero    string `json:"numero" validate:"required,numero_os"`
	VehicleID uint64 `json:"vehicle_id" validate:"required"`
	Descricao string `json:"descricao" validate:"required,min=3"`
}

type UpdateWorkOrderDTO struct {
	Descricao  *string `json:"descricao" validate:"omitempty,min=3"`
	VehicleID  *uint64 `json:"vehicle_id"`
	MechanicID *uint64 `json:"mechanic_id"`
}

// UpdateStatusDTO move uma OS dentro da máquina de estados.
type UpdateStatusDTO struct {
	Status     string `json:"status" validate:"required"`
	Observacao string `json:"observacao" validate:"omitempty,max=2000"`
}

// ExternalServiceDTO envia a OS para serviço externo, preservando no
// histórico o departamento de origem.
type ExternalServiceDTO struct {
	Observacao string `json:"observacao" validate:"omitempty,max=2000"`
}

// ReopenDTO reabre uma OS finalizada em um status ativo.
type ReopenDTO struct {
	Status     string `json:"status" validate:"required"`
	Observacao string `json:"observacao" validate:"omitempty,max=2000"`
}

// ObservationDTO anexa uma observação ao histórico sem mudar o status.
type ObservationDTO struct {
	Texto        string `json:"texto" validate:"required,min=1,max=2000"`
	Departamento string `json:"departamento" validate:"required,oneof=Oficina Almoxarifado Compras Finalizados"`
}

type HistoryEntryDTO struct {
	ID             uint64 `json:"id"`
	TxID           string `json:"tx_id"`
	FromStatus     string `json:"from_status,omitempty"`
	ToStatus       string `json:"to_status,omitempty"`
	FromDepartment string `json:"from_department,omitempty"`
	ToDepartment   string `json:"to_department,omitempty"`
	Observacao     string `json:"observacao,omitempty"`
	ActorID        uint64 `json:"actor_id"`
	ActorNome      string `json:"actor_nome"`
	CreatedAt      string `json:"created_at"`
}
