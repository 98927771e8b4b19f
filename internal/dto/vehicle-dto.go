package dto

type VehicleDTO struct {
	ID        uint64 `json:"id"`
	Placa     string `json:"placa"`
	Modelo    string `json:"modelo"`
	Marca     string `json:"marca"`
	Ano       int    `json:"ano"`
	KmAtual   int64  `json:"km_atual"`
	Ativo     bool   `json:"ativo"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type CreateVehicleDTO struct {
	Placa   string `json:"placa" validate:"required,placa_br"`
	Modelo  string `json:"modelo" validate:"required,min=2,max=100"`
	Marca   string `json:"marca" validate:"required,min=2,max=100"`
	Ano     int    `json:"ano" validate:"required,gte=1950,lte=2100"`
	KmAtual int64  `json:"km_atual" validate:"gte=0"`
}

type UpdateVehicleDTO struct {
	Placa   *string `json:"placa" validate:"omitempty,placa_br"`
	Modelo  *string `json:"modelo" validate:"omitempty,min=2,max=100"`
	Marca   *string `json:"marca" validate:"omitempty,min=2,max=100"`
	Ano     *int    `json:"ano" validate:"omitempty,gte=1950,lte=2100"`
	KmAtual *int64  `json:"km_atual" validate:"omitempty,gte=0"`
	Ativo   *bool   `json:"ativo"`
}
