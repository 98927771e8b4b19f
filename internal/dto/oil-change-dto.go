package dto

type OilChangeDTO struct {
	ID               uint64 `json:"id"`
	VehicleID        uint64 `json:"vehicle_id"`
	Placa            string `json:"placa,omitempty"`
	KmTroca          int64  `json:"km_troca"`
	DataTroca        string `json:"data_troca"`
	TipoOleo         string `json:"tipo_oleo"`
	ProximaTrocaKm   *int64 `json:"proxima_troca_km,omitempty"`
	ProximaTrocaData string `json:"proxima_troca_data,omitempty"`
	Observacao       string `json:"observacao,omitempty"`
	Vencida          bool   `json:"vencida"`
	CreatedAt        string `json:"created_at"`
}

type CreateOilChangeDTO struct {
	VehicleID        uint64 `json:"vehicle_id" validate:"required"`
	KmTroca          int64  `json:"km_troca" validate:"required,gte=0"`
	DataTroca        string `json:"data_troca" validate:"required,datetime=2006-01-02"`
	TipoOleo         string `json:"tipo_oleo" validate:"required,min=2,max=50"`
	ProximaTrocaKm   *int64 `json:"proxima_troca_km" validate:"omitempty,gt=0"`
	ProximaTrocaData string `json:"proxima_troca_data" validate:"omitempty,datetime=2006-01-02"`
	Observacao       string `json:"observacao" validate:"omitempty,max=500"`
}
