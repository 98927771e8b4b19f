package services

import (
	"context"
	"fmt"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/events"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/eventbus"
	"fleet-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type WorkOrderService struct {
	storage     *pgxpool.Pool
	orderRepo   repositories.WorkOrderRepositoryInterface
	historyRepo repositories.WorkOrderHistoryRepositoryInterface
	vehicleRepo repositories.VehicleRepositoryInterface
	bus         *eventbus.Bus
	logger      *zap.Logger
}

func NewWorkOrderService(
	storage *pgxpool.Pool,
	orderRepo repositories.WorkOrderRepositoryInterface,
	historyRepo repositories.WorkOrderHistoryRepositoryInterface,
	vehicleRepo repositories.VehicleRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *WorkOrderService {
	return &WorkOrderService{
		storage:     storage,
		orderRepo:   orderRepo,
		historyRepo: historyRepo,
		vehicleRepo: vehicleRepo,
		bus:         bus,
		logger:      logger,
	}
}

func formatTime(t null.Time) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Local().Format("2006-01-02 15:04:05")
}

func toWorkOrderDTO(item repositories.WorkOrderItem, dept constants.Department) dto.WorkOrderDTO {
	out := dto.WorkOrderDTO{
		ID:           item.ID,
		Numero:       item.Numero,
		VehicleID:    item.VehicleID,
		Placa:        item.Placa,
		Descricao:    item.Descricao,
		Status:       string(item.Status),
		Departamento: string(dept),
		CreatedAt:    item.CreatedAt.Local().Format("2006-01-02 15:04:05"),
	}
	if item.MechanicID.Valid {
		out.Mecanico = &dto.ShortMechanicDTO{
			ID:   item.MechanicID.Uint64,
			Nome: item.MechanicNome.String,
		}
	}
	if item.ExecutionOrder.Valid {
		rank := item.ExecutionOrder.Int
		out.ExecutionOrder = &rank
	}
	return out
}

func toHistoryDTO(h entities.WorkOrderHistory) dto.HistoryEntryDTO {
	return dto.HistoryEntryDTO{
		ID:             h.ID,
		TxID:           h.TxID.String(),
		FromStatus:     h.FromStatus.String,
		ToStatus:       h.ToStatus.String,
		FromDepartment: h.FromDepartment.String,
		ToDepartment:   h.ToDepartment.String,
		Observacao:     h.Observacao.String,
		ActorID:        h.ActorID,
		ActorNome:      h.ActorNome,
		CreatedAt:      h.CreatedAt.Local().Format("2006-01-02 15:04:05"),
	}
}

// GetOrdersByDepartment monta a visão de uma fila departamental. Ordens em
// serviço externo entram na fila do departamento que as emitiu.
func (s *WorkOrderService) GetOrdersByDepartment(ctx context.Context, queue string, filter utils.Filter) ([]dto.WorkOrderDTO, uint64, error) {
	statuses, ok := constants.QueueStatuses[queue]
	if !ok {
		return nil, 0, apperrors.NewInvalidInputError("departamento desconhecido: %s", queue)
	}

	orders, total, err := s.orderRepo.GetOrders(ctx, filter, statuses)
	if err != nil {
		s.logger.Error("erro ao listar ordens do departamento", zap.String("departamento", queue), zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.WorkOrderDTO, 0, len(orders))
	dept := constants.DepartmentFinalizados
	switch queue {
	case constants.QueueOficina:
		dept = constants.DepartmentOficina
	case constants.QueueAlmoxarifado:
		dept = constants.DepartmentAlmoxarifado
	case constants.QueueCompras:
		dept = constants.DepartmentCompras
	}
	for _, order := range orders {
		result = append(result, toWorkOrderDTO(order, dept))
	}

	if queue == constants.QueueFinalizados {
		return result, total, nil
	}

	externals, err := s.externalOrdersFor(ctx, dept)
	if err != nil {
		return nil, 0, err
	}
	// As externas vivem fora do cursor da paginação: entram uma vez só, na
	// primeira página. O total as inclui em todas para o paginador fechar.
	if filter.Offset == 0 {
		result = append(result, externals...)
	}
	return result, total + uint64(len(externals)), nil
}

// externalOrdersFor devolve as OS em serviço externo cujo departamento
// resolvido pelo histórico é o informado.
func (s *WorkOrderService) externalOrdersFor(ctx context.Context, dept constants.Department) ([]dto.WorkOrderDTO, error) {
	filter := utils.Filter{Limit: 200}
	externals, _, err := s.orderRepo.GetOrders(ctx, filter, []constants.Status{constants.StatusServicoExterno})
	if err != nil {
		s.logger.Error("erro ao listar ordens em serviço externo", zap.Error(err))
		return nil, err
	}
	if len(externals) == 0 {
		return []dto.WorkOrderDTO{}, nil
	}

	ids := make([]uint64, 0, len(externals))
	for _, order := range externals {
		ids = append(ids, order.ID)
	}
	histories, err := s.historyRepo.FindByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]dto.WorkOrderDTO, 0)
	for _, order := range externals {
		if ResolveExternalDepartment(histories[order.ID]) == dept {
			result = append(result, toWorkOrderDTO(order, dept))
		}
	}
	return result, nil
}

func (s *WorkOrderService) FindOrder(ctx context.Context, id uint64) (*dto.WorkOrderDTO, error) {
	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	var history []entities.WorkOrderHistory
	if order.Status == constants.StatusServicoExterno {
		history, err = s.historyRepo.FindByOrderID(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	out := toWorkOrderDTO(*order, DepartmentOf(order.Status, history))
	return &out, nil
}

func (s *WorkOrderService) GetHistory(ctx context.Context, id uint64) ([]dto.HistoryEntryDTO, error) {
	if _, err := s.orderRepo.FindOrder(ctx, id); err != nil {
		return nil, err
	}
	history, err := s.historyRepo.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := make([]dto.HistoryEntryDTO, 0, len(history))
	for _, entry := range history {
		result = append(result, toHistoryDTO(entry))
	}
	return result, nil
}

// CreateOrder abre a OS em "Aguardando Mecânico" e grava o primeiro registro
// da trilha.
func (s *WorkOrderService) CreateOrder(ctx context.Context, payload dto.CreateWorkOrderDTO, actor utils.Actor) (*dto.WorkOrderDTO, error) {
	if _, err := s.vehicleRepo.FindVehicle(ctx, payload.VehicleID); err != nil {
		return nil, err
	}

	order := entities.WorkOrder{
		Numero:    payload.Numero,
		VehicleID: payload.VehicleID,
		Descricao: payload.Descricao,
		Status:    constants.StatusAguardandoMecanico,
	}
	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("erro ao criar ordem de serviço", zap.String("numero", payload.Numero), zap.Error(err))
		return nil, err
	}

	entry := entities.WorkOrderHistory{
		WorkOrderID:  created.ID,
		TxID:         uuid.New(),
		ToStatus:     null.StringFrom(string(constants.StatusAguardandoMecanico)),
		ToDepartment: null.StringFrom(string(constants.DepartmentOficina)),
		ActorID:      actor.ID,
		ActorNome:    actor.Name,
	}
	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		return s.historyRepo.CreateInTx(ctx, tx, &entry)
	})
	if err != nil {
		s.logger.Error("erro ao gravar histórico de criação", zap.Uint64("orderID", created.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("ordem de serviço criada",
		zap.Uint64("orderID", created.ID),
		zap.String("numero", created.Numero),
		zap.Uint64("actorID", actor.ID))
	out := toWorkOrderDTO(*created, constants.DepartmentOficina)
	return &out, nil
}

func (s *WorkOrderService) UpdateOrder(ctx context.Context, id uint64, payload dto.UpdateWorkOrderDTO) (*dto.WorkOrderDTO, error) {
	updated, err := s.orderRepo.UpdateOrder(ctx, id, payload)
	if err != nil {
		s.logger.Error("erro ao atualizar ordem de serviço", zap.Uint64("orderID", id), zap.Error(err))
		return nil, err
	}
	return s.FindOrder(ctx, updated.ID)
}

func (s *WorkOrderService) DeleteOrder(ctx context.Context, id uint64) error {
	err := s.orderRepo.DeleteOrder(ctx, id)
	if err != nil {
		s.logger.Error("erro ao excluir ordem de serviço", zap.Uint64("orderID", id), zap.Error(err))
	}
	return err
}

// transition aplica uma mudança de status e o registro de trilha correspondente
// na mesma transação. O TxID amarra os dois efeitos.
func (s *WorkOrderService) transition(
	ctx context.Context,
	id uint64,
	validate func(from constants.Status) error,
	to constants.Status,
	fromDept func(from constants.Status, history []entities.WorkOrderHistory) constants.Department,
	toDept constants.Department,
	observacao string,
	actor utils.Actor,
) (*events.OrderStatusChangedEvent, error) {
	var event *events.OrderStatusChangedEvent

	err := repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		order, err := s.orderRepo.FindOrderForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := validate(order.Status); err != nil {
			return err
		}

		var history []entities.WorkOrderHistory
		if order.Status == constants.StatusServicoExterno {
			history, err = s.historyRepo.FindByOrderID(ctx, id)
			if err != nil {
				return err
			}
		}

		if err := s.orderRepo.UpdateStatusInTx(ctx, tx, id, to); err != nil {
			return err
		}

		entry := entities.WorkOrderHistory{
			WorkOrderID:    id,
			TxID:           uuid.New(),
			FromStatus:     null.StringFrom(string(order.Status)),
			ToStatus:       null.StringFrom(string(to)),
			FromDepartment: null.StringFrom(string(fromDept(order.Status, history))),
			ToDepartment:   null.StringFrom(string(toDept)),
			ActorID:        actor.ID,
			ActorNome:      actor.Name,
		}
		if observacao != "" {
			entry.Observacao = null.StringFrom(observacao)
		}
		if err := s.historyRepo.CreateInTx(ctx, tx, &entry); err != nil {
			return err
		}

		event = &events.OrderStatusChangedEvent{
			OrderID:    id,
			Numero:     order.Numero,
			FromStatus: order.Status,
			ToStatus:   to,
			ActorID:    actor.ID,
			ActorNome:  actor.Name,
			Observacao: observacao,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateStatus move a OS para outro status respeitando a tabela de transições.
func (s *WorkOrderService) UpdateStatus(ctx context.Context, id uint64, payload dto.UpdateStatusDTO, actor utils.Actor) (*dto.WorkOrderDTO, error) {
	to := constants.Status(payload.Status)
	if !to.Valid() {
		return nil, apperrors.NewInvalidInputError("status desconhecido: %s", payload.Status)
	}
	if to == constants.StatusServicoExterno {
		return nil, apperrors.NewInvalidInputError("use a operação de serviço externo para esse destino")
	}

	targetDept, _ := to.Department()
	event, err := s.transition(ctx, id,
		func(from constants.Status) error {
			if !constants.CanTransition(from, to) {
				s.logger.Warn("transição de status rejeitada",
					zap.Uint64("orderID", id),
					zap.String("de", string(from)),
					zap.String("para", string(to)))
				return apperrors.NewHttpError(422, fmt.Sprintf("transição de %q para %q não é permitida", from, to), apperrors.ErrInvalidTransition, nil)
			}
			return nil
		},
		to,
		func(from constants.Status, history []entities.WorkOrderHistory) constants.Department {
			return DepartmentOf(from, history)
		},
		targetDept,
		payload.Observacao,
		actor,
	)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, *event)
	s.logger.Info("status da ordem atualizado",
		zap.Uint64("orderID", id),
		zap.String("de", string(event.FromStatus)),
		zap.String("para", string(event.ToStatus)),
		zap.Uint64("actorID", actor.ID))
	return s.FindOrder(ctx, id)
}

// SendToExternal manda a OS para serviço externo. O departamento emissor fica
// registrado na trilha e continua respondendo pela ordem.
func (s *WorkOrderService) SendToExternal(ctx context.Context, id uint64, payload dto.ExternalServiceDTO, actor utils.Actor) (*dto.WorkOrderDTO, error) {
	event, err := s.transition(ctx, id,
		func(from constants.Status) error {
			if !constants.CanTransition(from, constants.StatusServicoExterno) {
				return apperrors.NewHttpError(422, fmt.Sprintf("ordem em %q não pode ir para serviço externo", from), apperrors.ErrInvalidTransition, nil)
			}
			return nil
		},
		constants.StatusServicoExterno,
		func(from constants.Status, history []entities.WorkOrderHistory) constants.Department {
			return DepartmentOf(from, history)
		},
		constants.DepartmentServicoExterno,
		payload.Observacao,
		actor,
	)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, *event)
	s.logger.Info("ordem enviada para serviço externo", zap.Uint64("orderID", id), zap.Uint64("actorID", actor.ID))
	return s.FindOrder(ctx, id)
}

// Reopen reabre uma OS finalizada em um status ativo.
func (s *WorkOrderService) Reopen(ctx context.Context, id uint64, payload dto.ReopenDTO, actor utils.Actor) (*dto.WorkOrderDTO, error) {
	to := constants.Status(payload.Status)
	if !constants.CanReopen(to) {
		return nil, apperrors.NewInvalidInputError("status de reabertura inválido: %s", payload.Status)
	}

	targetDept, _ := to.Department()
	event, err := s.transition(ctx, id,
		func(from constants.Status) error {
			if !from.IsFinal() {
				return apperrors.NewHttpError(422, "apenas ordens finalizadas podem ser reabertas", apperrors.ErrInvalidTransition, nil)
			}
			return nil
		},
		to,
		func(from constants.Status, history []entities.WorkOrderHistory) constants.Department {
			return constants.DepartmentFinalizados
		},
		targetDept,
		payload.Observacao,
		actor,
	)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, *event)
	s.logger.Info("ordem reaberta",
		zap.Uint64("orderID", id),
		zap.String("para", string(to)),
		zap.Uint64("actorID", actor.ID))
	return s.FindOrder(ctx, id)
}

// AddObservation anexa uma observação à trilha sem mudar o status.
func (s *WorkOrderService) AddObservation(ctx context.Context, id uint64, payload dto.ObservationDTO, actor utils.Actor) error {
	if _, err := s.orderRepo.FindOrder(ctx, id); err != nil {
		return err
	}

	entry := entities.WorkOrderHistory{
		WorkOrderID:  id,
		TxID:         uuid.New(),
		ToDepartment: null.StringFrom(payload.Departamento),
		Observacao:   null.StringFrom(payload.Texto),
		ActorID:      actor.ID,
		ActorNome:    actor.Name,
	}
	err := repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		return s.historyRepo.CreateInTx(ctx, tx, &entry)
	})
	if err != nil {
		s.logger.Error("erro ao gravar observação", zap.Uint64("orderID", id), zap.Error(err))
		return err
	}
	s.logger.Info("observação registrada", zap.Uint64("orderID", id), zap.Uint64("actorID", actor.ID))
	return nil
}
