package services

import (
	"context"
	"math"
	"sort"
	"sync"

	"fleet-system/internal/dto"
	"fleet-system/internal/events"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/eventbus"
	"fleet-system/pkg/utils"

	"go.uber.org/zap"
)

// rankUpdate é uma gravação pendente de posição na fila de um mecânico.
type rankUpdate struct {
	OrderID    uint64
	MechanicID uint64
	Rank       int
}

// orderNumberRank extrai o sufixo numérico do número da OS. "OS-2" vem antes
// de "OS-10" porque a comparação é numérica, não lexicográfica.
func orderNumberRank(numero string) (int, bool) {
	end := len(numero)
	start := end
	for start > 0 && numero[start-1] >= '0' && numero[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	digits := numero[start:end]
	for len(digits) > 1 && digits[0] == '0' {
		digits = digits[1:]
	}
	// Sufixos além de 18 dígitos estourariam int; vão para o fim da fila e o
	// desempate volta a ser textual.
	if len(digits) > 18 {
		return math.MaxInt, true
	}
	value := 0
	for _, c := range digits {
		value = value*10 + int(c-'0')
	}
	return value, true
}

func lessByNumero(a, b string) bool {
	rankA, okA := orderNumberRank(a)
	rankB, okB := orderNumberRank(b)
	if okA && okB && rankA != rankB {
		return rankA < rankB
	}
	return a < b
}

// sortQueue ordena a fila de um mecânico: posições gravadas primeiro, em ordem
// crescente; ordens sem posição depois de todas, pelo sufixo numérico do
// número. Empates de posição também caem no sufixo numérico.
func sortQueue(orders []repositories.WorkOrderItem) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if a.ExecutionOrder.Valid != b.ExecutionOrder.Valid {
			return a.ExecutionOrder.Valid
		}
		if a.ExecutionOrder.Valid && a.ExecutionOrder.Int != b.ExecutionOrder.Int {
			return a.ExecutionOrder.Int < b.ExecutionOrder.Int
		}
		return lessByNumero(a.Numero, b.Numero)
	})
}

// normalizeQueue devolve só as gravações necessárias para a fila já ordenada
// ficar densa em 1..N. Posições já corretas não geram escrita.
func normalizeQueue(mechanicID uint64, sorted []repositories.WorkOrderItem) []rankUpdate {
	updates := make([]rankUpdate, 0)
	for i, order := range sorted {
		rank := i + 1
		if order.ExecutionOrder.Valid && order.ExecutionOrder.Int == rank {
			continue
		}
		updates = append(updates, rankUpdate{OrderID: order.ID, MechanicID: mechanicID, Rank: rank})
	}
	return updates
}

// sessionBoardOrder guarda, por sessão de navegador, a ordem visual dos
// cartões de mecânico. Vive só na memória do processo.
type sessionBoardOrder struct {
	mu   sync.RWMutex
	byID map[string][]uint64
}

func (s *sessionBoardOrder) get(sessionID string) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[sessionID]
}

func (s *sessionBoardOrder) set(sessionID string, mechanicIDs []uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[sessionID] = mechanicIDs
}

type PlanningService struct {
	orderRepo    repositories.WorkOrderRepositoryInterface
	mechanicRepo repositories.MechanicRepositoryInterface
	bus          *eventbus.Bus
	logger       *zap.Logger
	sessions     *sessionBoardOrder
}

func NewPlanningService(
	orderRepo repositories.WorkOrderRepositoryInterface,
	mechanicRepo repositories.MechanicRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *PlanningService {
	return &PlanningService{
		orderRepo:    orderRepo,
		mechanicRepo: mechanicRepo,
		bus:          bus,
		logger:       logger,
		sessions:     &sessionBoardOrder{byID: make(map[string][]uint64)},
	}
}

// applyRankUpdates grava as posições em paralelo, uma OS por vez. Falhas
// individuais não derrubam o lote: o retorno diz quantas gravações entraram.
func (s *PlanningService) applyRankUpdates(ctx context.Context, updates []rankUpdate) (int, int) {
	if len(updates) == 0 {
		return 0, 0
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	applied := 0

	for _, update := range updates {
		wg.Add(1)
		go func(u rankUpdate) {
			defer wg.Done()
			if err := s.orderRepo.UpdateExecutionOrder(ctx, u.OrderID, u.MechanicID, u.Rank); err != nil {
				s.logger.Warn("falha ao gravar posição na fila",
					zap.Uint64("orderID", u.OrderID),
					zap.Uint64("mechanicID", u.MechanicID),
					zap.Int("rank", u.Rank),
					zap.Error(err))
				return
			}
			mu.Lock()
			applied++
			mu.Unlock()
		}(update)
	}
	wg.Wait()

	if applied < len(updates) {
		s.logger.Warn("lote de posições aplicado parcialmente",
			zap.Int("aplicadas", applied),
			zap.Int("total", len(updates)))
	}
	return applied, len(updates)
}

// buildBoard monta o quadro completo: mecânicos ativos com suas filas
// ordenadas e normalizadas. A normalização persiste o que estiver fora do
// lugar antes de devolver.
func (s *PlanningService) buildBoard(ctx context.Context, sessionID string) ([]dto.MechanicQueueDTO, error) {
	mechanics, err := s.mechanicRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("erro ao listar mecânicos", zap.Error(err))
		return nil, err
	}
	orders, err := s.orderRepo.ListActiveWithMechanic(ctx)
	if err != nil {
		s.logger.Error("erro ao listar ordens do planejamento", zap.Error(err))
		return nil, err
	}

	grouped := make(map[uint64][]repositories.WorkOrderItem, len(mechanics))
	for _, order := range orders {
		mechanicID := order.MechanicID.Uint64
		grouped[mechanicID] = append(grouped[mechanicID], order)
	}

	allUpdates := make([]rankUpdate, 0)
	for mechanicID, queue := range grouped {
		sortQueue(queue)
		allUpdates = append(allUpdates, normalizeQueue(mechanicID, queue)...)
		for i := range queue {
			rank := i + 1
			queue[i].ExecutionOrder.SetValid(rank)
		}
	}
	s.applyRankUpdates(ctx, allUpdates)

	board := make([]dto.MechanicQueueDTO, 0, len(mechanics))
	for _, mechanic := range mechanics {
		queue := grouped[mechanic.ID]
		ordens := make([]dto.WorkOrderDTO, 0, len(queue))
		for _, order := range queue {
			dept := constants.DepartmentOficina
			if d, ok := order.Status.Department(); ok {
				dept = d
			}
			ordens = append(ordens, toWorkOrderDTO(order, dept))
		}
		board = append(board, dto.MechanicQueueDTO{ID: mechanic.ID, Nome: mechanic.Nome, Ordens: ordens})
	}
	sortBoardByLoad(board)
	return s.applyDisplayOrder(sessionID, board), nil
}

// sortBoardByLoad é a ordem padrão dos cartões: mecânico mais carregado
// primeiro, empate pelo nome. A preferência da sessão se sobrepõe a ela.
func sortBoardByLoad(board []dto.MechanicQueueDTO) {
	sort.SliceStable(board, func(i, j int) bool {
		if len(board[i].Ordens) != len(board[j].Ordens) {
			return len(board[i].Ordens) > len(board[j].Ordens)
		}
		return board[i].Nome < board[j].Nome
	})
}

// applyDisplayOrder reordena os cartões conforme a preferência da sessão.
// Mecânicos fora da preferência mantêm a ordem padrão, depois dos demais.
func (s *PlanningService) applyDisplayOrder(sessionID string, board []dto.MechanicQueueDTO) []dto.MechanicQueueDTO {
	if sessionID == "" {
		return board
	}
	preferred := s.sessions.get(sessionID)
	if len(preferred) == 0 {
		return board
	}

	byID := make(map[uint64]dto.MechanicQueueDTO, len(board))
	for _, card := range board {
		byID[card.ID] = card
	}

	ordered := make([]dto.MechanicQueueDTO, 0, len(board))
	seen := make(map[uint64]bool, len(preferred))
	for _, id := range preferred {
		if card, ok := byID[id]; ok && !seen[id] {
			ordered = append(ordered, card)
			seen[id] = true
		}
	}
	for _, card := range board {
		if !seen[card.ID] {
			ordered = append(ordered, card)
		}
	}
	return ordered
}

func (s *PlanningService) GetBoard(ctx context.Context, sessionID string) ([]dto.MechanicQueueDTO, error) {
	return s.buildBoard(ctx, sessionID)
}

// Reorder move uma OS de uma posição para outra dentro da fila do mecânico e
// regrava as posições afetadas. O quadro devolvido reflete o banco, inclusive
// quando parte do lote falhou.
func (s *PlanningService) Reorder(ctx context.Context, payload dto.ReorderDTO, sessionID string) (*dto.PlanningResultDTO, error) {
	if _, err := s.mechanicRepo.FindMechanic(ctx, payload.MechanicID); err != nil {
		return nil, err
	}

	queue, err := s.orderRepo.ListActiveByMechanic(ctx, payload.MechanicID)
	if err != nil {
		s.logger.Error("erro ao carregar fila do mecânico", zap.Uint64("mechanicID", payload.MechanicID), zap.Error(err))
		return nil, err
	}
	sortQueue(queue)

	size := len(queue)
	if payload.DePosicao >= size || payload.ParaPosicao >= size {
		return nil, apperrors.NewInvalidInputError("posição fora da fila: a fila tem %d ordens", size)
	}

	moved := queue[payload.DePosicao]
	queue = append(queue[:payload.DePosicao], queue[payload.DePosicao+1:]...)
	queue = append(queue[:payload.ParaPosicao], append([]repositories.WorkOrderItem{moved}, queue[payload.ParaPosicao:]...)...)

	updates := normalizeQueue(payload.MechanicID, queue)
	applied, total := s.applyRankUpdates(ctx, updates)

	board, err := s.buildBoard(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("fila do mecânico reordenada",
		zap.Uint64("mechanicID", payload.MechanicID),
		zap.Uint64("orderID", moved.ID),
		zap.Int("aplicadas", applied),
		zap.Int("total", total))
	return &dto.PlanningResultDTO{Total: total, Atualizadas: applied, Mecanicos: board}, nil
}

// Reassign transfere uma OS para a fila de outro mecânico. A ordem entra no
// fim da fila de destino e as duas filas são renumeradas.
func (s *PlanningService) Reassign(ctx context.Context, payload dto.ReassignDTO, sessionID string, actor utils.Actor) (*dto.PlanningResultDTO, error) {
	if payload.DeMechanicID == payload.ParaMechanicID {
		return nil, apperrors.NewInvalidInputError("a ordem já está com esse mecânico")
	}
	fromMechanic, err := s.mechanicRepo.FindMechanic(ctx, payload.DeMechanicID)
	if err != nil {
		return nil, err
	}
	toMechanic, err := s.mechanicRepo.FindMechanic(ctx, payload.ParaMechanicID)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.FindOrder(ctx, payload.OrderID)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.ReassignMechanic(ctx, payload.OrderID, payload.DeMechanicID, payload.ParaMechanicID); err != nil {
		s.logger.Error("erro ao reatribuir ordem",
			zap.Uint64("orderID", payload.OrderID),
			zap.Uint64("de", payload.DeMechanicID),
			zap.Uint64("para", payload.ParaMechanicID),
			zap.Error(err))
		return nil, err
	}

	applied, total := 0, 0
	for _, mechanicID := range []uint64{payload.DeMechanicID, payload.ParaMechanicID} {
		queue, err := s.orderRepo.ListActiveByMechanic(ctx, mechanicID)
		if err != nil {
			return nil, err
		}
		sortQueue(queue)
		a, t := s.applyRankUpdates(ctx, normalizeQueue(mechanicID, queue))
		applied += a
		total += t
	}

	s.bus.Publish(ctx, events.OrderReassignedEvent{
		OrderID:      order.ID,
		Numero:       order.Numero,
		FromMechanic: fromMechanic.Nome,
		ToMechanic:   toMechanic.Nome,
		ActorID:      actor.ID,
		ActorNome:    actor.Name,
	})

	board, err := s.buildBoard(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("ordem reatribuída",
		zap.Uint64("orderID", order.ID),
		zap.String("de", fromMechanic.Nome),
		zap.String("para", toMechanic.Nome),
		zap.Uint64("actorID", actor.ID))
	return &dto.PlanningResultDTO{Total: total, Atualizadas: applied, Mecanicos: board}, nil
}

// SetDisplayOrder guarda a ordem visual dos cartões para a sessão informada.
func (s *PlanningService) SetDisplayOrder(ctx context.Context, sessionID string, payload dto.DisplayOrderDTO) ([]dto.MechanicQueueDTO, error) {
	if sessionID == "" {
		return nil, apperrors.NewInvalidInputError("cabeçalho X-Session-ID é obrigatório para ordenar o quadro")
	}
	s.sessions.set(sessionID, payload.MechanicIDs)
	return s.buildBoard(ctx, sessionID)
}
