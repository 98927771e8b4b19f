package services

import (
	"context"
	"math"
	"strings"
	"sync"
	"testing"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/eventbus"
	"fleet-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOrderRepo struct {
	repositories.WorkOrderRepositoryInterface

	mu     sync.Mutex
	orders []*repositories.WorkOrderItem
	fail   map[uint64]bool
}

func (f *fakeOrderRepo) ListActiveWithMechanic(ctx context.Context) ([]repositories.WorkOrderItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]repositories.WorkOrderItem, 0, len(f.orders))
	for _, o := range f.orders {
		if o.MechanicID.Valid && !o.Status.IsFinal() {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListActiveByMechanic(ctx context.Context, mechanicID uint64) ([]repositories.WorkOrderItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]repositories.WorkOrderItem, 0)
	for _, o := range f.orders {
		if o.MechanicID.Valid && o.MechanicID.Uint64 == mechanicID && !o.Status.IsFinal() {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindOrder(ctx context.Context, id uint64) (*repositories.WorkOrderItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.ID == id {
			item := *o
			return &item, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeOrderRepo) UpdateExecutionOrder(ctx context.Context, orderID, mechanicID uint64, rank int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[orderID] {
		return apperrors.ErrInternalServer
	}
	for _, o := range f.orders {
		if o.ID == orderID && o.MechanicID.Valid && o.MechanicID.Uint64 == mechanicID {
			o.ExecutionOrder = null.IntFrom(rank)
			return nil
		}
	}
	return apperrors.ErrOrderNotInQueue
}

func (f *fakeOrderRepo) ReassignMechanic(ctx context.Context, orderID, fromMechanicID, toMechanicID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.ID == orderID && o.MechanicID.Valid && o.MechanicID.Uint64 == fromMechanicID {
			o.MechanicID = null.Uint64From(toMechanicID)
			o.ExecutionOrder = null.Int{}
			return nil
		}
	}
	return apperrors.ErrOrderNotInQueue
}

type fakeMechanicRepo struct {
	repositories.MechanicRepositoryInterface

	mechanics []entities.Mechanic
}

func (f *fakeMechanicRepo) ListActive(ctx context.Context) ([]entities.Mechanic, error) {
	return f.mechanics, nil
}

func (f *fakeMechanicRepo) FindMechanic(ctx context.Context, id uint64) (*entities.Mechanic, error) {
	for _, m := range f.mechanics {
		if m.ID == id {
			mechanic := m
			return &mechanic, nil
		}
	}
	return nil, apperrors.ErrMechanicNotFound
}

func activeOrder(id uint64, numero string, mechanicID uint64, rank int) *repositories.WorkOrderItem {
	order := &repositories.WorkOrderItem{
		WorkOrder: entities.WorkOrder{
			ID:         id,
			Numero:     numero,
			Status:     constants.StatusFilaDeServico,
			MechanicID: null.Uint64From(mechanicID),
		},
	}
	if rank > 0 {
		order.ExecutionOrder = null.IntFrom(rank)
	}
	return order
}

func newPlanningFixture(orders ...*repositories.WorkOrderItem) (*PlanningService, *fakeOrderRepo) {
	orderRepo := &fakeOrderRepo{orders: orders, fail: map[uint64]bool{}}
	mechanicRepo := &fakeMechanicRepo{mechanics: []entities.Mechanic{
		{ID: 1, Nome: "Carlos", Ativo: true},
		{ID: 2, Nome: "João", Ativo: true},
	}}
	svc := NewPlanningService(orderRepo, mechanicRepo, eventbus.New(zap.NewNop()), zap.NewNop())
	return svc, orderRepo
}

func queueNumbers(board []dto.MechanicQueueDTO, mechanicID uint64) []string {
	for _, card := range board {
		if card.ID != mechanicID {
			continue
		}
		numbers := make([]string, 0, len(card.Ordens))
		for _, ordem := range card.Ordens {
			numbers = append(numbers, ordem.Numero)
		}
		return numbers
	}
	return nil
}

func TestOrderNumberRank(t *testing.T) {
	rank, ok := orderNumberRank("OS-42")
	assert.True(t, ok)
	assert.Equal(t, 42, rank)

	_, ok = orderNumberRank("SEM-NUMERO-")
	assert.False(t, ok)

	assert.True(t, lessByNumero("OS-2", "OS-10"), "comparação numérica, não lexicográfica")
	assert.True(t, lessByNumero("OS-A", "OS-B"), "sem sufixo numérico cai na ordem lexicográfica")

	rank, ok = orderNumberRank("OS-007")
	assert.True(t, ok)
	assert.Equal(t, 7, rank, "zeros à esquerda não contam")

	huge := "OS-" + strings.Repeat("9", 30)
	rank, ok = orderNumberRank(huge)
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt, rank, "sufixo gigante não estoura int")
	assert.True(t, lessByNumero("OS-2", huge))
	assert.False(t, lessByNumero(huge, "OS-2"))
}

func TestSortQueueRankedFirstThenNumeric(t *testing.T) {
	queue := []repositories.WorkOrderItem{
		*activeOrder(1, "OS-10", 1, 0),
		*activeOrder(2, "OS-2", 1, 0),
		*activeOrder(3, "OS-7", 1, 2),
		*activeOrder(4, "OS-99", 1, 1),
	}

	sortQueue(queue)

	got := make([]string, 0, len(queue))
	for _, o := range queue {
		got = append(got, o.Numero)
	}
	// Posições gravadas primeiro (1, 2), depois as sem posição por sufixo.
	assert.Equal(t, []string{"OS-99", "OS-7", "OS-2", "OS-10"}, got)
}

func TestNormalizeQueueWritesOnlyChanges(t *testing.T) {
	queue := []repositories.WorkOrderItem{
		*activeOrder(1, "OS-1", 1, 1),
		*activeOrder(2, "OS-2", 1, 5),
		*activeOrder(3, "OS-3", 1, 0),
	}

	updates := normalizeQueue(1, queue)

	require.Len(t, updates, 2, "a posição 1 já está correta, só as outras duas mudam")
	assert.Equal(t, rankUpdate{OrderID: 2, MechanicID: 1, Rank: 2}, updates[0])
	assert.Equal(t, rankUpdate{OrderID: 3, MechanicID: 1, Rank: 3}, updates[1])
}

func TestGetBoardNormalizesAndPersists(t *testing.T) {
	svc, repo := newPlanningFixture(
		activeOrder(1, "OS-30", 1, 0),
		activeOrder(2, "OS-4", 1, 7),
		activeOrder(3, "OS-5", 2, 0),
	)

	board, err := svc.GetBoard(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"OS-4", "OS-30"}, queueNumbers(board, 1))
	assert.Equal(t, []string{"OS-5"}, queueNumbers(board, 2))

	// A normalização persistiu as posições densas 1..N.
	persisted, err := repo.ListActiveByMechanic(context.Background(), 1)
	require.NoError(t, err)
	sortQueue(persisted)
	for i, o := range persisted {
		require.True(t, o.ExecutionOrder.Valid)
		assert.Equal(t, i+1, o.ExecutionOrder.Int)
	}
}

func TestBoardOrdersMostLoadedMechanicFirst(t *testing.T) {
	svc, _ := newPlanningFixture(
		activeOrder(1, "OS-1", 1, 1),
		activeOrder(2, "OS-2", 2, 1),
		activeOrder(3, "OS-3", 2, 2),
		activeOrder(4, "OS-4", 2, 3),
	)

	board, err := svc.GetBoard(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, board, 2)

	// João (3 ordens) abre o quadro mesmo vindo depois de Carlos no cadastro.
	assert.Equal(t, uint64(2), board[0].ID)
	assert.Equal(t, uint64(1), board[1].ID)
}

func TestReorderMovesWithinQueue(t *testing.T) {
	svc, _ := newPlanningFixture(
		activeOrder(1, "OS-1", 1, 1),
		activeOrder(2, "OS-2", 1, 2),
		activeOrder(3, "OS-3", 1, 3),
	)

	result, err := svc.Reorder(context.Background(), dto.ReorderDTO{
		MechanicID: 1, DePosicao: 0, ParaPosicao: 2,
	}, "")
	require.NoError(t, err)

	assert.Equal(t, result.Total, result.Atualizadas)
	assert.Equal(t, []string{"OS-2", "OS-3", "OS-1"}, queueNumbers(result.Mecanicos, 1))
}

func TestReorderRejectsPositionOutOfRange(t *testing.T) {
	svc, _ := newPlanningFixture(
		activeOrder(1, "OS-1", 1, 1),
		activeOrder(2, "OS-2", 1, 2),
	)

	_, err := svc.Reorder(context.Background(), dto.ReorderDTO{
		MechanicID: 1, DePosicao: 0, ParaPosicao: 5,
	}, "")
	require.Error(t, err)
}

func TestReorderReportsPartialSuccess(t *testing.T) {
	svc, repo := newPlanningFixture(
		activeOrder(1, "OS-1", 1, 1),
		activeOrder(2, "OS-2", 1, 2),
		activeOrder(3, "OS-3", 1, 3),
	)
	repo.fail[3] = true

	result, err := svc.Reorder(context.Background(), dto.ReorderDTO{
		MechanicID: 1, DePosicao: 0, ParaPosicao: 2,
	}, "")
	require.NoError(t, err, "falha parcial não derruba a operação")

	assert.Less(t, result.Atualizadas, result.Total)
	// O quadro devolvido reflete o que de fato foi gravado: a OS-3 manteve a
	// posição antiga.
	assert.Equal(t, []string{"OS-2", "OS-1", "OS-3"}, queueNumbers(result.Mecanicos, 1))
}

func TestReassignMovesToEndOfTargetQueue(t *testing.T) {
	svc, _ := newPlanningFixture(
		activeOrder(1, "OS-1", 1, 1),
		activeOrder(2, "OS-2", 1, 2),
		activeOrder(3, "OS-3", 2, 1),
	)

	result, err := svc.Reassign(context.Background(), dto.ReassignDTO{
		OrderID: 1, DeMechanicID: 1, ParaMechanicID: 2,
	}, "", utils.Actor{ID: 9, Name: "Supervisor"})
	require.NoError(t, err)

	assert.Equal(t, []string{"OS-2"}, queueNumbers(result.Mecanicos, 1))
	assert.Equal(t, []string{"OS-3", "OS-1"}, queueNumbers(result.Mecanicos, 2), "a ordem entra no fim da fila de destino")
}

func TestReassignRejectsSameMechanic(t *testing.T) {
	svc, _ := newPlanningFixture(activeOrder(1, "OS-1", 1, 1))

	_, err := svc.Reassign(context.Background(), dto.ReassignDTO{
		OrderID: 1, DeMechanicID: 1, ParaMechanicID: 1,
	}, "", utils.Actor{ID: 9})
	require.Error(t, err)
}

func TestSetDisplayOrderIsPerSession(t *testing.T) {
	svc, _ := newPlanningFixture(
		activeOrder(1, "OS-1", 1, 1),
		activeOrder(2, "OS-2", 2, 1),
	)

	_, err := svc.SetDisplayOrder(context.Background(), "", dto.DisplayOrderDTO{MechanicIDs: []uint64{2, 1}})
	require.Error(t, err, "ordenação do quadro exige sessão")

	boardA, err := svc.SetDisplayOrder(context.Background(), "sessao-a", dto.DisplayOrderDTO{MechanicIDs: []uint64{2, 1}})
	require.NoError(t, err)
	require.Len(t, boardA, 2)
	assert.Equal(t, uint64(2), boardA[0].ID)

	// Outra sessão não enxerga a preferência da primeira.
	boardB, err := svc.GetBoard(context.Background(), "sessao-b")
	require.NoError(t, err)
	require.Len(t, boardB, 2)
	assert.Equal(t, uint64(1), boardB[0].ID)
}
