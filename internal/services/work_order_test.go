package services

import (
	"context"
	"testing"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	"fleet-system/pkg/eventbus"
	"fleet-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDeptListingRepo struct {
	repositories.WorkOrderRepositoryInterface

	deptOrders []repositories.WorkOrderItem
	externals  []repositories.WorkOrderItem
}

func (f *fakeDeptListingRepo) GetOrders(ctx context.Context, filter utils.Filter, statuses []constants.Status) ([]repositories.WorkOrderItem, uint64, error) {
	if len(statuses) == 1 && statuses[0] == constants.StatusServicoExterno {
		return f.externals, uint64(len(f.externals)), nil
	}
	total := uint64(len(f.deptOrders))
	start := filter.Offset
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if filter.Limit == 0 || end > total {
		end = total
	}
	return f.deptOrders[start:end], total, nil
}

type fakeHistoryRepo struct {
	repositories.WorkOrderHistoryRepositoryInterface

	byOrder map[uint64][]entities.WorkOrderHistory
}

func (f *fakeHistoryRepo) FindByOrderIDs(ctx context.Context, orderIDs []uint64) (map[uint64][]entities.WorkOrderHistory, error) {
	return f.byOrder, nil
}

func numbersOf(orders []dto.WorkOrderDTO) []string {
	numbers := make([]string, 0, len(orders))
	for _, ordem := range orders {
		numbers = append(numbers, ordem.Numero)
	}
	return numbers
}

func TestDepartmentListingAppendsExternalsOnlyOnFirstPage(t *testing.T) {
	deptOrder := func(id uint64, numero string) repositories.WorkOrderItem {
		return repositories.WorkOrderItem{WorkOrder: entities.WorkOrder{
			ID: id, Numero: numero, Status: constants.StatusFilaDeServico,
		}}
	}
	external := repositories.WorkOrderItem{WorkOrder: entities.WorkOrder{
		ID: 9, Numero: "OS-9", Status: constants.StatusServicoExterno,
	}}

	orderRepo := &fakeDeptListingRepo{
		deptOrders: []repositories.WorkOrderItem{deptOrder(1, "OS-1"), deptOrder(2, "OS-2"), deptOrder(3, "OS-3")},
		externals:  []repositories.WorkOrderItem{external},
	}
	historyRepo := &fakeHistoryRepo{byOrder: map[uint64][]entities.WorkOrderHistory{
		9: {historyEntry(constants.DepartmentOficina, constants.DepartmentServicoExterno)},
	}}
	svc := NewWorkOrderService(nil, orderRepo, historyRepo, nil, eventbus.New(zap.NewNop()), zap.NewNop())

	page1, total, err := svc.GetOrdersByDepartment(context.Background(), constants.QueueOficina, utils.Filter{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), total)
	assert.Equal(t, []string{"OS-1", "OS-2", "OS-9"}, numbersOf(page1))

	// A página seguinte segue o cursor normal; a externa não se repete.
	page2, total, err := svc.GetOrdersByDepartment(context.Background(), constants.QueueOficina, utils.Filter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), total, "o total é o mesmo em todas as páginas")
	assert.Equal(t, []string{"OS-3"}, numbersOf(page2))
}
