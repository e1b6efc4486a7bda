package impl

import (
	"context"
	"testing"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/mocks"
	"comanda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tableFixture struct {
	tableRepo *mocks.MockTableRepository
	qrService *mocks.MockQRCodeService
	service   usecase.TableUsecase
}

func createTestTableService(t *testing.T) *tableFixture {
	t.Helper()

	tableRepo := &mocks.MockTableRepository{}
	qrService := &mocks.MockQRCodeService{}

	return &tableFixture{
		tableRepo: tableRepo,
		qrService: qrService,
		service: NewTableService(TableServiceParams{
			TableRepo: tableRepo,
			QRService: qrService,
		}),
	}
}

func TestTableService_Create_DefaultsToLibre(t *testing.T) {
	fx := createTestTableService(t)

	ctx := context.Background()
	fx.tableRepo.On("Create", ctx, mock.AnythingOfType("*entity.Table")).Return(nil)

	table, err := fx.service.Create(ctx, usecase.TableInput{Number: 7, Salon: 2, Capacity: 4})
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusLibre, table.Status)
}

func TestTableService_Create_InvalidSalon(t *testing.T) {
	fx := createTestTableService(t)

	table, err := fx.service.Create(context.Background(), usecase.TableInput{Number: 7, Salon: 5, Capacity: 4})
	assert.Error(t, err)
	assert.Nil(t, table)
	fx.tableRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTableService_Occupy_FromLibre(t *testing.T) {
	fx := createTestTableService(t)

	ctx := context.Background()
	fx.tableRepo.On("FindByNumber", ctx, 3).
		Return(&entity.Table{Number: 3, Salon: 1, Capacity: 2, Status: entity.TableStatusLibre}, nil)
	fx.tableRepo.On("UpdateStatus", ctx, 3, entity.TableStatusOcupada).Return(nil)

	table, err := fx.service.Occupy(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusOcupada, table.Status)
	fx.tableRepo.AssertExpectations(t)
}

func TestTableService_Occupy_FromOcupadaRejected(t *testing.T) {
	fx := createTestTableService(t)

	ctx := context.Background()
	fx.tableRepo.On("FindByNumber", ctx, 3).
		Return(&entity.Table{Number: 3, Salon: 1, Capacity: 2, Status: entity.TableStatusOcupada}, nil)

	table, err := fx.service.Occupy(ctx, 3)
	assert.Nil(t, table)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TABLE_ACTION_NOT_ALLOWED", appErr.ErrorCode())

	// The rejected quick action never writes.
	fx.tableRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestTableService_Release_FromReservadaRejected(t *testing.T) {
	fx := createTestTableService(t)

	ctx := context.Background()
	fx.tableRepo.On("FindByNumber", ctx, 9).
		Return(&entity.Table{Number: 9, Salon: 1, Capacity: 6, Status: entity.TableStatusReservada}, nil)

	table, err := fx.service.Release(ctx, 9)
	assert.Nil(t, table)
	assert.Error(t, err)
	fx.tableRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestTableService_Release_FromOcupada(t *testing.T) {
	fx := createTestTableService(t)

	ctx := context.Background()
	fx.tableRepo.On("FindByNumber", ctx, 9).
		Return(&entity.Table{Number: 9, Salon: 1, Capacity: 6, Status: entity.TableStatusOcupada}, nil)
	fx.tableRepo.On("UpdateStatus", ctx, 9, entity.TableStatusLibre).Return(nil)

	table, err := fx.service.Release(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusLibre, table.Status)
}

func TestTableService_QuickAction_NoOptimisticUpdate(t *testing.T) {
	fx := createTestTableService(t)

	ctx := context.Background()
	fx.tableRepo.On("FindByNumber", ctx, 4).
		Return(&entity.Table{Number: 4, Salon: 1, Capacity: 2, Status: entity.TableStatusLibre}, nil)
	fx.tableRepo.On("UpdateStatus", ctx, 4, entity.TableStatusOcupada).Return(assert.AnError)

	// A failed store write surfaces the error instead of reporting the
	// transition as done.
	table, err := fx.service.Occupy(ctx, 4)
	assert.Error(t, err)
	assert.Nil(t, table)
}

func TestTableService_SetStatus_AdminOverride(t *testing.T) {
	fx := createTestTableService(t)

	ctx := context.Background()
	fx.tableRepo.On("UpdateStatus", ctx, 5, entity.TableStatusReservada).Return(nil)

	// The admin path writes any valid status without reading the current one.
	err := fx.service.SetStatus(ctx, 5, entity.TableStatusReservada)
	assert.NoError(t, err)
	fx.tableRepo.AssertNotCalled(t, "FindByNumber", mock.Anything, mock.Anything)
}

func TestTableService_SetStatus_UnknownStatus(t *testing.T) {
	fx := createTestTableService(t)

	err := fx.service.SetStatus(context.Background(), 5, entity.TableStatus("pintada"))
	assert.Error(t, err)
	fx.tableRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestTableService_Occupy_TableNotFound(t *testing.T) {
	fx := createTestTableService(t)

	ctx := context.Background()
	fx.tableRepo.On("FindByNumber", ctx, 44).Return(nil, repository.ErrTableNotFound)

	table, err := fx.service.Occupy(ctx, 44)
	assert.Nil(t, table)
	assert.ErrorIs(t, err, domainerrors.ErrTableNotFound)
}

func TestTableService_MenuQR(t *testing.T) {
	fx := createTestTableService(t)

	ctx := context.Background()
	fx.tableRepo.On("FindByNumber", ctx, 2).
		Return(&entity.Table{Number: 2, Salon: 1, Capacity: 2, Status: entity.TableStatusLibre}, nil)
	fx.qrService.On("TableMenuQR", 2).Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := fx.service.MenuQR(ctx, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestTableService_MenuQR_TableNotFound(t *testing.T) {
	fx := createTestTableService(t)

	ctx := context.Background()
	fx.tableRepo.On("FindByNumber", ctx, 2).Return(nil, repository.ErrTableNotFound)

	png, err := fx.service.MenuQR(ctx, 2)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrTableNotFound)
	fx.qrService.AssertNotCalled(t, "TableMenuQR", mock.Anything)
}
