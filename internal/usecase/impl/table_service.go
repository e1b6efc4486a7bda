package impl

import (
	"context"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	"comanda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tableService manages dining tables. Quick actions go through the occupancy
// state machine; the admin SetStatus path bypasses it on purpose (admin
// override policy). Nothing here updates optimistically: a failed store write
// returns the error and the board re-reads.
type tableService struct {
	tableRepo repository.TableRepository
	qrService service.QRCodeService
}

// TableServiceParams holds dependencies for TableService, injected by Fx.
type TableServiceParams struct {
	fx.In

	TableRepo repository.TableRepository
	QRService service.QRCodeService
}

// NewTableService creates the table board/editor service.
func NewTableService(params TableServiceParams) usecase.TableUsecase {
	return &tableService{
		tableRepo: params.TableRepo,
		qrService: params.QRService,
	}
}

// List retrieves all tables.
func (s *tableService) List(ctx context.Context) ([]*entity.Table, error) {
	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}

	return tables, nil
}

// Create validates the input and persists a new table. An omitted status
// defaults to "libre".
func (s *tableService) Create(ctx context.Context, input usecase.TableInput) (*entity.Table, error) {
	table, err := tableFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}

// Update validates the input and replaces the table row. The path parameter,
// not the body, names the target table.
func (s *tableService) Update(ctx context.Context, number int, input usecase.TableInput) (*entity.Table, error) {
	input.Number = number
	table, err := tableFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.tableRepo.Update(ctx, table); err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return nil, domainerrors.ErrTableNotFound
		}

		return nil, err
	}

	return table, nil
}

// SetStatus is the admin override: any valid status, from any status.
func (s *tableService) SetStatus(ctx context.Context, number int, status entity.TableStatus) error {
	if !status.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("estado de mesa desconocido")
	}

	if err := s.tableRepo.UpdateStatus(ctx, number, status); err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return domainerrors.ErrTableNotFound
		}

		return errors.Wrap(err, "failed to set table status")
	}

	return nil
}

// Occupy is the waiter quick action "Ocupar".
func (s *tableService) Occupy(ctx context.Context, number int) (*entity.Table, error) {
	return s.quickTransition(ctx, number, entity.TableStatus.Occupy)
}

// Release is the waiter quick action "Liberar".
func (s *tableService) Release(ctx context.Context, number int) (*entity.Table, error) {
	return s.quickTransition(ctx, number, entity.TableStatus.Release)
}

// quickTransition reads the current status, applies one state-machine edge
// and writes the single status field back.
func (s *tableService) quickTransition(ctx context.Context, number int, step func(entity.TableStatus) (entity.TableStatus, error)) (*entity.Table, error) {
	table, err := s.tableRepo.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return nil, domainerrors.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to find table")
	}

	next, err := step(table.Status)
	if err != nil {
		return nil, domainerrors.ErrTableActionNotAllowed.WithDetails(string(table.Status))
	}

	if err := s.tableRepo.UpdateStatus(ctx, number, next); err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return nil, domainerrors.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to update table status")
	}

	table.Status = next

	return table, nil
}

// Delete removes the table row.
func (s *tableService) Delete(ctx context.Context, number int) error {
	if err := s.tableRepo.Delete(ctx, number); err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return domainerrors.ErrTableNotFound
		}

		return err
	}

	return nil
}

// MenuQR renders the printable QR for the table after confirming it exists.
func (s *tableService) MenuQR(ctx context.Context, number int) ([]byte, error) {
	if _, err := s.tableRepo.FindByNumber(ctx, number); err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return nil, domainerrors.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to find table")
	}

	png, err := s.qrService.TableMenuQR(number)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render table QR")
	}

	return png, nil
}

// tableFromInput applies the table field rules and builds the entity.
func tableFromInput(input usecase.TableInput) (*entity.Table, error) {
	status := entity.TableStatus(input.Status)
	if input.Status == "" {
		status = entity.TableStatusLibre
	}

	table := &entity.Table{
		Number:   input.Number,
		Salon:    input.Salon,
		Capacity: input.Capacity,
		Status:   status,
	}

	if err := table.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return table, nil
}
