package postgres

import (
	"context"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tableRepository implements repository.TableRepository using GORM.
type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository is the constructor for tableRepository.
func NewTableRepository(db *gorm.DB) repository.TableRepository {
	return &tableRepository{
		db: db,
	}
}

// List retrieves all tables ordered by number.
func (repo *tableRepository) List(ctx context.Context) ([]*entity.Table, error) {
	var tableModels []*model.TableModel

	if err := repo.db.WithContext(ctx).
		Order("number ASC").
		Find(&tableModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}

	tables := make([]*entity.Table, 0, len(tableModels))
	for _, tableM := range tableModels {
		tables = append(tables, toTableDomain(tableM))
	}

	return tables, nil
}

// FindByNumber retrieves a single table by its number.
func (repo *tableRepository) FindByNumber(ctx context.Context, number int) (*entity.Table, error) {
	var tableM model.TableModel

	if err := repo.db.WithContext(ctx).
		Where("number = ?", number).
		First(&tableM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to find table by number")
	}

	return toTableDomain(&tableM), nil
}

// Create persists a new table row.
func (repo *tableRepository) Create(ctx context.Context, table *entity.Table) error {
	tableM := fromTableDomain(table)

	if err := repo.db.WithContext(ctx).Create(tableM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTableNumberTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create table")
	}

	return nil
}

// Update replaces the mutable fields of a table row by number.
func (repo *tableRepository) Update(ctx context.Context, table *entity.Table) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TableModel{}).
		Where("number = ?", table.Number).
		Select("salon", "capacity", "status").
		Updates(fromTableDomain(table))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update table")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTableNotFound
	}

	return nil
}

// UpdateStatus writes only the occupancy status, keyed by table number.
func (repo *tableRepository) UpdateStatus(ctx context.Context, number int, status entity.TableStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TableModel{}).
		Where("number = ?", number).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update table status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTableNotFound
	}

	return nil
}

// Delete removes the table row by number.
func (repo *tableRepository) Delete(ctx context.Context, number int) error {
	result := repo.db.WithContext(ctx).
		Where("number = ?", number).
		Delete(&model.TableModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete table")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTableNotFound
	}

	return nil
}

// --- Mapper functions ---

func toTableDomain(data *model.TableModel) *entity.Table {
	if data == nil {
		return nil
	}

	return &entity.Table{
		Number:   data.Number,
		Salon:    data.Salon,
		Capacity: data.Capacity,
		Status:   entity.TableStatus(data.Status),
	}
}

func fromTableDomain(data *entity.Table) *model.TableModel {
	if data == nil {
		return nil
	}

	return &model.TableModel{
		Number:   data.Number,
		Salon:    data.Salon,
		Capacity: data.Capacity,
		Status:   string(data.Status),
	}
}
