package formula

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/pkg/dbmetrics"
	"github.com/lavexpress/booking-service/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL при нарушении уникального ограничения
const pqUniqueViolation = "23505"

var formulaColumns = []string{
	"id",
	"category",
	"name",
	"price",
	"duration",
	"icon",
	"services",
	"premium_wash",
	"premium_wash_price",
	"created_at",
	"updated_at",
}

// Repository репозиторий формул и опций услуг
// Формулы всех категорий живут в одной таблице с ключом (category, name)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория формул
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую формулу
func (r *Repository) Create(ctx context.Context, formula *domain.Formula) (*domain.Formula, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	services, err := json.Marshal(formula.Services)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal services: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("formulas").
		Columns(
			"category",
			"name",
			"price",
			"duration",
			"icon",
			"services",
			"premium_wash",
			"premium_wash_price",
		).
		Values(
			formula.Category,
			formula.Name,
			formula.Price,
			formula.Duration,
			formula.Icon,
			services,
			formula.PremiumWash,
			formula.PremiumWashPrice,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&formula.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	formula.CreatedAt = createdAt.Time
	formula.UpdatedAt = updatedAt.Time

	return formula, nil
}

// GetByID получает формулу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Formula, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(formulaColumns...).
		From("formulas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanFormula(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByCategoryAndName получает формулу по категории транспорта и названию
// Используется резолвером длительности и подстановкой цены при бронировании
func (r *Repository) GetByCategoryAndName(ctx context.Context, category domain.VehicleCategory, name string) (*domain.Formula, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(formulaColumns...).
		From("formulas").
		Where(squirrel.Eq{"category": category, "name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCategoryAndName - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanFormula(executor.QueryRowContext(ctx, query, args...), "GetByCategoryAndName")
}

// ListByCategory получает все формулы категории, отсортированные по цене
func (r *Repository) ListByCategory(ctx context.Context, category domain.VehicleCategory) ([]*domain.Formula, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(formulaColumns...).
		From("formulas").
		Where(squirrel.Eq{"category": category}).
		OrderBy("price ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByCategory - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCategory - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	formulas := make([]*domain.Formula, 0)
	for rows.Next() {
		formula, err := scanFormulaRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByCategory - scan row: %v", ErrScanRow, err)
		}
		formulas = append(formulas, formula)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCategory - rows error: %v", ErrScanRow, err)
	}

	return formulas, nil
}

// Update обновляет формулу по ID
func (r *Repository) Update(ctx context.Context, formula *domain.Formula) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	services, err := json.Marshal(formula.Services)
	if err != nil {
		return fmt.Errorf("%w: Update - marshal services: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("formulas").
		Set("category", formula.Category).
		Set("name", formula.Name).
		Set("price", formula.Price).
		Set("duration", formula.Duration).
		Set("icon", formula.Icon).
		Set("services", services).
		Set("premium_wash", formula.PremiumWash).
		Set("premium_wash_price", formula.PremiumWashPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": formula.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFormulaNotFound
	}

	return nil
}

// Delete удаляет формулу по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("formulas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFormulaNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanFormula(row *sql.Row, op string) (*domain.Formula, error) {
	formula, err := scanFormulaRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrFormulaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan formula: %v", ErrScanRow, op, err)
	}
	return formula, nil
}

func scanFormulaRow(row rowScanner) (*domain.Formula, error) {
	var formula domain.Formula
	var services []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&formula.ID,
		&formula.Category,
		&formula.Name,
		&formula.Price,
		&formula.Duration,
		&formula.Icon,
		&services,
		&formula.PremiumWash,
		&formula.PremiumWashPrice,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(services) > 0 {
		if err := json.Unmarshal(services, &formula.Services); err != nil {
			return nil, err
		}
	}

	formula.CreatedAt = createdAt.Time
	formula.UpdatedAt = updatedAt.Time

	return &formula, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}
