package formula

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/pkg/dbmetrics"
	"github.com/lavexpress/booking-service/pkg/psqlbuilder"
)

// ListOptionsByCategory получает переключатели дополнительных услуг категории
func (r *Repository) ListOptionsByCategory(ctx context.Context, category domain.VehicleCategory) ([]*domain.ServiceOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"category",
		"name",
		"enabled",
		"created_at",
		"updated_at",
	).
		From("service_options").
		Where(squirrel.Eq{"category": category}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOptionsByCategory - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOptionsByCategory - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	options := make([]*domain.ServiceOption, 0)
	for rows.Next() {
		var option domain.ServiceOption
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&option.ID,
			&option.Category,
			&option.Name,
			&option.Enabled,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListOptionsByCategory - scan row: %v", ErrScanRow, err)
		}

		option.CreatedAt = createdAt.Time
		option.UpdatedAt = updatedAt.Time
		options = append(options, &option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOptionsByCategory - rows error: %v", ErrScanRow, err)
	}

	return options, nil
}

// UpsertOption создает переключатель опции или обновляет его состояние
// Ключ - пара (category, name)
func (r *Repository) UpsertOption(ctx context.Context, option *domain.ServiceOption) (*domain.ServiceOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_options").
		Columns("category", "name", "enabled").
		Values(option.Category, option.Name, option.Enabled).
		Suffix("ON CONFLICT (category, name) DO UPDATE SET enabled = EXCLUDED.enabled, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOption - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&option.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOption - execute upsert: %v", ErrExecQuery, err)
	}

	option.CreatedAt = createdAt.Time
	option.UpdatedAt = updatedAt.Time

	return option, nil
}
