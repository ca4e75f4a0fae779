package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/lavexpress/booking-service/internal/domain"
	"github.com/lavexpress/booking-service/pkg/dbmetrics"
	"github.com/lavexpress/booking-service/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"address",
	"vehicle_category",
	"car_brand",
	"formula",
	"price",
	"options",
	"date",
	"start_time",
	"status",
	"comments",
	"newsletter",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте есть активная транзакция, использует её - создание
// выполняется в одной SERIALIZABLE транзакции с проверкой пересечений,
// чтобы два конкурентных запроса не забронировали один слот
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"first_name",
			"last_name",
			"email",
			"phone",
			"address",
			"vehicle_category",
			"car_brand",
			"formula",
			"price",
			"options",
			"date",
			"start_time",
			"status",
			"comments",
			"newsletter",
		).
		Values(
			res.FirstName,
			res.LastName,
			res.Email,
			res.Phone,
			res.Address,
			res.VehicleCategory,
			res.CarBrand,
			res.Formula,
			res.Price,
			res.Options,
			res.Date,
			res.StartTime,
			res.Status,
			res.Comments,
			res.Newsletter,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservationRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByDate получает активные бронирования на дату, отсортированные по времени начала
// excludeID исключает бронирование из выборки (проверка пересечений при редактировании)
// Внутри транзакции добавляется FOR UPDATE для блокировки строк дня
func (r *Repository) GetByDate(ctx context.Context, date time.Time, excludeID *int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows, "GetByDate")
}

// GetByDateRange получает активные бронирования за период [start, end],
// отсортированные по дате, затем по времени начала
// Используется недельным календарём
func (r *Repository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows, "GetByDateRange")
}

// Update обновляет все поля бронирования по ID
// Статус этим методом не меняется - для него есть UpdateStatus
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("first_name", res.FirstName).
		Set("last_name", res.LastName).
		Set("email", res.Email).
		Set("phone", res.Phone).
		Set("address", res.Address).
		Set("vehicle_category", res.VehicleCategory).
		Set("car_brand", res.CarBrand).
		Set("formula", res.Formula).
		Set("price", res.Price).
		Set("options", res.Options).
		Set("date", res.Date).
		Set("start_time", res.StartTime).
		Set("comments", res.Comments).
		Set("newsletter", res.Newsletter).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
// Повторная установка текущего статуса допустима и обновляет только updated_at
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete физически удаляет бронирование
// Используется только явным действием администратора; для освобождения слота
// достаточно перевода в статус cancelled
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
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
		return ErrReservationNotFound
	}

	return nil
}

// DeleteByDateRange удаляет все бронирования с датой в [start, end]
// Используется административной чисткой по диапазону месяцев
func (r *Repository) DeleteByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDateRange - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDateRange - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDateRange - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// StatsByPeriod считает статистику бронирований за период [start, end]
// Выручка суммируется по всем неотменённым бронированиям
func (r *Repository) StatsByPeriod(ctx context.Context, start, end time.Time) (*domain.ReservationStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'pending')",
		"COUNT(*) FILTER (WHERE status = 'confirmed')",
		"COUNT(*) FILTER (WHERE status = 'completed')",
		"COUNT(*) FILTER (WHERE status = 'cancelled')",
		"COALESCE(SUM(price) FILTER (WHERE status <> 'cancelled'), 0)",
	).
		From("reservations").
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: StatsByPeriod - build select query: %v", ErrBuildQuery, err)
	}

	stats := domain.ReservationStats{
		PeriodStart: start,
		PeriodEnd:   end,
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.Total,
		&stats.Pending,
		&stats.Confirmed,
		&stats.Completed,
		&stats.Cancelled,
		&stats.Revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: StatsByPeriod - scan stats: %v", ErrScanRow, err)
	}

	return &stats, nil
}

func scanReservationRow(row interface{ Scan(...interface{}) error }) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.FirstName,
		&res.LastName,
		&res.Email,
		&res.Phone,
		&res.Address,
		&res.VehicleCategory,
		&res.CarBrand,
		&res.Formula,
		&res.Price,
		&res.Options,
		&res.Date,
		&res.StartTime,
		&res.Status,
		&res.Comments,
		&res.Newsletter,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func scanReservations(rows *sql.Rows, op string) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservationRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return reservations, nil
}
