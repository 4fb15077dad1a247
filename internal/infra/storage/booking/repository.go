package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Totaedandan/auame/internal/domain"
	"github.com/Totaedandan/auame/pkg/dbmetrics"
	"github.com/Totaedandan/auame/pkg/psqlbuilder"
	"github.com/Totaedandan/auame/pkg/txmanager"
	"github.com/Totaedandan/auame/pkg/types"
)

// pgUniqueViolation код ошибки unique_violation в PostgreSQL
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"service_id",
	"service_name",
	"price",
	"booking_date",
	"booking_time",
	"client_name",
	"client_phone",
	"status",
	"created_ms",
	"user_id",
}

// Repository репозиторий бронирований в PostgreSQL.
// Уникальность активных слотов обеспечивает частичный индекс
// bookings_active_slot_idx (booking_date, booking_time) WHERE status <> 'Canceled'.
type Repository struct {
	db        DB
	txManager *txmanager.TransactionManager
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DB) *Repository {
	return &Repository{
		db:        db,
		txManager: txmanager.NewTransactionManager(db),
	}
}

// IsSlotBusy проверяет, занят ли слот активной бронью
func (r *Repository) IsSlotBusy(ctx context.Context, slot domain.Slot) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"booking_date": slot.Date, "booking_time": slot.Time}).
		Where(squirrel.NotEq{"status": domain.StatusCanceled}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotBusy - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotBusy - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// BusySlots возвращает время всех активных броней на дату
func (r *Repository) BusySlots(ctx context.Context, date types.DateString) (map[types.TimeString]struct{}, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_time").
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCanceled}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: BusySlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BusySlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	busy := make(map[types.TimeString]struct{})
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: BusySlots - scan time: %v", ErrScanRow, err)
		}
		busy[t] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BusySlots - rows error: %v", ErrScanRow, err)
	}

	return busy, nil
}

// Create сохраняет бронь. Занятый слот отсекается уникальным индексом.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertQuery(booking).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: Create - date=%s time=%s", ErrSlotNotAvailable, booking.Date, booking.Time)
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// CreateBatch сохраняет все брони пакета в одной SERIALIZABLE транзакции или ни одной
func (r *Repository) CreateBatch(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	err := r.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		conflicts, err := r.findConflicts(txCtx, bookings)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &SlotConflictError{Slots: conflicts}
		}

		executor := dbmetrics.GetExecutor(txCtx, r.db)

		builder := psqlbuilder.Insert("bookings").Columns(bookingColumns...)
		for _, b := range bookings {
			builder = builder.Values(bookingValues(b)...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(txCtx, query, args...); err != nil {
			if isUniqueViolation(err) {
				// слот заняли параллельно, после проверки
				return &SlotConflictError{Slots: slotsOf(bookings)}
			}
			return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
		}

		return nil
	})
	return wrapTxError("CreateBatch", err)
}

// findConflicts слоты пакета, занятые в таблице или повторяющиеся внутри пакета
func (r *Repository) findConflicts(ctx context.Context, bookings []*domain.Booking) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dates := make([]string, 0, len(bookings))
	for _, b := range bookings {
		dates = append(dates, string(b.Date))
	}

	query, args, err := psqlbuilder.Select("booking_date", "booking_time").
		From("bookings").
		Where(squirrel.Eq{"booking_date": dates}).
		Where(squirrel.NotEq{"status": domain.StatusCanceled}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: findConflicts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: findConflicts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	taken := make(map[domain.Slot]struct{})
	for rows.Next() {
		var slot domain.Slot
		if err := rows.Scan(&slot.Date, &slot.Time); err != nil {
			return nil, fmt.Errorf("%w: findConflicts - scan slot: %v", ErrScanRow, err)
		}
		taken[slot] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: findConflicts - rows error: %v", ErrScanRow, err)
	}

	conflicts := make([]domain.Slot, 0)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		slot := b.Slot()
		if _, busy := taken[slot]; busy {
			conflicts = append(conflicts, slot)
		}
		taken[slot] = struct{}{}
	}

	return conflicts, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	// колонка id типа UUID, любая другая строка до базы не доходит
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: GetByID - id=%s", ErrBookingNotFound, id)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: GetByID - id=%s", ErrBookingNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List возвращает брони по фильтру, сначала новые
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_ms DESC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования и возвращает обновлённую запись
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - id=%s", ErrBookingNotFound, id)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: UpdateStatus - id=%s", ErrBookingNotFound, id)
	case isUniqueViolation(err):
		return nil, fmt.Errorf("%w: UpdateStatus - id=%s", ErrSlotNotAvailable, id)
	case err != nil:
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return booking, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.ServiceID,
		&b.ServiceName,
		&b.Price,
		&b.Date,
		&b.Time,
		&b.ClientName,
		&b.ClientPhone,
		&b.Status,
		&b.Timestamp,
		&b.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func insertQuery(b *domain.Booking) squirrel.InsertBuilder {
	return psqlbuilder.Insert("bookings").
		Columns(bookingColumns...).
		Values(bookingValues(b)...)
}

func bookingValues(b *domain.Booking) []interface{} {
	return []interface{}{
		b.ID,
		b.ServiceID,
		b.ServiceName,
		b.Price,
		b.Date,
		b.Time,
		b.ClientName,
		b.ClientPhone,
		b.Status,
		b.Timestamp,
		b.UserID,
	}
}

func slotsOf(bookings []*domain.Booking) []domain.Slot {
	slots := make([]domain.Slot, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, b.Slot())
	}
	return slots
}

// wrapTxError помечает сбои открытия и коммита транзакции как ErrTransaction,
// остальные ошибки (в том числе *SlotConflictError) возвращаются как есть
func wrapTxError(op string, err error) error {
	if errors.Is(err, txmanager.ErrBeginTx) || errors.Is(err, txmanager.ErrCommitTx) {
		return fmt.Errorf("%w: %s - %v", ErrTransaction, op, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
