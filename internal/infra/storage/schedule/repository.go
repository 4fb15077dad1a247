package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/Totaedandan/auame/internal/domain"
	"github.com/Totaedandan/auame/pkg/dbmetrics"
	"github.com/Totaedandan/auame/pkg/psqlbuilder"
	"github.com/Totaedandan/auame/pkg/txmanager"
)

// Repository шаблон расписания в таблице schedule_days (строка на день недели)
type Repository struct {
	db        DB
	txManager *txmanager.TransactionManager
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DB) *Repository {
	return &Repository{
		db:        db,
		txManager: txmanager.NewTransactionManager(db),
	}
}

// Get читает шаблон. Дни, которых нет в таблице, берутся из шаблона по умолчанию.
func (r *Repository) Get(ctx context.Context) (domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "enabled", "start_time", "end_time").
		From("schedule_days").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := domain.DefaultSchedule()
	for rows.Next() {
		var (
			day domain.Weekday
			cfg domain.DayConfig
		)
		if err := rows.Scan(&day, &cfg.Enabled, &cfg.Start, &cfg.End); err != nil {
			return nil, fmt.Errorf("%w: Get - scan row: %v", ErrScanRow, err)
		}
		schedule[day] = cfg
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// Save записывает переданные дни одной транзакцией
func (r *Repository) Save(ctx context.Context, days domain.Schedule) error {
	if len(days) == 0 {
		return nil
	}

	err := r.txManager.Do(ctx, func(txCtx context.Context) error {
		executor := dbmetrics.GetExecutor(txCtx, r.db)

		builder := psqlbuilder.Insert("schedule_days").
			Columns("weekday", "enabled", "start_time", "end_time")
		// порядок вставки фиксирован, чтобы не зависеть от обхода map
		for _, day := range domain.Weekdays {
			cfg, ok := days[day]
			if !ok {
				continue
			}
			builder = builder.Values(day, cfg.Enabled, cfg.Start, cfg.End)
		}

		query, args, err := builder.
			Suffix("ON CONFLICT (weekday) DO UPDATE SET " +
				"enabled = EXCLUDED.enabled, start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(txCtx, query, args...); err != nil {
			return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
		}

		return nil
	})
	if errors.Is(err, txmanager.ErrBeginTx) || errors.Is(err, txmanager.ErrCommitTx) {
		return fmt.Errorf("%w: Save - %v", ErrTransaction, err)
	}
	return err
}
