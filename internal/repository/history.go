package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/abhishek622/careercraft/pkg/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

const historyTable = "history_records"

// HistoryRepository stores one row per record, grouped by slot.
type HistoryRepository struct {
	db   *pgxpool.Pool
	slot string
}

func NewHistoryRepository(db *pgxpool.Pool, slot string) *HistoryRepository {
	return &HistoryRepository{db: db, slot: slot}
}

func (r *HistoryRepository) Prepend(ctx context.Context, rec model.HistoryRecord) error {
	q, args, err := insertHistoryQuery(r.slot, rec)
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

func (r *HistoryRepository) List(ctx context.Context) ([]model.HistoryRecord, error) {
	q, args, err := listHistoryQuery(r.slot)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []model.HistoryRecord
	for rows.Next() {
		var (
			rec  model.HistoryRecord
			kind string
			meta []byte
		)
		if err := rows.Scan(&rec.ID, &kind, &rec.At, &meta); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		rec.Type = model.HistoryKind(kind)
		rec.At = rec.At.UTC()
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &rec.Meta); err != nil {
				return nil, fmt.Errorf("decode history meta %s: %w", rec.ID, err)
			}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

func (r *HistoryRepository) Clear(ctx context.Context) error {
	q, args, err := clearHistoryQuery(r.slot)
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func insertHistoryQuery(slot string, rec model.HistoryRecord) (string, []interface{}, error) {
	var meta []byte
	if rec.Meta != nil {
		b, err := json.Marshal(rec.Meta)
		if err != nil {
			return "", nil, fmt.Errorf("encode history meta: %w", err)
		}
		meta = b
	}

	q, args, err := psql.Insert(historyTable).
		Columns("slot", "id", "type", "at", "meta").
		Values(slot, rec.ID, string(rec.Type), rec.At.UTC().Truncate(time.Microsecond), meta).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build insert history: %w", err)
	}
	return q, args, nil
}

func listHistoryQuery(slot string) (string, []interface{}, error) {
	q, args, err := psql.Select("id", "type", "at", "meta").
		From(historyTable).
		Where(sq.Eq{"slot": slot}).
		OrderBy("seq DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build list history: %w", err)
	}
	return q, args, nil
}

func clearHistoryQuery(slot string) (string, []interface{}, error) {
	q, args, err := psql.Delete(historyTable).Where(sq.Eq{"slot": slot}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build clear history: %w", err)
	}
	return q, args, nil
}
