package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhishek622/careercraft/pkg/model"
	"go.uber.org/zap"
)

var ErrUnknownKind = errors.New("unknown history kind")

// Store persists history records newest first.
type Store interface {
	Prepend(ctx context.Context, rec model.HistoryRecord) error
	List(ctx context.Context) ([]model.HistoryRecord, error)
	Clear(ctx context.Context) error
}

// Logger builds records and hands them to a Store.
type Logger struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

func NewLogger(store Store, logger *zap.Logger) *Logger {
	return &Logger{store: store, logger: logger, now: time.Now}
}

// Log prepends a record of the given kind. The id is "<kind>-<unix millis>".
func (l *Logger) Log(ctx context.Context, kind model.HistoryKind, meta map[string]interface{}) (*model.HistoryRecord, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	at := l.now().UTC()
	rec := model.HistoryRecord{
		ID:   fmt.Sprintf("%s-%d", kind, at.UnixMilli()),
		Type: kind,
		At:   at,
		Meta: meta,
	}
	if err := l.store.Prepend(ctx, rec); err != nil {
		return nil, fmt.Errorf("history log: %w", err)
	}

	l.logger.Debug("history: logged", zap.String("id", rec.ID), zap.String("type", string(kind)))
	return &rec, nil
}

func (l *Logger) List(ctx context.Context) ([]model.HistoryRecord, error) {
	records, err := l.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("history list: %w", err)
	}
	if records == nil {
		records = []model.HistoryRecord{}
	}
	return records, nil
}

func (l *Logger) Clear(ctx context.Context) error {
	if err := l.store.Clear(ctx); err != nil {
		return fmt.Errorf("history clear: %w", err)
	}
	return nil
}

// decodeList parses a stored list. Unparseable data counts as empty.
func decodeList(raw []byte) []model.HistoryRecord {
	if len(raw) == 0 {
		return nil
	}
	var records []model.HistoryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil
	}
	return records
}

func prepend(records []model.HistoryRecord, rec model.HistoryRecord) []model.HistoryRecord {
	out := make([]model.HistoryRecord, 0, len(records)+1)
	out = append(out, rec)
	return append(out, records...)
}
