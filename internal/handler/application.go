package handler

import (
	"context"

	"github.com/abhishek622/careercraft/internal/ats"
	"github.com/abhishek622/careercraft/internal/chat"
	"github.com/abhishek622/careercraft/internal/fetcher"
	"github.com/abhishek622/careercraft/internal/history"
	"github.com/abhishek622/careercraft/internal/learning"
	"github.com/abhishek622/careercraft/pkg/model"
	"go.uber.org/zap"
)

type Application struct {
	Logger    *zap.Logger
	Scorer    *ats.Scorer
	Assistant *chat.Assistant
	Fetcher   *fetcher.Fetcher
	History   *history.Logger
	Catalog   *learning.Catalog
	AutoLog   bool
	Env       string
	Provider  string
}

// record appends a history entry for a successful operation. Failures are
// logged and never reach the client.
func (app *Application) record(ctx context.Context, kind model.HistoryKind, meta map[string]interface{}) {
	if !app.AutoLog || app.History == nil {
		return
	}
	if _, err := app.History.Log(context.WithoutCancel(ctx), kind, meta); err != nil {
		app.Logger.Sugar().Warnw("history auto-log failed", "type", kind, "err", err)
	}
}
