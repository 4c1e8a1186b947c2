package repository

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	History *HistoryRepository
}

func NewRepository(db *pgxpool.Pool, historyKey string) *Repository {
	return &Repository{
		History: NewHistoryRepository(db, historyKey),
	}
}
