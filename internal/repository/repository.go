package repository

import (
	"context"

	"github.com/jarenas/migasto/internal/model"
)

// Store is the remote transaction store. It owns all durable state;
// the dashboard only ever holds a cached copy of what it returns.
type Store interface {
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	CreateTransaction(ctx context.Context, transaction *model.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
}
