package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	entity "local-market/internal/domain"
)

const (
	DatabaseName      = "local_market"
	CollectionHistory = "status_history"
)

// HistoryRepository records order status transitions out of band.
// Writes are best-effort: callers log and swallow failures.
type HistoryRepository interface {
	SaveStatusHistory(doc *entity.StatusHistory) error
}

type historyRepository struct {
	collection *mongo.Collection
}

func NewHistoryRepository(client *mongo.Client) HistoryRepository {
	db := client.Database(DatabaseName)
	return &historyRepository{
		collection: db.Collection(CollectionHistory),
	}
}

func (r *historyRepository) SaveStatusHistory(doc *entity.StatusHistory) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert status history: %w", err)
	}
	return nil
}
