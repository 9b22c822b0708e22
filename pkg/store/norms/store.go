package norms

import (
	"context"

	"github.com/de-tools/feed-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Store serves the fixed reference tables: feed norms per head per day and the
// recorded totals of past periods. Tables never change after construction.
type Store interface {
	GetNorm(ctx context.Context, feedType string) (domain.FeedNorm, bool)
	ListNorms(ctx context.Context) []domain.FeedNorm
	ListHistory(ctx context.Context) []domain.HistoricalRecord
}

type normsStore struct {
	norms   []domain.FeedNorm
	byType  map[string]domain.FeedNorm
	history []domain.HistoricalRecord
}

// NewStore builds the store from the built-in tables.
func NewStore() Store {
	return newStore(defaultNorms(), defaultHistory())
}

func newStore(norms []domain.FeedNorm, history []domain.HistoricalRecord) *normsStore {
	s := &normsStore{
		norms:   append([]domain.FeedNorm(nil), norms...),
		byType:  make(map[string]domain.FeedNorm, len(norms)),
		history: append([]domain.HistoricalRecord(nil), history...),
	}
	for _, n := range s.norms {
		s.byType[n.FeedType] = n
	}
	return s
}

func defaultNorms() []domain.FeedNorm {
	return []domain.FeedNorm{
		{FeedType: "Концентраты", PerHeadPerDay: decimal.NewFromInt(5)},
		{FeedType: "Сено", PerHeadPerDay: decimal.NewFromInt(15)},
		{FeedType: "Силос", PerHeadPerDay: decimal.NewFromInt(20)},
	}
}

func defaultHistory() []domain.HistoricalRecord {
	return []domain.HistoricalRecord{
		{Period: "Позапрошлый год", Total: decimal.NewFromInt(51000)},
		{Period: "Прошлый год", Total: decimal.NewFromInt(29500)},
	}
}

func (s *normsStore) GetNorm(_ context.Context, feedType string) (domain.FeedNorm, bool) {
	n, ok := s.byType[feedType]
	return n, ok
}

func (s *normsStore) ListNorms(_ context.Context) []domain.FeedNorm {
	return append([]domain.FeedNorm(nil), s.norms...)
}

func (s *normsStore) ListHistory(_ context.Context) []domain.HistoricalRecord {
	return append([]domain.HistoricalRecord(nil), s.history...)
}
