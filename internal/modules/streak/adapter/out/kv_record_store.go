package out

import (
	"context"
	"strconv"
	"strings"

	"calm/internal/modules/streak/domain"
	streakout "calm/internal/modules/streak/port/out"
	"calm/internal/platform/kv"
)

const (
	KeyStreak   = "zen_streak"
	KeyLastDate = "zen_last_date"
)

type KVRecordStore struct {
	store kv.Store
}

func NewKVRecordStore(store kv.Store) streakout.RecordStore {
	return &KVRecordStore{store: store}
}

// Load never fails on malformed values: an unparseable or negative count
// reads as 0 and an unparseable date reads as absent.
func (s *KVRecordStore) Load(ctx context.Context) (domain.Record, error) {
	record := domain.Record{}
	rawCount, ok, err := s.store.Get(ctx, KeyStreak)
	if err != nil {
		return domain.Record{}, err
	}
	if ok {
		if n, err := strconv.Atoi(strings.TrimSpace(rawCount)); err == nil && n >= 0 {
			record.Count = n
		}
	}
	rawDate, ok, err := s.store.Get(ctx, KeyLastDate)
	if err != nil {
		return domain.Record{}, err
	}
	if ok {
		if day, err := domain.ParseDay(strings.TrimSpace(rawDate)); err == nil {
			record.LastDate = day
		}
	}
	return record, nil
}

func (s *KVRecordStore) Save(ctx context.Context, record domain.Record) error {
	return s.store.SetMany(ctx, map[string]string{
		KeyStreak:   strconv.Itoa(record.Count),
		KeyLastDate: record.LastDate.String(),
	})
}
