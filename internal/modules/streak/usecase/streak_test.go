package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	streakout "calm/internal/modules/streak/adapter/out"
	streakdto "calm/internal/modules/streak/dto"
	"calm/internal/modules/streak/service"
	"calm/internal/modules/streak/usecase"
	apperrors "calm/internal/platform/errors"
	"calm/internal/platform/kv"
	"calm/internal/platform/logging"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

func at(day string) *fakeClock {
	t, _ := time.ParseInLocation("2006-01-02 15:04", day+" 21:30", time.Local)
	return &fakeClock{now: t}
}

func newInteractor(clk *fakeClock, store kv.Store) *usecase.Interactor {
	svc := service.NewStreakService(clk, streakout.NewKVRecordStore(store), logging.Discard())
	return usecase.NewInteractor(svc).(*usecase.Interactor)
}

func TestFirstCompletionStartsAtOne(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	uc := newInteractor(at("2024-06-01"), store)

	before, err := uc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, before.Count)
	require.False(t, before.HasLast)

	out, err := uc.RecordCompletion(context.Background(), streakdto.RecordInput{})
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	require.Equal(t, "2024-06-01", out.LastDate)

	raw, _, _ := store.Get(context.Background(), streakout.KeyStreak)
	require.Equal(t, "1", raw)
	raw, _, _ = store.Get(context.Background(), streakout.KeyLastDate)
	require.Equal(t, "2024-06-01", raw)
}

func TestPersistedStreakExtendsOnNextDay(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	require.NoError(t, store.SetMany(context.Background(), map[string]string{
		streakout.KeyStreak:   "5",
		streakout.KeyLastDate: "2024-01-01",
	}))
	uc := newInteractor(at("2024-01-02"), store)

	out, err := uc.RecordCompletion(context.Background(), streakdto.RecordInput{})
	require.NoError(t, err)
	require.Equal(t, 6, out.Count)
	require.Equal(t, "2024-01-02", out.LastDate)
	require.Equal(t, "extended", out.Outcome)
}

func TestSameDayCompletionIsIdempotent(t *testing.T) {
	t.Parallel()
	uc := newInteractor(at("2024-06-01"), kv.NewMemoryStore())
	first, err := uc.RecordCompletion(context.Background(), streakdto.RecordInput{})
	require.NoError(t, err)
	second, err := uc.RecordCompletion(context.Background(), streakdto.RecordInput{})
	require.NoError(t, err)
	require.Equal(t, first.Count, second.Count)
	require.Equal(t, first.LastDate, second.LastDate)
	require.Equal(t, "unchanged", second.Outcome)
}

func TestGapResetsAndExplicitDayOverride(t *testing.T) {
	t.Parallel()
	uc := newInteractor(at("2024-06-10"), kv.NewMemoryStore())
	ctx := context.Background()

	_, err := uc.RecordCompletion(ctx, streakdto.RecordInput{Day: "2024-06-01"})
	require.NoError(t, err)
	out, err := uc.RecordCompletion(ctx, streakdto.RecordInput{Day: "2024-06-02"})
	require.NoError(t, err)
	require.Equal(t, 2, out.Count)

	out, err = uc.RecordCompletion(ctx, streakdto.RecordInput{Day: "2024-06-04"})
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	require.Equal(t, "2024-06-04", out.LastDate)

	_, err = uc.RecordCompletion(ctx, streakdto.RecordInput{Day: "June 5"})
	require.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestMalformedPersistedValuesFallBackToDefaults(t *testing.T) {
	t.Parallel()
	cases := map[string]map[string]string{
		"non numeric": {streakout.KeyStreak: "abc", streakout.KeyLastDate: "not-a-date"},
		"negative":    {streakout.KeyStreak: "-4", streakout.KeyLastDate: ""},
		"float":       {streakout.KeyStreak: "2.5"},
	}
	for name, values := range cases {
		values := values
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			store := kv.NewMemoryStore()
			require.NoError(t, store.SetMany(context.Background(), values))
			out, err := newInteractor(at("2024-06-01"), store).Get(context.Background())
			require.NoError(t, err)
			require.Equal(t, 0, out.Count)
			require.False(t, out.HasLast)
		})
	}
}

func TestStatusReportsPendingDay(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	require.NoError(t, store.SetMany(context.Background(), map[string]string{
		streakout.KeyStreak:   "3",
		streakout.KeyLastDate: "2024-06-01",
	}))
	status, err := newInteractor(at("2024-06-02"), store).Status(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, status.Count)
	require.Equal(t, "2024-06-02", status.Today)
	require.True(t, status.Alive)
	require.False(t, status.DoneToday)
	require.Equal(t, 1, status.DaysSince)
}

type failingStore struct{ kv.Store }

func (failingStore) SetMany(context.Context, map[string]string) error {
	return errors.New("disk full")
}

func TestSaveFailureIsReturned(t *testing.T) {
	t.Parallel()
	uc := newInteractor(at("2024-06-01"), failingStore{Store: kv.NewMemoryStore()})
	_, err := uc.RecordCompletion(context.Background(), streakdto.RecordInput{})
	require.ErrorContains(t, err, "disk full")
}
