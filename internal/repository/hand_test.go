package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/hand-recorder/internal/models"
)

func TestHandRepository_Create(t *testing.T) {
	db := TestDB(t)
	defer CleanupTestDB(db)

	repo := NewHandRepository(db)
	ctx := context.Background()

	record := CreateTestHandRecord("BTN")
	err := repo.Create(ctx, record)
	require.NoError(t, err)
	assert.NotZero(t, record.ID)

	found, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	AssertHandRecord(t, record, found)
	assert.Equal(t, []string{"BTN: Raise 6", "SB: Fold", "BB: Call"}, found.Actions["preflop"])
}

func TestHandRepository_FindByID_NotFound(t *testing.T) {
	db := TestDB(t)
	defer CleanupTestDB(db)

	repo := NewHandRepository(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 9999)
	assert.Error(t, err)
}

func TestHandRepository_List(t *testing.T) {
	db := TestDB(t)
	defer CleanupTestDB(db)

	repo := NewHandRepository(db)
	ctx := context.Background()

	// 按时间先后创建三条记录
	base := time.Now().Add(-time.Hour)
	for i, pos := range []string{"UTG", "CO", "BTN"} {
		record := CreateTestHandRecord(pos)
		record.RecordedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, record))
	}

	p := NewPagination(1, 10)
	records, err := repo.List(ctx, p)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, int64(3), p.Total)

	// 最新的记录排在最前面
	assert.Equal(t, "BTN", records[0].Position)
	assert.Equal(t, "CO", records[1].Position)
	assert.Equal(t, "UTG", records[2].Position)
}

func TestHandRepository_List_Pagination(t *testing.T) {
	db := TestDB(t)
	defer CleanupTestDB(db)

	repo := NewHandRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		record := CreateTestHandRecord("BB")
		record.RecordedAt = time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Create(ctx, record))
	}

	p := NewPagination(2, 2)
	records, err := repo.List(ctx, p)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, int64(5), p.Total)
}

func TestHandRepository_FindByPosition(t *testing.T) {
	db := TestDB(t)
	defer CleanupTestDB(db)

	repo := NewHandRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, CreateTestHandRecord("BTN")))
	require.NoError(t, repo.Create(ctx, CreateTestHandRecord("BTN")))
	require.NoError(t, repo.Create(ctx, CreateTestHandRecord("SB")))

	p := NewPagination(1, 10)
	records, err := repo.FindByPosition(ctx, "BTN", p)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, int64(2), p.Total)
}

func TestHandRepository_FindByTimeRange(t *testing.T) {
	db := TestDB(t)
	defer CleanupTestDB(db)

	repo := NewHandRepository(db)
	ctx := context.Background()

	old := CreateTestHandRecord("UTG")
	old.RecordedAt = time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Create(ctx, old))

	recent := CreateTestHandRecord("BB")
	recent.RecordedAt = time.Now()
	require.NoError(t, repo.Create(ctx, recent))

	p := NewPagination(1, 10)
	records, err := repo.FindByTimeRange(ctx, time.Now().Add(-time.Hour), time.Now().Add(time.Hour), p)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "BB", records[0].Position)
}

func TestHandRepository_Delete(t *testing.T) {
	db := TestDB(t)
	defer CleanupTestDB(db)

	repo := NewHandRepository(db)
	ctx := context.Background()

	record := CreateTestHandRecord("HJ")
	require.NoError(t, repo.Create(ctx, record))

	err := repo.Delete(ctx, record.ID)
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, record.ID)
	assert.Error(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestHandRepository_EmptyStreetsRoundTrip(t *testing.T) {
	db := TestDB(t)
	defer CleanupTestDB(db)

	repo := NewHandRepository(db)
	ctx := context.Background()

	record := CreateTestHandRecord("BTN")
	record.VillainCards = models.StringArray{}
	record.BoardCards = models.StringArray{}
	require.NoError(t, repo.Create(ctx, record))

	found, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)

	// 空街位保持为空切片而不是nil
	assert.NotNil(t, found.Actions["flop"])
	assert.Empty(t, found.Actions["flop"])
	assert.NotNil(t, found.VillainCards)
	assert.Empty(t, found.VillainCards)
}
