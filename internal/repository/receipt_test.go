package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pietersz/kassabon/constants"
	"github.com/pietersz/kassabon/internal/common"
	"github.com/pietersz/kassabon/internal/entity"
)

func newTestRepo(t *testing.T) ReceiptRepository {
	t.Helper()
	db, err := Open(context.Background(), Config{DSN: ":memory:"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewReceiptRepository(db, nil)
}

func testReceipt(date string) *entity.Receipt {
	return &entity.Receipt{
		ID:        uuid.NewString(),
		Date:      date,
		StoreName: constants.StoreName,
		Total:     3.67,
		Items: []entity.ReceiptItem{
			{Name: "AH Halfvolle melk", Quantity: 1, Price: 1.29, Category: constants.Zuivel},
			{Name: "Bananen", Quantity: 2, Price: 2.38, Category: constants.Fruit},
		},
	}
}

func TestReceiptRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec := testReceipt("2026-01-15")
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "2026-01-15", got.Date)
	assert.Equal(t, constants.StoreName, got.StoreName)
	assert.InDelta(t, 3.67, got.Total, 1e-9)
	require.Len(t, got.Items, 2)
	assert.Equal(t, rec.Items[0], got.Items[0]) // source order preserved
	assert.Equal(t, rec.Items[1], got.Items[1])
}

func TestReceiptRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestReceiptRepository_List_MostRecentFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	older := testReceipt("2026-01-10")
	newer := testReceipt("2026-02-01")
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
	assert.Len(t, got[0].Items, 2)
}

func TestReceiptRepository_Update(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec := testReceipt("2026-01-15")
	require.NoError(t, repo.Save(ctx, rec))

	rec.Total = 5.50
	rec.Items = append(rec.Items, entity.ReceiptItem{
		Name: "Statiegeld", Quantity: 1, Price: 0.15, Category: constants.Overig,
	})
	require.NoError(t, repo.Update(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.50, got.Total, 1e-9)
	assert.Len(t, got.Items, 3)
}

func TestReceiptRepository_Update_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.Update(context.Background(), testReceipt("2026-01-15"))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestReceiptRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec := testReceipt("2026-01-15")
	require.NoError(t, repo.Save(ctx, rec))
	require.NoError(t, repo.Delete(ctx, rec.ID))

	_, err := repo.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), common.ErrNotFound)
}

func TestReceiptRepository_EmptyReceipt(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec := &entity.Receipt{ID: uuid.NewString(), Date: "2026-01-15", StoreName: constants.StoreName}
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}
