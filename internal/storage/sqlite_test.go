package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassis-finance/cassis/internal/common"
	"github.com/cassis-finance/cassis/internal/service"
)

func newTestStore(t *testing.T) *SQLiteCorrectionStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "corrections.db")
	s, err := NewSQLiteCorrectionStore(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndListCorrections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c1 := service.Correction{
		CreatedAt:    time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		Merchant:     "Netflix",
		SuggestedTag: "streaming",
		ActualTag:    "streaming",
		Accepted:     true,
	}
	c2 := service.Correction{
		CreatedAt:    time.Date(2026, 1, 16, 10, 0, 0, 0, time.UTC),
		Merchant:     "casino",
		SuggestedTag: "loisirs",
		ActualTag:    "courses",
		Accepted:     false,
	}

	require.NoError(t, s.SaveCorrection(ctx, c1))
	require.NoError(t, s.SaveCorrection(ctx, c2))

	got, err := s.ListCorrections(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Merchants are normalized on write; order is oldest first.
	assert.Equal(t, "netflix", got[0].Merchant)
	assert.True(t, got[0].Accepted)
	assert.Equal(t, "casino", got[1].Merchant)
	assert.Equal(t, "courses", got[1].ActualTag)
	assert.False(t, got[1].Accepted)
}

func TestSaveCorrection_EmptyMerchant(t *testing.T) {
	s := newTestStore(t)
	err := s.SaveCorrection(context.Background(), service.Correction{Merchant: "  "})
	assert.Error(t, err)
}

func TestListCorrections_Empty(t *testing.T) {
	s := newTestStore(t)
	got, err := s.ListCorrections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "corrections.db")
	ctx := context.Background()

	s1, err := NewSQLiteCorrectionStore(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s1.SaveCorrection(ctx, service.Correction{Merchant: "edf", SuggestedTag: "electricite", ActualTag: "electricite", Accepted: true}))
	require.NoError(t, s1.Close())

	// Reopening runs migrate again and must preserve existing rows.
	s2, err := NewSQLiteCorrectionStore(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	got, err := s2.ListCorrections(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMigrate_RejectsNewerSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "corrections.db")
	ctx := context.Background()

	s1, err := NewSQLiteCorrectionStore(ctx, dbPath)
	require.NoError(t, err)
	_, err = s1.db.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (99)`)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	_, err = NewSQLiteCorrectionStore(ctx, dbPath)
	assert.ErrorIs(t, err, common.ErrDatabaseCorrupted)
}
