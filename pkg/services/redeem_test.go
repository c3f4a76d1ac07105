package services

import (
	"testing"

	"github.com/kerbaras/mangareader/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedeemer(catalog *data.Catalog) (*Redeemer, *Ledger, *data.MemoryStore) {
	store := data.NewMemoryStore()
	ledger := NewLedger(store, catalog)
	return NewRedeemer(catalog, ledger), ledger, store
}

func TestRedeemNormalizesInput(t *testing.T) {
	for _, code := range []string{"NARUTO002", " naruto002 ", "\tNaRuTo002\n"} {
		t.Run(code, func(t *testing.T) {
			redeemer, ledger, _ := newTestRedeemer(testCatalog())

			res, err := redeemer.Redeem(code)
			require.NoError(t, err)
			assert.Equal(t, 2, res.TitleID)
			assert.Equal(t, 2, res.ChapterID)
			assert.Equal(t, "Chapter 2: Buggy", res.Label)
			assert.False(t, res.AlreadyUnlocked)

			ok, err := ledger.IsUnlocked(2, 2)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestRedeemInvalidCodeLeavesLedger(t *testing.T) {
	redeemer, _, store := newTestRedeemer(testCatalog())

	_, err := redeemer.Redeem("NOPE")
	var invalid *InvalidCodeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "NOPE", invalid.Code)

	for _, id := range []int{1, 2} {
		_, found, err := store.Get(LedgerKey(id))
		require.NoError(t, err)
		assert.False(t, found, "ledger for title %d should not be written", id)
	}
}

func TestRedeemEmptyCode(t *testing.T) {
	redeemer, _, _ := newTestRedeemer(testCatalog())

	for _, code := range []string{"", "   "} {
		_, err := redeemer.Redeem(code)
		assert.ErrorIs(t, err, ErrEmptyCode)
	}
}

func TestRedeemFirstMatchWins(t *testing.T) {
	catalog := testCatalog()
	catalog.Titles[1].Chapters[1].Code = "abc123"

	redeemer, ledger, _ := newTestRedeemer(catalog)
	res, err := redeemer.Redeem("ABC123")
	require.NoError(t, err)
	assert.Equal(t, 1, res.TitleID)
	assert.Equal(t, 2, res.ChapterID)

	ok, err := ledger.IsUnlocked(2, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedeemTwice(t *testing.T) {
	redeemer, ledger, _ := newTestRedeemer(testCatalog())

	_, err := redeemer.Redeem("abc123")
	require.NoError(t, err)
	res, err := redeemer.Redeem("abc123")
	require.NoError(t, err)
	assert.True(t, res.AlreadyUnlocked)

	ids, err := ledger.Unlocked(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids)
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizeCode("  abc123 "))
	assert.Equal(t, "", NormalizeCode(" \t"))
}
