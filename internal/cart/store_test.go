package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *MemorySnapshotStore) {
	t.Helper()
	snapshots := NewMemorySnapshotStore()
	return NewStore("test-cart", snapshots), snapshots
}

func productRef(id string, price float64) ProductRef {
	return ProductRef{
		ID:        id,
		Name:      "Fauteuil de coiffure",
		NameAr:    "كرسي حلاقة",
		UnitPrice: price,
	}
}

func TestStore_AddItem_MergesSameProduct(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.AddItem(productRef("p1", 1000), 1))
	require.NoError(t, store.AddItem(productRef("p1", 1000), 2))
	require.NoError(t, store.AddItem(productRef("p1", 1000), 4))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestStore_AddItem_DefaultsAndClampsQuantity(t *testing.T) {
	store, _ := newTestStore(t)

	// Quantities below 1 are clamped, never rejected
	require.NoError(t, store.AddItem(productRef("p1", 500), 0))
	assert.Equal(t, 1, store.TotalItems())

	require.NoError(t, store.AddItem(productRef("p2", 500), -3))
	assert.Equal(t, 2, store.TotalItems())
}

func TestStore_AddItem_RejectsInvalidRef(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.AddItem(ProductRef{ID: "", UnitPrice: 100}, 1)
	assert.ErrorIs(t, err, ErrMissingProductID)

	err = store.AddItem(ProductRef{ID: "p1", UnitPrice: -1}, 1)
	assert.ErrorIs(t, err, ErrNegativePrice)

	// Rejected adds must not mutate state
	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())
	assert.Equal(t, 0.0, store.TotalPrice())
}

func TestStore_TotalsRecomputedAfterEveryMutation(t *testing.T) {
	store, _ := newTestStore(t)

	checkInvariants := func() {
		items := store.Items()
		wantItems := 0
		wantPrice := 0.0
		for _, item := range items {
			assert.GreaterOrEqual(t, item.Quantity, 1)
			wantItems += item.Quantity
			wantPrice += item.UnitPrice * float64(item.Quantity)
		}
		assert.Equal(t, wantItems, store.TotalItems())
		assert.Equal(t, wantPrice, store.TotalPrice())
	}

	store.AddItem(productRef("p1", 1200), 2)
	checkInvariants()
	store.AddItem(productRef("p2", 350), 3)
	checkInvariants()
	store.UpdateQuantity("p1", 5)
	checkInvariants()
	store.RemoveItem("p2")
	checkInvariants()
	store.Clear()
	checkInvariants()
}

func TestStore_UpdateQuantity_ZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		store, _ := newTestStore(t)
		require.NoError(t, store.AddItem(productRef("p1", 1000), 2))

		store.UpdateQuantity("p1", qty)

		assert.Empty(t, store.Items())
		assert.Equal(t, 0, store.TotalItems())
	}
}

func TestStore_UpdateQuantity_UnknownIDIsNoop(t *testing.T) {
	store, snapshots := newTestStore(t)
	require.NoError(t, store.AddItem(productRef("p1", 1000), 2))

	before := store.Items()
	store.UpdateQuantity("nope", 5)
	assert.Equal(t, before, store.Items())

	// Reload from the snapshot store to confirm nothing extra was written
	reloaded := NewStore("test-cart", snapshots)
	assert.Equal(t, before, reloaded.Items())
}

func TestStore_RemoveItem_AbsentIDIsNoop(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.AddItem(productRef("p1", 1000), 1))

	before := store.Items()
	store.RemoveItem("does-not-exist")
	assert.Equal(t, before, store.Items())
}

func TestStore_ClearThenReloadYieldsEmptyCart(t *testing.T) {
	snapshots := NewMemorySnapshotStore()
	store := NewStore("guest-1", snapshots)

	require.NoError(t, store.AddItem(productRef("p1", 1000), 3))
	store.Clear()

	// Simulate reload: a fresh store hydrated from the same token
	reloaded := NewStore("guest-1", snapshots)
	assert.Empty(t, reloaded.Items())
	assert.Equal(t, 0, reloaded.TotalItems())
	assert.Equal(t, 0.0, reloaded.TotalPrice())
}

func TestStore_HydratesFromPersistedSnapshot(t *testing.T) {
	snapshots := NewMemorySnapshotStore()
	store := NewStore("guest-1", snapshots)

	orig := 2500.0
	require.NoError(t, store.AddItem(ProductRef{
		ID:            "p1",
		Name:          "Miroir LED",
		NameAr:        "مرآة مضيئة",
		UnitPrice:     1999,
		OriginalPrice: &orig,
		ImageURL:      "https://cdn.example.com/p1.jpg",
	}, 2))

	reloaded := NewStore("guest-1", snapshots)
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1999.0, items[0].UnitPrice)
	assert.Equal(t, "Miroir LED", items[0].Name)
	assert.Equal(t, "مرآة مضيئة", items[0].NameAr)
	require.NotNil(t, items[0].OriginalPrice)
	assert.Equal(t, 2500.0, *items[0].OriginalPrice)
}

func TestStore_Scenario(t *testing.T) {
	store, _ := newTestStore(t)

	// Add P1 (price 1000) qty 1
	require.NoError(t, store.AddItem(productRef("P1", 1000), 1))
	assert.Equal(t, 1, store.TotalItems())
	assert.Equal(t, 1000.0, store.TotalPrice())

	// Add P1 qty 2 more: merged into one line of 3
	require.NoError(t, store.AddItem(productRef("P1", 1000), 2))
	assert.Equal(t, 3, store.TotalItems())
	assert.Equal(t, 3000.0, store.TotalPrice())
	require.Len(t, store.Items(), 1)
	assert.Equal(t, 3, store.Items()[0].Quantity)

	// Add P2 (price 500) qty 1
	require.NoError(t, store.AddItem(productRef("P2", 500), 1))
	assert.Equal(t, 4, store.TotalItems())
	assert.Equal(t, 3500.0, store.TotalPrice())

	// Scale P1 back to 1
	store.UpdateQuantity("P1", 1)
	assert.Equal(t, 2, store.TotalItems())
	assert.Equal(t, 1500.0, store.TotalPrice())

	// Drop P2
	store.RemoveItem("P2")
	assert.Equal(t, 1, store.TotalItems())
	assert.Equal(t, 1000.0, store.TotalPrice())

	// Clear everything
	store.Clear()
	assert.Equal(t, 0, store.TotalItems())
	assert.Equal(t, 0.0, store.TotalPrice())
	assert.Empty(t, store.Items())
}

func TestStore_ListenersNotifiedSynchronously(t *testing.T) {
	store, _ := newTestStore(t)

	var states []State
	store.Subscribe(func(s State) {
		states = append(states, s)
	})

	require.NoError(t, store.AddItem(productRef("p1", 100), 2))
	store.UpdateQuantity("p1", 5)
	store.RemoveItem("p1")
	store.Clear()

	require.Len(t, states, 4)
	assert.Equal(t, 2, states[0].TotalItems)
	assert.Equal(t, 5, states[1].TotalItems)
	assert.Equal(t, 0, states[2].TotalItems)
	assert.Empty(t, states[3].Items)
}

func TestStore_PanelOpenState(t *testing.T) {
	store, snapshots := newTestStore(t)

	// Default closed
	assert.False(t, store.IsOpen())

	var notified []State
	store.Subscribe(func(s State) { notified = append(notified, s) })

	store.SetOpen(true)
	assert.True(t, store.IsOpen())
	store.SetOpen(false)
	assert.False(t, store.IsOpen())
	store.SetOpen(true)
	assert.True(t, store.IsOpen())

	require.Len(t, notified, 3)
	assert.True(t, notified[2].IsOpen)

	// Panel state is transient: a rehydrated store starts closed again
	store.AddItem(productRef("p1", 100), 1)
	reloaded := NewStore("test-cart", snapshots)
	assert.False(t, reloaded.IsOpen())
	assert.Len(t, reloaded.Items(), 1)
}

func TestStore_SurvivesPersistenceFailure(t *testing.T) {
	store := NewStore("guest-1", failingSnapshotStore{})

	// Mutations succeed even though every write fails
	require.NoError(t, store.AddItem(productRef("p1", 700), 2))
	store.UpdateQuantity("p1", 3)

	assert.Equal(t, 3, store.TotalItems())
	assert.Equal(t, 2100.0, store.TotalPrice())
}
