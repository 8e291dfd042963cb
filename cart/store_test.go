package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielcolab/dishly-api/models"
	"github.com/arielcolab/dishly-api/notify"
)

var silent = notify.Func(func(string, notify.Severity) {})

func snapshot(id uint, price float64, kind models.DishKind) models.DishSnapshot {
	return models.DishSnapshot{
		ID:       id,
		Name:     "dish",
		Price:    price,
		Kind:     kind,
		CookID:   "cook-1",
		CookName: "Maria",
	}
}

func newTestStore(t *testing.T) (*Store, *MemoryRepository) {
	t.Helper()
	repo := NewMemoryRepository()
	return NewStore("u1", repo, silent), repo
}

func TestAddItemAppendsAndMerges(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddItem(snapshot(1, 10, models.DishKindStandard), 2))
	require.NoError(t, s.AddItem(snapshot(2, 5, models.DishKindStandard), 1))
	require.NoError(t, s.AddItem(snapshot(1, 10, models.DishKindStandard), 3))

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, uint(1), lines[0].DishID)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, uint(2), lines[1].DishID)
}

func TestAddItemRejectsZeroQuantity(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.AddItem(snapshot(1, 10, models.DishKindStandard), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Empty(t, s.Lines())
}

func TestSingleQuantityKindsPinnedAtOne(t *testing.T) {
	for _, kind := range []models.DishKind{models.DishKindClass, models.DishKindMealPrep} {
		s, _ := newTestStore(t)
		require.NoError(t, s.AddItem(snapshot(7, 45, kind), 4))
		assert.Equal(t, 1, s.Lines()[0].Quantity)

		// adding again does not grow the line
		require.NoError(t, s.AddItem(snapshot(7, 45, kind), 2))
		assert.Equal(t, 1, s.Lines()[0].Quantity)

		// and the store itself refuses quantity updates
		s.UpdateQuantity(7, 5)
		assert.Equal(t, 1, s.Lines()[0].Quantity)
	}
}

func TestUpdateQuantity(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddItem(snapshot(1, 10, models.DishKindStandard), 1))

	s.UpdateQuantity(1, 4)
	assert.Equal(t, 4, s.Lines()[0].Quantity)

	// below 1 is a silent no-op
	s.UpdateQuantity(1, 0)
	assert.Equal(t, 4, s.Lines()[0].Quantity)

	// unknown dish is a silent no-op
	s.UpdateQuantity(99, 2)
	assert.Len(t, s.Lines(), 1)
}

func TestRemoveItem(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddItem(snapshot(1, 10, models.DishKindStandard), 1))
	require.NoError(t, s.AddItem(snapshot(2, 5, models.DishKindStandard), 1))

	s.RemoveItem(1)
	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, uint(2), lines[0].DishID)

	// absent dish is not an error
	s.RemoveItem(42)
	assert.Len(t, s.Lines(), 1)
}

func TestClearThenReloadIsEmpty(t *testing.T) {
	s, repo := newTestStore(t)
	require.NoError(t, s.AddItem(snapshot(1, 10, models.DishKindStandard), 2))
	s.Clear()
	assert.Empty(t, s.Lines())

	reloaded := NewStore("u1", repo, silent)
	assert.Empty(t, reloaded.Lines())
}

func TestPersistedSnapshotRoundTrip(t *testing.T) {
	s, repo := newTestStore(t)
	require.NoError(t, s.AddItem(snapshot(3, 12.5, models.DishKindStandard), 2))
	require.NoError(t, s.AddItem(snapshot(1, 45, models.DishKindClass), 1))
	require.NoError(t, s.AddItem(snapshot(2, 8, models.DishKindStandard), 3))

	reloaded := NewStore("u1", repo, silent)
	assert.Equal(t, s.Lines(), reloaded.Lines())
}

func TestCorruptSnapshotDegradesToEmpty(t *testing.T) {
	repo := NewMemoryRepository()
	first := NewStore("u1", repo, silent)
	_ = first.AddItem(snapshot(1, 10, models.DishKindStandard), 1)
	repo.Corrupt("u1")

	var warned bool
	notifier := notify.Func(func(string, notify.Severity) { warned = true })
	s := NewStore("u1", repo, notifier)
	assert.Empty(t, s.Lines())
	assert.True(t, warned)
}

func TestPersistFailureKeepsInMemoryCart(t *testing.T) {
	repo := NewMemoryRepository()
	repo.SaveErr = errors.New("quota exceeded")
	var warned bool
	notifier := notify.Func(func(string, notify.Severity) { warned = true })
	s := NewStore("u1", repo, notifier)

	require.NoError(t, s.AddItem(snapshot(1, 10, models.DishKindStandard), 1))
	assert.Len(t, s.Lines(), 1)
	assert.True(t, warned)
}

func TestSubscribersAllNotified(t *testing.T) {
	s, _ := newTestStore(t)
	var first, second int
	unsubFirst := s.Subscribe(func([]models.CartLine) { first++ })
	s.Subscribe(func([]models.CartLine) { second++ })

	require.NoError(t, s.AddItem(snapshot(1, 10, models.DishKindStandard), 1))
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	unsubFirst()
	require.NoError(t, s.AddItem(snapshot(2, 5, models.DishKindStandard), 1))
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestListenerSeesCurrentLines(t *testing.T) {
	s, _ := newTestStore(t)
	var seen []models.CartLine
	s.Subscribe(func(lines []models.CartLine) { seen = lines })

	require.NoError(t, s.AddItem(snapshot(1, 10, models.DishKindStandard), 2))
	require.Len(t, seen, 1)
	assert.Equal(t, 2, seen[0].Quantity)

	// mutating the delivered slice must not corrupt the store
	seen[0].Quantity = 99
	assert.Equal(t, 2, s.Lines()[0].Quantity)
}

func TestRegistryIsolatesShoppers(t *testing.T) {
	repo := NewMemoryRepository()
	reg := NewRegistry(repo, silent)

	a := reg.ForUser("alice")
	b := reg.ForUser("bob")
	require.NoError(t, a.AddItem(snapshot(1, 10, models.DishKindStandard), 1))
	assert.Empty(t, b.Lines())
	assert.Same(t, a, reg.ForUser("alice"))
}
