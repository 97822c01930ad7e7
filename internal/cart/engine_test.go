package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyhub/marketplace/internal/product"
	"github.com/supplyhub/marketplace/internal/store"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testProduct(id int, price string, stock int) product.Product {
	return product.Product{ID: id, Name: "p", Price: dec(price), Stock: stock, SupplierID: 1}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(NewMemoryStorage())
	require.NoError(t, err)
	return e
}

func TestAddItemMergesSameProduct(t *testing.T) {
	e := newTestEngine(t)
	p := testProduct(1, "10.00", 50)

	require.NoError(t, e.AddItem(p, 1))
	require.NoError(t, e.AddItem(p, 1))

	lines := e.Lines()
	require.Len(t, lines, 1, "same product must merge, never duplicate")
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddItemKeepsSnapshot(t *testing.T) {
	e := newTestEngine(t)
	p := testProduct(1, "10.00", 50)
	require.NoError(t, e.AddItem(p, 1))

	// catalog-side drift after add must not reach the cart line
	p.Price = dec("99.99")
	p.Stock = 0

	lines := e.Lines()
	assert.True(t, lines[0].Product.Price.Equal(dec("10.00")))
	assert.Equal(t, 50, lines[0].Product.Stock)
}

func TestAddItemRejectsBadQuantities(t *testing.T) {
	e := newTestEngine(t)
	p := testProduct(1, "10.00", 3)

	assert.ErrorIs(t, e.AddItem(p, 0), store.ErrInvalid)
	assert.ErrorIs(t, e.AddItem(p, -2), store.ErrInvalid)
	assert.ErrorIs(t, e.AddItem(p, 4), store.ErrInvalid, "above stock")

	require.NoError(t, e.AddItem(p, 2))
	assert.ErrorIs(t, e.AddItem(p, 2), store.ErrInvalid, "merged quantity above stock")
	require.NoError(t, e.AddItem(p, 1))
	assert.Equal(t, 3, e.ItemCount())
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.AddItem(testProduct(1, "10.00", 50), 2))
	require.NoError(t, e.AddItem(testProduct(2, "5.00", 50), 1))

	require.NoError(t, e.UpdateQuantity(1, 0))
	require.Len(t, e.Lines(), 1)

	require.NoError(t, e.UpdateQuantity(2, -5))
	assert.Empty(t, e.Lines())
}

func TestUpdateQuantityOverwritesAndClampsToStock(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.AddItem(testProduct(1, "10.00", 5), 1))

	require.NoError(t, e.UpdateQuantity(1, 4))
	assert.Equal(t, 4, e.Lines()[0].Quantity)

	assert.ErrorIs(t, e.UpdateQuantity(1, 6), store.ErrInvalid)
	assert.Equal(t, 4, e.Lines()[0].Quantity, "failed update must not change the line")
}

func TestUpdateAndRemoveUnknownProductAreNoOps(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.UpdateQuantity(9, 3))
	require.NoError(t, e.RemoveItem(9))
	assert.Empty(t, e.Lines())
}

func TestTotalsScenario(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.AddItem(testProduct(1, "10.00", 50), 2))
	require.NoError(t, e.AddItem(testProduct(2, "25.00", 50), 1))

	got := e.Totals()
	assert.True(t, got.Subtotal.Equal(dec("45.00")), "subtotal=%s", got.Subtotal)
	assert.True(t, got.Commission.Equal(dec("1.35")), "commission=%s", got.Commission)
	assert.True(t, got.Total.Equal(dec("46.35")), "total=%s", got.Total)
	assert.Equal(t, 3, e.ItemCount())
}

func TestTotalsEmptyCartIsAllZero(t *testing.T) {
	e := newTestEngine(t)
	got := e.Totals()
	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.Commission.IsZero())
	assert.True(t, got.Total.IsZero())
	assert.Equal(t, 0, e.ItemCount())
}

func TestCommissionRoundsToCents(t *testing.T) {
	e := newTestEngine(t)
	// 3.75 * 10 = 37.50 → 3% = 1.125, rounds to 1.13
	require.NoError(t, e.AddItem(testProduct(1, "3.75", 100), 10))

	got := e.Totals()
	assert.True(t, got.Commission.Equal(dec("1.13")), "commission=%s", got.Commission)
	assert.True(t, got.Total.Equal(got.Subtotal.Add(got.Commission)))
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	e, err := New(NewFileStorage(path))
	require.NoError(t, err)

	require.NoError(t, e.AddItem(testProduct(1, "10.00", 50), 2))
	require.NoError(t, e.AddItem(testProduct(2, "25.00", 50), 1))
	p3 := testProduct(3, "3.75", 100)
	p3.Specifications = map[string]string{"size": "12x9x6"}
	require.NoError(t, e.AddItem(p3, 4))

	reloaded, err := New(NewFileStorage(path))
	require.NoError(t, err)

	want := e.Lines()
	got := reloaded.Lines()
	require.Len(t, got, 3)
	for i := range want {
		assert.Equal(t, want[i].Quantity, got[i].Quantity)
		assert.Equal(t, want[i].Product.ID, got[i].Product.ID)
		assert.True(t, want[i].Product.Price.Equal(got[i].Product.Price))
	}
	assert.Equal(t, map[string]string{"size": "12x9x6"}, got[2].Product.Specifications)
}

func TestCorruptStorageResetsToEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	e, err := New(NewFileStorage(path))
	require.NoError(t, err, "corruption must be recovered, never surfaced")
	assert.Empty(t, e.Lines())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "corrupt slot must be reset")
}

func TestClearEmptiesCartAndSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	e, err := New(NewFileStorage(path))
	require.NoError(t, err)
	require.NoError(t, e.AddItem(testProduct(1, "10.00", 50), 2))

	require.NoError(t, e.Clear())
	assert.Empty(t, e.Lines())

	reloaded, err := New(NewFileStorage(path))
	require.NoError(t, err)
	assert.Empty(t, reloaded.Lines())
}

func TestLinesReturnsCopies(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.AddItem(testProduct(1, "10.00", 50), 2))

	lines := e.Lines()
	lines[0].Quantity = 99
	lines[0].Product.Price = dec("0.01")

	fresh := e.Lines()
	assert.Equal(t, 2, fresh[0].Quantity)
	assert.True(t, fresh[0].Product.Price.Equal(dec("10.00")))
}
