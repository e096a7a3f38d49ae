package shop

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/smartstock/internal/backup"
	"github.com/roach88/smartstock/internal/inventory"
	"github.com/roach88/smartstock/internal/logging"
	"github.com/roach88/smartstock/internal/model"
	"github.com/roach88/smartstock/internal/store"
	"github.com/roach88/smartstock/internal/testutil"
)

var (
	bangkok = time.FixedZone("ICT", 7*60*60)
	testNow = time.Date(2026, 10, 15, 14, 0, 0, 0, bangkok)
)

// createTestShop opens a fresh store and a shop with a fixed clock and ids.
func createTestShop(t *testing.T, ids ...string) (*Shop, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), store.BackendSQLite)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	sh := New(context.Background(), st,
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(model.NewFixedGenerator(ids...)),
		WithLocation(bangkok),
		WithLogger(logging.Discard()),
	)
	return sh, st
}

func TestNew_LoadsSeed(t *testing.T) {
	sh, _ := createTestShop(t)

	st := sh.State()
	assert.Len(t, st.Categories, 9)
	assert.Len(t, st.Products, 6)
	assert.Empty(t, st.Entries)
	assert.Empty(t, st.Debts)
	assert.Equal(t, bangkok, sh.Location())
}

func TestRecordSale_IceExample(t *testing.T) {
	sh, st := createTestShop(t, "e1")

	e, err := sh.RecordSale(context.Background(), "p_ice", 2, &inventory.IceCount{PreviousLeftover: 3, Collected: 4})
	require.NoError(t, err)

	assert.Equal(t, "e1", e.ID)
	assert.Equal(t, "80", e.TotalPrice.String())
	require.NotNil(t, e.IceDetails)
	assert.Equal(t, 1, e.IceDetails.CurrentLeftover)
	assert.Equal(t, testNow.UnixMilli(), e.Timestamp)

	stored := st.Entries(context.Background())
	require.Len(t, stored, 1)
	assert.Equal(t, "e1", stored[0].ID)
	assert.Equal(t, stored, sh.State().Entries)
}

func TestRecordSale_IceCarriesLeftoverForward(t *testing.T) {
	sh, _ := createTestShop(t, "e1", "e2")

	_, err := sh.RecordSale(context.Background(), "p_ice", 5, &inventory.IceCount{PreviousLeftover: 0, Collected: 1})
	require.NoError(t, err)

	e, err := sh.RecordSale(context.Background(), "p_ice", 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, e.IceDetails.PreviousLeftover)
	assert.Equal(t, 6, e.IceDetails.CurrentLeftover)
}

func TestRecordSale_PrependsToLog(t *testing.T) {
	sh, _ := createTestShop(t, "e1", "e2")

	_, err := sh.RecordSale(context.Background(), "p1", 1, nil)
	require.NoError(t, err)
	_, err = sh.RecordSale(context.Background(), "p3", 2, nil)
	require.NoError(t, err)

	entries := sh.State().Entries
	require.Len(t, entries, 2)
	assert.Equal(t, "e2", entries[0].ID)
	assert.Equal(t, "120", entries[0].TotalPrice.String())
}

func TestRecordSale_Errors(t *testing.T) {
	sh, st := createTestShop(t, "e1")

	_, err := sh.RecordSale(context.Background(), "missing", 1, nil)
	assert.ErrorIs(t, err, inventory.ErrUnknownProduct)

	_, err = sh.RecordSale(context.Background(), "p1", 0, nil)
	assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)

	assert.Empty(t, st.Entries(context.Background()))
}

func TestRecordDebtAndSettle(t *testing.T) {
	sh, st := createTestShop(t, "d1", "d2")

	_, err := sh.RecordDebt(context.Background(), "ลุงชัย", "ค่าเหล้า", decimal.NewFromInt(120))
	require.NoError(t, err)
	_, err = sh.RecordDebt(context.Background(), "ป้าแดง", "ค่าน้ำแข็ง", decimal.NewFromInt(40))
	require.NoError(t, err)

	debts := sh.State().Debts
	require.Len(t, debts, 2)
	assert.Equal(t, "d2", debts[0].ID)

	require.NoError(t, sh.DeleteDebt(context.Background(), "d2"))
	assert.Len(t, sh.State().Debts, 1)
	assert.Len(t, st.Debts(context.Background()), 1)

	_, err = sh.RecordDebt(context.Background(), "", "x", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, inventory.ErrEmptyName)
}

func TestRejectedInputConsumesNoID(t *testing.T) {
	sh, _ := createTestShop(t, "x1", "x2")
	ctx := context.Background()

	_, err := sh.RecordSale(ctx, "p1", 0, nil)
	assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)
	_, err = sh.RecordDebt(ctx, " ", "x", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, inventory.ErrEmptyName)
	_, err = sh.AddCategory(ctx, "", "")
	assert.ErrorIs(t, err, inventory.ErrEmptyName)
	_, err = sh.AddProduct(ctx, "cat_soda", "ขนม", decimal.Zero, "ห่อ")
	assert.ErrorIs(t, err, inventory.ErrInvalidPrice)

	entry, err := sh.RecordSale(ctx, "p1", 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "x1", entry.ID)

	cat, err := sh.AddCategory(ctx, "ขนม", "")
	require.NoError(t, err)
	assert.Equal(t, "cat_x2", cat.ID)
}

func TestCategoryLifecycle(t *testing.T) {
	sh, st := createTestShop(t, "snacks", "p_snack")

	cat, err := sh.AddCategory(context.Background(), "ขนม", "")
	require.NoError(t, err)
	assert.Equal(t, "cat_snacks", cat.ID)
	assert.Len(t, st.Categories(context.Background()), 10)

	prod, err := sh.AddProduct(context.Background(), cat.ID, "เลย์", decimal.NewFromInt(20), "ถุง")
	require.NoError(t, err)
	assert.Equal(t, "p_snack", prod.ID)

	err = sh.DeleteCategory(context.Background(), cat.ID)
	var inUse *inventory.CategoryInUseError
	require.True(t, errors.As(err, &inUse))
	assert.Equal(t, 1, inUse.Count)
	assert.Len(t, st.Categories(context.Background()), 10, "store untouched on rejection")
	assert.Len(t, sh.State().Categories, 10)

	require.NoError(t, sh.DeleteProduct(context.Background(), prod.ID))
	require.NoError(t, sh.DeleteCategory(context.Background(), cat.ID))
	assert.Len(t, st.Categories(context.Background()), 9)
	assert.Len(t, st.Products(context.Background()), 6)
}

func TestSubscribe_ReceivesEveryMutation(t *testing.T) {
	sh, _ := createTestShop(t, "e1", "d1")

	var seen []State
	unsubscribe := sh.Subscribe(func(st State) {
		seen = append(seen, st)
	})

	_, err := sh.RecordSale(context.Background(), "p1", 1, nil)
	require.NoError(t, err)
	_, err = sh.RecordDebt(context.Background(), "ลุงชัย", "", decimal.NewFromInt(10))
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Len(t, seen[0].Entries, 1)
	assert.Empty(t, seen[0].Debts)
	assert.Len(t, seen[1].Debts, 1)

	unsubscribe()
	require.NoError(t, sh.DeleteDebt(context.Background(), "d1"))
	assert.Len(t, seen, 2)
}

func TestSubscribe_HandlerMayReadState(t *testing.T) {
	sh, _ := createTestShop(t, "e1")

	var got int
	sh.Subscribe(func(State) {
		got = len(sh.State().Entries)
	})

	_, err := sh.RecordSale(context.Background(), "p1", 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestSubscribe_NotCalledOnRejection(t *testing.T) {
	sh, _ := createTestShop(t)

	calls := 0
	sh.Subscribe(func(State) { calls++ })

	assert.Error(t, sh.DeleteCategory(context.Background(), "cat_soda"))
	assert.Zero(t, calls)
}

func TestExportImport(t *testing.T) {
	src, _ := createTestShop(t, "e1", "d1")
	_, err := src.RecordSale(context.Background(), "p_ice", 2, &inventory.IceCount{PreviousLeftover: 3, Collected: 4})
	require.NoError(t, err)
	_, err = src.RecordDebt(context.Background(), "ลุงชัย", "ค่าเหล้า", decimal.NewFromInt(120))
	require.NoError(t, err)

	doc := src.Export(context.Background())
	assert.Equal(t, "2026-10-15T07:00:00.000Z", doc.ExportedAt)
	assert.Equal(t, "smartstock-backup-2026-10-15.json", src.ExportFileName(backup.FormatJSON))

	data, err := encodeJSON(doc)
	require.NoError(t, err)

	dst, _ := createTestShop(t)
	notified := 0
	dst.Subscribe(func(State) { notified++ })

	_, err = dst.Import(context.Background(), data, backup.FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, 1, notified, "reload publishes the imported state")
	require.Len(t, dst.State().Entries, 1)
	assert.Equal(t, 1, dst.State().Entries[0].IceDetails.CurrentLeftover)
	require.Len(t, dst.State().Debts, 1)
	assert.Equal(t, "ลุงชัย", dst.State().Debts[0].CustomerName)
}

func TestImport_InvalidKeepsState(t *testing.T) {
	sh, _ := createTestShop(t, "e1")
	_, err := sh.RecordSale(context.Background(), "p1", 1, nil)
	require.NoError(t, err)

	_, err = sh.Import(context.Background(), []byte("{oops"), backup.FormatJSON)
	assert.ErrorIs(t, err, backup.ErrInvalidDocument)
	assert.Len(t, sh.State().Entries, 1)
}

func TestSummary(t *testing.T) {
	sh, _ := createTestShop(t, "e1", "e2", "d1")

	_, err := sh.RecordSale(context.Background(), "p_ice", 2, nil)
	require.NoError(t, err)
	_, err = sh.RecordSale(context.Background(), "p3", 1, nil)
	require.NoError(t, err)
	_, err = sh.RecordDebt(context.Background(), "ลุงชัย", "", decimal.RequireFromString("99.5"))
	require.NoError(t, err)

	sum := sh.Summary()
	assert.Equal(t, "140", sum.Totals.Today.String())
	assert.Equal(t, "140", sum.Totals.Year.String())
	require.Len(t, sum.Distribution, 2)
	assert.Equal(t, "เบียร์", sum.Distribution[0].Name)
	require.Len(t, sum.Timeline, TimelineDays)
	assert.Equal(t, "140", sum.Timeline[TimelineDays-1].Total.String())
	assert.Equal(t, "99.5", sum.TotalDebt.String())
	assert.Equal(t, 1, sum.Debtors)
}

func TestUsage(t *testing.T) {
	sh, _ := createTestShop(t, "e1")
	_, err := sh.RecordSale(context.Background(), "p1", 1, nil)
	require.NoError(t, err)

	u, err := sh.Usage(context.Background())
	require.NoError(t, err)
	assert.Positive(t, u.Bytes)
}

type failingRepo struct {
	Repository
}

func (failingRepo) AddEntry(context.Context, model.StockEntry) ([]model.StockEntry, error) {
	return nil, errors.New("disk full")
}

func TestAddEntry_RepositoryErrorKeepsState(t *testing.T) {
	_, st := createTestShop(t)
	sh := New(context.Background(), failingRepo{Repository: st},
		WithLogger(logging.Discard()))

	calls := 0
	sh.Subscribe(func(State) { calls++ })

	err := sh.AddEntry(context.Background(), model.StockEntry{ID: "e1"})
	require.Error(t, err)
	assert.Empty(t, sh.State().Entries)
	assert.Zero(t, calls)
}

func TestSummary_AcrossDays(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), store.BackendBolt)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	clock := testutil.NewClock(testNow.AddDate(0, 0, -10))
	sh := New(context.Background(), st,
		WithClock(clock.Now),
		WithIDGenerator(model.NewFixedGenerator("e1", "e2", "e3")),
		WithLocation(bangkok),
		WithLogger(logging.Discard()),
	)

	// 2026-10-05: outside the timeline, inside the month.
	_, err = sh.RecordSale(context.Background(), "p3", 1, nil)
	require.NoError(t, err)

	// 2026-10-11 (Sunday): first day of the week.
	clock.AddDays(6)
	_, err = sh.RecordSale(context.Background(), "p1", 2, nil)
	require.NoError(t, err)

	// 2026-10-15: today.
	clock.Set(testNow)
	_, err = sh.RecordSale(context.Background(), "p4", 1, nil)
	require.NoError(t, err)

	sum := sh.Summary()
	assert.Equal(t, "7", sum.Totals.Today.String())
	assert.Equal(t, "37", sum.Totals.Week.String())
	assert.Equal(t, "97", sum.Totals.Month.String())
	assert.Equal(t, "97", sum.Totals.Year.String())

	require.Len(t, sum.Timeline, TimelineDays)
	assert.Equal(t, "30", sum.Timeline[2].Total.String())
	assert.Equal(t, "7", sum.Timeline[6].Total.String())
	assert.True(t, sum.Timeline[0].Total.IsZero())
}
