package stock_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockly/stock-management/internal/stock/domain"
	"github.com/stockly/stock-management/internal/stock/usecase/command"
	"github.com/stockly/stock-management/internal/stock/usecase/query"
)

// fakeStockRepository is an in-memory StockRepository used to drive whole
// create/update/get/delete flows without a database.
type fakeStockRepository struct {
	stocks       map[string]*domain.Stock
	productLines map[string][]domain.StockProductLine // keyed by stock id
	variantLines map[string][]domain.StockVariantLine // keyed by product line id
}

func newFakeStockRepository() *fakeStockRepository {
	return &fakeStockRepository{
		stocks:       map[string]*domain.Stock{},
		productLines: map[string][]domain.StockProductLine{},
		variantLines: map[string][]domain.StockVariantLine{},
	}
}

func (f *fakeStockRepository) Create(_ context.Context, stock *domain.Stock) error {
	copied := *stock
	f.stocks[stock.ID] = &copied
	return nil
}

func (f *fakeStockRepository) FindByID(_ context.Context, tenantID, id string) (*domain.Stock, error) {
	stock, ok := f.stocks[id]
	if !ok || stock.TenantID != tenantID {
		return nil, domain.ErrStockNotFound
	}
	copied := *stock
	return &copied, nil
}

func (f *fakeStockRepository) NameExists(_ context.Context, tenantID, name, excludeID string) (bool, error) {
	for _, s := range f.stocks {
		if s.TenantID == tenantID && s.Name == name && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStockRepository) UpdateName(_ context.Context, stock *domain.Stock) error {
	stored, ok := f.stocks[stock.ID]
	if !ok || stored.TenantID != stock.TenantID {
		return domain.ErrStockNotFound
	}
	if stored.Version != stock.Version {
		return domain.ErrConcurrentModification
	}
	stored.Name = stock.Name
	stored.Version++
	return nil
}

func (f *fakeStockRepository) ReplaceChildren(_ context.Context, tenantID, stockID string, lines []domain.StockProductLine) error {
	for _, old := range f.productLines[stockID] {
		delete(f.variantLines, old.ID)
	}
	delete(f.productLines, stockID)

	stored := make([]domain.StockProductLine, 0, len(lines))
	for _, line := range lines {
		f.variantLines[line.ID] = append([]domain.StockVariantLine{}, line.VariantLines...)
		flat := line
		flat.VariantLines = nil
		stored = append(stored, flat)
	}
	f.productLines[stockID] = stored
	return nil
}

func (f *fakeStockRepository) Delete(_ context.Context, tenantID, id string) error {
	stock, ok := f.stocks[id]
	if !ok || stock.TenantID != tenantID {
		return domain.ErrStockNotFound
	}
	for _, line := range f.productLines[id] {
		delete(f.variantLines, line.ID)
	}
	delete(f.productLines, id)
	delete(f.stocks, id)
	return nil
}

func (f *fakeStockRepository) ListProductLines(_ context.Context, tenantID, stockID string) ([]domain.StockProductLine, error) {
	lines := append([]domain.StockProductLine{}, f.productLines[stockID]...)
	sort.Slice(lines, func(i, j int) bool { return lines[i].Position < lines[j].Position })
	return lines, nil
}

func (f *fakeStockRepository) ListVariantLines(_ context.Context, tenantID, stockProductID string) ([]domain.StockVariantLine, error) {
	lines := append([]domain.StockVariantLine{}, f.variantLines[stockProductID]...)
	sort.Slice(lines, func(i, j int) bool { return lines[i].Position < lines[j].Position })
	return lines, nil
}

func (f *fakeStockRepository) List(_ context.Context, tenantID string, skip, take int) ([]domain.Stock, int64, error) {
	var all []domain.Stock
	for _, s := range f.stocks {
		if s.TenantID == tenantID {
			all = append(all, *s)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	if skip >= len(all) {
		return []domain.Stock{}, total, nil
	}
	end := skip + take
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], total, nil
}

func (f *fakeStockRepository) CountLinesForProduct(_ context.Context, tenantID, productID string) (int64, error) {
	var count int64
	for _, lines := range f.productLines {
		for _, line := range lines {
			if line.TenantID == tenantID && line.ProductID == productID {
				count++
			}
		}
	}
	return count, nil
}

// fakeCatalog serves a fixed catalog snapshot.
type fakeCatalog struct {
	products map[string]domain.CatalogProduct
	variants map[string]domain.CatalogVariant
}

func (f *fakeCatalog) GetProducts(_ context.Context, _ string, ids []string) (map[string]domain.CatalogProduct, error) {
	out := map[string]domain.CatalogProduct{}
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *fakeCatalog) GetVariants(_ context.Context, _ string, ids []string) (map[string]domain.CatalogVariant, error) {
	out := map[string]domain.CatalogVariant{}
	for _, id := range ids {
		if v, ok := f.variants[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func strPtr(s string) *string {
	return &s
}

func warehouseCatalog() *fakeCatalog {
	return &fakeCatalog{
		products: map[string]domain.CatalogProduct{
			"P1": {ID: "P1", Name: "Pallet Rack A"},
		},
		variants: map[string]domain.CatalogVariant{
			"V1": {ID: "V1", ProductID: "P1", SKU: strPtr("SKU-V1"), StockQuantity: 10},
			"V2": {ID: "V2", ProductID: "P1", SKU: strPtr("SKU-V2"), StockQuantity: 1},
		},
	}
}

// TestStockLifecycle_WarehouseFlow walks one aggregate through rejected
// drafts, a successful create, a full replace update, and deletion.
func TestStockLifecycle_WarehouseFlow(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStockRepository()
	catalog := warehouseCatalog()

	create := command.NewCreateStockHandler(repo, catalog)
	update := command.NewUpdateStockHandler(repo, catalog)
	del := command.NewDeleteStockHandler(repo)
	get := query.NewGetStockHandler(repo, catalog)

	// Draft 1: duplicate variant line within the product entry.
	_, err := create.Handle(ctx, command.CreateStockCommand{
		TenantID: "t1",
		Input: domain.StockWriteInput{
			Name: "Warehouse A",
			Products: []domain.ProductLineInput{{
				ProductID: "P1",
				Variants: []domain.VariantLineInput{
					{ProductVariantID: strPtr("V1"), Quantity: 3},
					{ProductVariantID: strPtr("V1"), Quantity: 4},
				},
			}},
		},
	})
	be := domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeDuplicateVariantInProduct, be.Code)
	assert.Empty(t, repo.stocks)

	// Draft 2: V2 has only 1 available, 2 requested.
	_, err = create.Handle(ctx, command.CreateStockCommand{
		TenantID: "t1",
		Input: domain.StockWriteInput{
			Name: "Warehouse A",
			Products: []domain.ProductLineInput{{
				ProductID: "P1",
				Variants: []domain.VariantLineInput{
					{ProductVariantID: strPtr("V1"), Quantity: 3},
					{ProductVariantID: strPtr("V2"), Quantity: 2},
				},
			}},
		},
	})
	be = domain.AsBusinessError(err)
	require.NotNil(t, be)
	assert.Equal(t, domain.CodeQuantityExceedsVariantStock, be.Code)
	assert.Equal(t, 2, be.Data["RequestedQuantity"])
	assert.Equal(t, 1, be.Data["AvailableStock"])
	assert.Empty(t, repo.stocks)

	// Draft 3: within availability.
	created, err := create.Handle(ctx, command.CreateStockCommand{
		TenantID: "t1",
		Input: domain.StockWriteInput{
			Name: "Warehouse A",
			Products: []domain.ProductLineInput{{
				ProductID: "P1",
				Variants: []domain.VariantLineInput{
					{ProductVariantID: strPtr("V1"), Quantity: 3},
					{ProductVariantID: strPtr("V2"), Quantity: 1},
				},
			}},
		},
	})
	require.NoError(t, err)

	detail, err := get.Handle(ctx, query.GetStockQuery{TenantID: "t1", ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "Warehouse A", detail.Name)
	require.Len(t, detail.Products, 1)
	require.NotNil(t, detail.Products[0].ProductName)
	assert.Equal(t, "Pallet Rack A", *detail.Products[0].ProductName)
	require.Len(t, detail.Products[0].Variants, 2)
	assert.Equal(t, "SKU-V1", *detail.Products[0].Variants[0].VariantSku)
	assert.Equal(t, 3, detail.Products[0].Variants[0].Quantity)
	assert.Equal(t, "SKU-V2", *detail.Products[0].Variants[1].VariantSku)
	assert.Equal(t, 1, detail.Products[0].Variants[1].Quantity)

	// Replace the whole tree: one unspecified-variant line remains.
	_, err = update.Handle(ctx, command.UpdateStockCommand{
		TenantID: "t1",
		ID:       created.ID,
		Input: domain.StockWriteInput{
			Name: "Warehouse A - East",
			Products: []domain.ProductLineInput{{
				ProductID: "P1",
				Variants: []domain.VariantLineInput{
					{ProductVariantID: nil, Quantity: 5},
				},
			}},
		},
	})
	require.NoError(t, err)

	detail, err = get.Handle(ctx, query.GetStockQuery{TenantID: "t1", ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "Warehouse A - East", detail.Name)
	require.Len(t, detail.Products, 1)
	require.Len(t, detail.Products[0].Variants, 1)
	assert.Nil(t, detail.Products[0].Variants[0].ProductVariantID)
	assert.Nil(t, detail.Products[0].Variants[0].VariantSku)
	assert.Equal(t, 5, detail.Products[0].Variants[0].Quantity)

	// Delete cascades: no lines survive the root.
	require.NoError(t, del.Handle(ctx, command.DeleteStockCommand{TenantID: "t1", ID: created.ID}))

	_, err = get.Handle(ctx, query.GetStockQuery{TenantID: "t1", ID: created.ID})
	assert.ErrorIs(t, err, domain.ErrStockNotFound)
	assert.Empty(t, repo.productLines)
	assert.Empty(t, repo.variantLines)
}

// TestStockLifecycle_TenantIsolation verifies a stock is invisible to other
// tenants for reads, writes, and deletes.
func TestStockLifecycle_TenantIsolation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStockRepository()
	catalog := warehouseCatalog()

	create := command.NewCreateStockHandler(repo, catalog)
	del := command.NewDeleteStockHandler(repo)
	get := query.NewGetStockHandler(repo, catalog)

	created, err := create.Handle(ctx, command.CreateStockCommand{
		TenantID: "t1",
		Input:    domain.StockWriteInput{Name: "Warehouse A"},
	})
	require.NoError(t, err)

	_, err = get.Handle(ctx, query.GetStockQuery{TenantID: "t2", ID: created.ID})
	assert.ErrorIs(t, err, domain.ErrStockNotFound)

	err = del.Handle(ctx, command.DeleteStockCommand{TenantID: "t2", ID: created.ID})
	assert.ErrorIs(t, err, domain.ErrStockNotFound)

	// The same name is free in another tenant.
	_, err = create.Handle(ctx, command.CreateStockCommand{
		TenantID: "t2",
		Input:    domain.StockWriteInput{Name: "Warehouse A"},
	})
	assert.NoError(t, err)
}
