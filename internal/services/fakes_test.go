package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"oneconversion/internal/gateway"
	"oneconversion/internal/models/db_models"
)

// statusStep is one scripted answer from the fake gateway.
type statusStep struct {
	status string
	err    error
}

type fakeGateway struct {
	mu          sync.Mutex
	charge      *gateway.Charge
	chargeErr   error
	chargeCalls int

	statusSeq   []statusStep
	statusIdx   int
	statusCalls int
}

func (f *fakeGateway) CreateCharge(_ context.Context, _ int64) (*gateway.Charge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chargeCalls++
	if f.chargeErr != nil {
		return nil, f.chargeErr
	}
	return f.charge, nil
}

// FetchChargeStatus walks the scripted sequence and repeats the last step
// once it is exhausted.
func (f *fakeGateway) FetchChargeStatus(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls++
	if len(f.statusSeq) == 0 {
		return "pending", nil
	}
	step := f.statusSeq[f.statusIdx]
	if f.statusIdx < len(f.statusSeq)-1 {
		f.statusIdx++
	}
	return step.status, step.err
}

type statusUpdate struct {
	transactionID string
	status        db_models.SaleStatus
}

type fakeSaleRepo struct {
	mu        sync.Mutex
	sales     map[string]*db_models.Sale
	updates   []statusUpdate
	createErr error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[string]*db_models.Sale{}}
}

func (f *fakeSaleRepo) Create(_ context.Context, sale *db_models.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if sale.Status == "" {
		sale.Status = db_models.SaleStatusPendente
	}
	copied := *sale
	f.sales[sale.TransactionID] = &copied
	return nil
}

func (f *fakeSaleRepo) UpdateStatus(_ context.Context, transactionID string, status db_models.SaleStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, statusUpdate{transactionID: transactionID, status: status})
	if sale, ok := f.sales[transactionID]; ok && sale.Status == db_models.SaleStatusPendente {
		sale.Status = status
	}
	return nil
}

func (f *fakeSaleRepo) FindByTransactionID(_ context.Context, transactionID string) (*db_models.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sale, ok := f.sales[transactionID]
	if !ok {
		return nil, nil
	}
	copied := *sale
	return &copied, nil
}

func (f *fakeSaleRepo) ListAll(_ context.Context) ([]db_models.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]db_models.Sale, 0, len(f.sales))
	for _, sale := range f.sales {
		out = append(out, *sale)
	}
	return out, nil
}

func (f *fakeSaleRepo) ListRecent(ctx context.Context, limit int) ([]db_models.Sale, error) {
	all, err := f.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeSaleRepo) CountByStatus(_ context.Context, status db_models.SaleStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, sale := range f.sales {
		if sale.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeSaleRepo) SumAmountByStatus(_ context.Context, status db_models.SaleStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total int64
	for _, sale := range f.sales {
		if sale.Status == status {
			total += sale.AmountInCents
		}
	}
	return total, nil
}

func (f *fakeSaleRepo) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

func (f *fakeSaleRepo) saleStatus(transactionID string) db_models.SaleStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if sale, ok := f.sales[transactionID]; ok {
		return sale.Status
	}
	return ""
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*db_models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*db_models.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, product *db_models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *db_models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) FindBySlug(_ context.Context, slug string) (*db_models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, product := range f.products {
		if product.Slug == slug {
			copied := *product
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListAll(_ context.Context) ([]db_models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]db_models.Product, 0, len(f.products))
	for _, product := range f.products {
		out = append(out, *product)
	}
	return out, nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[uuid.UUID]*db_models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[uuid.UUID]*db_models.Review{}}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *db_models.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	copied := *review
	f.reviews[review.ID] = &copied
	return nil
}

func (f *fakeReviewRepo) Update(_ context.Context, review *db_models.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *review
	f.reviews[review.ID] = &copied
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	review, ok := f.reviews[id]
	if !ok {
		return nil, nil
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) ListAll(_ context.Context) ([]db_models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]db_models.Review, 0, len(f.reviews))
	for _, review := range f.reviews {
		out = append(out, *review)
	}
	return out, nil
}

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[email]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	copied := *account
	f.accounts[account.Email] = &copied
	return nil
}

type fakeSettingRepo struct {
	mu       sync.Mutex
	settings map[string]datatypes.JSON
	upserts  int
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{settings: map[string]datatypes.JSON{}}
}

func (f *fakeSettingRepo) Find(_ context.Context, name string) (*db_models.Setting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payload, ok := f.settings[name]
	if !ok {
		return nil, nil
	}
	return &db_models.Setting{Name: name, Payload: payload}, nil
}

func (f *fakeSettingRepo) Upsert(_ context.Context, name string, payload datatypes.JSON) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	f.settings[name] = payload
	return nil
}
