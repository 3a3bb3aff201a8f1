package commercial

import (
	"context"
	"time"

	"github.com/mesharis-cell/platform-api/internal/application/notify"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// Dobles de prueba en memoria para los puertos de persistencia. Devuelven lo
// que se les configura; los métodos de escritura solo registran la llamada.

type fakeOrderRepo struct {
	order *entity.Order
	err   error
}

func (f *fakeOrderRepo) Create(*entity.Order) error { return f.err }
func (f *fakeOrderRepo) GetByID(id, platformID string) (*entity.Order, error) {
	return f.order, f.err
}
func (f *fakeOrderRepo) ListByDateRange(string, time.Time, time.Time) ([]*entity.Order, error) {
	if f.order == nil {
		return nil, f.err
	}
	return []*entity.Order{f.order}, f.err
}
func (f *fakeOrderRepo) UpdateStatus(string, string, string, time.Time) error { return f.err }
func (f *fakeOrderRepo) UpdateCommercialStatus(string, string, string, time.Time) error {
	return f.err
}

type fakeRequestRepo struct {
	request *entity.ServiceRequest
	err     error
}

func (f *fakeRequestRepo) Create(*entity.ServiceRequest) error { return f.err }
func (f *fakeRequestRepo) GetByID(id, platformID string) (*entity.ServiceRequest, error) {
	return f.request, f.err
}
func (f *fakeRequestRepo) ListByDateRange(string, time.Time, time.Time) ([]*entity.ServiceRequest, error) {
	if f.request == nil {
		return nil, f.err
	}
	return []*entity.ServiceRequest{f.request}, f.err
}
func (f *fakeRequestRepo) UpdateStatus(string, string, string, time.Time) error { return f.err }
func (f *fakeRequestRepo) UpdateCommercialStatus(string, string, string, time.Time) error {
	return f.err
}

type fakeCompanyRepo struct {
	company *entity.Company
	err     error
}

func (f *fakeCompanyRepo) Create(*entity.Company) error { return f.err }
func (f *fakeCompanyRepo) GetByID(id, platformID string) (*entity.Company, error) {
	return f.company, f.err
}
func (f *fakeCompanyRepo) List(string) ([]*entity.Company, error) {
	return []*entity.Company{f.company}, f.err
}

type fakePricingRepo struct {
	record *entity.PricingRecord
	err    error

	created            *entity.PricingRecord
	updatedEstimateURL string
}

func (f *fakePricingRepo) Create(r *entity.PricingRecord) error {
	f.created = r
	return f.err
}
func (f *fakePricingRepo) GetByContext(contextType, contextID, platformID string) (*entity.PricingRecord, error) {
	return f.record, f.err
}
func (f *fakePricingRepo) UpdateEstimateURL(contextType, contextID, platformID, url string, updatedAt time.Time) error {
	f.updatedEstimateURL = url
	return f.err
}

type fakeLineItemRepo struct {
	items []*entity.LineItem
	err   error
}

func (f *fakeLineItemRepo) Create(*entity.LineItem) error { return f.err }
func (f *fakeLineItemRepo) ListByContext(contextType, contextID, platformID string) ([]*entity.LineItem, error) {
	return f.items, f.err
}
func (f *fakeLineItemRepo) Void(string, string, time.Time) error { return f.err }

type fakeInvoiceRepo struct {
	invoice    *entity.Invoice
	lastNumber string
	err        error
}

func (f *fakeInvoiceRepo) Create(*entity.Invoice) error { return f.err }
func (f *fakeInvoiceRepo) GetByID(id, platformID string) (*entity.Invoice, error) {
	return f.invoice, f.err
}
func (f *fakeInvoiceRepo) GetByContext(contextType, contextID, platformID string) (*entity.Invoice, error) {
	return f.invoice, f.err
}
func (f *fakeInvoiceRepo) LastNumberWithPrefix(platformID, prefix string) (string, error) {
	return f.lastNumber, f.err
}
func (f *fakeInvoiceRepo) UpdatePDF(string, string, string, string, time.Time) error { return f.err }
func (f *fakeInvoiceRepo) MarkPaid(string, string, time.Time) error                  { return f.err }

// fakeSender captura los mensajes construidos por los casos de uso.
type fakeSender struct {
	sent []notify.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msgs []notify.Message) error {
	f.sent = append(f.sent, msgs...)
	return f.err
}

type fakeStorage struct {
	uploads map[string][]byte
	deleted []string
	err     error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(_ context.Context, key string, data []byte, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.uploads[key] = data
	return nil
}

func (f *fakeStorage) Download(_ context.Context, key string) ([]byte, error) {
	return f.uploads[key], f.err
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return f.err
}

func (f *fakeStorage) PublicURL(key string) string { return "https://cdn.test/" + key }

type fakeRenderer struct{ err error }

func (f *fakeRenderer) Render(_ context.Context, _ *DocumentPayload) ([]byte, error) {
	return []byte("%PDF-1.4"), f.err
}

// fakeTxRunner ejecuta el callback directamente con los repos configurados,
// sin transacción real.
type fakeTxRunner struct {
	orderRepo   *fakeOrderRepo
	requestRepo *fakeRequestRepo
	pricingRepo *fakePricingRepo
	lineRepo    *fakeLineItemRepo
	invoiceRepo *fakeInvoiceRepo
}

func (f *fakeTxRunner) RunCommercial(_ context.Context, fn func(
	repository.OrderRepository,
	repository.ServiceRequestRepository,
	repository.PricingRepository,
	repository.LineItemRepository,
	repository.InvoiceRepository,
) error) error {
	return fn(f.orderRepo, f.requestRepo, f.pricingRepo, f.lineRepo, f.invoiceRepo)
}
