package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spotfurnish/quotegen/layout"
	"github.com/spotfurnish/quotegen/mailer"
	"github.com/spotfurnish/quotegen/pricing"
	"github.com/spotfurnish/quotegen/quote"
	"github.com/spotfurnish/quotegen/store"
)

type seqInvoices struct {
	mu sync.Mutex
	n  int
}

func (s *seqInvoices) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("INV-TEST%04d", s.n)
}

type fakeRenderer struct {
	fail  bool
	pages int
}

func (r *fakeRenderer) Render(doc *layout.Document) ([]byte, error) {
	if r.fail {
		return nil, errors.New("render broke")
	}
	r.pages = len(doc.Pages)
	return []byte("%PDF-fake"), nil
}

type recordingMailer struct {
	mu       sync.Mutex
	failures int
	sent     []mailer.Message
	attempts int
}

func (m *recordingMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts++
	if m.failures > 0 {
		m.failures--
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, msg)
	return nil
}

type stubFetcher struct {
	data []byte
	err  error
}

func (f *stubFetcher) Fetch(context.Context, string) ([]byte, error) { return f.data, f.err }

func fixedWidth(text, font string, size float64) float64 {
	return float64(len([]rune(text))) * size * 0.5
}

type fixture struct {
	checkout *Checkout
	orders   *store.MemoryOrderStore
	mail     *recordingMailer
	rend     *fakeRenderer
}

func newFixture(t *testing.T, mutate func(*Options)) *fixture {
	t.Helper()
	clock := func() time.Time {
		return time.Date(2026, time.January, 2, 10, 0, 0, 0, time.UTC)
	}
	orders := store.NewMemoryOrderStore()
	mail := &recordingMailer{}
	rend := &fakeRenderer{}
	opts := Options{
		Engine:   pricing.NewEngine(clock, &seqInvoices{}, nil),
		Fees:     pricing.DefaultFees(),
		Company:  quote.Company{Name: "Spot Furnish Rentals", UPI: "9844723432"},
		Measurer: layout.NewMeasurer(fixedWidth),
		Renderer: rend,
		Orders:   orders,
		Mailer:   mail,
		Images:   &stubFetcher{data: []byte{1, 2, 3}},
		LogoURL:  "https://example.com/logo.jpeg",
	}
	if mutate != nil {
		mutate(&opts)
	}
	return &fixture{checkout: NewCheckout(opts), orders: orders, mail: mail, rend: rend}
}

func sampleRequest() CheckoutRequest {
	return CheckoutRequest{
		UserID: "user-1",
		Products: []ProductSelection{
			{ProductID: "p1", Name: "Queen Bed", Price: decimal.NewFromInt(500), Quantity: 2, TenureMonths: 3},
		},
		Customer:   quote.Customer{Name: "Asha", Email: "asha@example.com", Phone: "+91 9000000000", Address: "12 MG Road, Bengaluru"},
		AdminEmail: "admin@example.com",
	}
}

func TestProcessHappyPath(t *testing.T) {
	f := newFixture(t, nil)
	res, err := f.checkout.Process(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.InvoiceNumber == "" || res.OrderID == "" {
		t.Fatalf("incomplete result: %+v", res)
	}

	rec, err := f.orders.GetByInvoice(context.Background(), res.InvoiceNumber)
	if err != nil || rec == nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if rec.Status != store.StatusPending {
		t.Errorf("status = %q, want Pending", rec.Status)
	}
	if !rec.TotalAmount.Equal(decimal.NewFromInt(3750)) {
		t.Errorf("total = %s, want 3750", rec.TotalAmount)
	}
	var ids []string
	if err := json.Unmarshal(rec.ProductIDs, &ids); err != nil || len(ids) != 1 || ids[0] != "p1" {
		t.Errorf("product ids = %s", rec.ProductIDs)
	}

	if len(f.mail.sent) != 2 {
		t.Fatalf("sent %d emails, want customer and admin", len(f.mail.sent))
	}
	for _, msg := range f.mail.sent {
		if len(msg.Attachment) == 0 {
			t.Errorf("email to %s has no attachment", msg.To)
		}
	}
	if f.rend.pages < 2 {
		t.Errorf("rendered %d pages, want the terms to spill past page 1", f.rend.pages)
	}
}

func TestProcessEmptyCart(t *testing.T) {
	f := newFixture(t, nil)
	req := sampleRequest()
	req.Products = nil

	_, err := f.checkout.Process(context.Background(), req)
	var empty pricing.EmptyCartError
	if !errors.As(err, &empty) {
		t.Fatalf("err = %v, want EmptyCartError", err)
	}
	if orders, _ := f.orders.ListByUser(context.Background(), "user-1"); len(orders) != 0 {
		t.Error("order persisted despite validation failure")
	}
	if f.mail.attempts != 0 {
		t.Error("email sent despite validation failure")
	}
}

func TestProcessRenderFailureDoesNotPersist(t *testing.T) {
	f := newFixture(t, func(o *Options) {
		o.Renderer = &fakeRenderer{fail: true}
	})
	_, err := f.checkout.Process(context.Background(), sampleRequest())
	if err == nil {
		t.Fatal("expected a render error")
	}
	if orders, _ := f.orders.ListByUser(context.Background(), "user-1"); len(orders) != 0 {
		t.Error("order persisted despite render failure")
	}
	if f.mail.attempts != 0 {
		t.Error("email sent despite render failure")
	}
}

func TestProcessEmailFailureKeepsOrder(t *testing.T) {
	f := newFixture(t, nil)
	f.mail.failures = 100 // every attempt fails

	res, err := f.checkout.Process(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	rec, _ := f.orders.GetByInvoice(context.Background(), res.InvoiceNumber)
	if rec == nil || rec.Status != store.StatusPending {
		t.Errorf("order not kept Pending after email failure: %+v", rec)
	}
	// bounded retries for customer and admin mail
	if f.mail.attempts != 2*emailAttempts {
		t.Errorf("attempts = %d, want %d", f.mail.attempts, 2*emailAttempts)
	}
}

func TestProcessLogoFailureContinues(t *testing.T) {
	f := newFixture(t, func(o *Options) {
		o.Images = &stubFetcher{err: errors.New("404")}
	})
	if _, err := f.checkout.Process(context.Background(), sampleRequest()); err != nil {
		t.Fatalf("Process: %v", err)
	}
}

func TestProcessUnknownDiscountProceeds(t *testing.T) {
	f := newFixture(t, nil)
	req := sampleRequest()
	req.DiscountCode = "NOPE"
	res, err := f.checkout.Process(context.Background(), req)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	rec, _ := f.orders.GetByInvoice(context.Background(), res.InvoiceNumber)
	if !rec.TotalAmount.Equal(decimal.NewFromInt(3750)) {
		t.Errorf("total = %s, want undiscounted 3750", rec.TotalAmount)
	}
}

func TestProcessHonorsRequestedDeliveryDate(t *testing.T) {
	f := newFixture(t, nil)
	req := sampleRequest()
	want := time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC)
	req.DeliveryDate = &DeliveryDate{Time: want}

	if _, err := f.checkout.Process(context.Background(), req); err != nil {
		t.Fatalf("Process: %v", err)
	}
	// the delivery date reaches the document via the script; covered by
	// quote tests, here we only assert the pipeline accepted it
}

func TestDeliveryDateUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{`"2026-02-14"`, time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC), false},
		{`"2026-02-14T10:30:00Z"`, time.Date(2026, time.February, 14, 10, 30, 0, 0, time.UTC), false},
		{`""`, time.Time{}, false},
		{`"14/02/2026"`, time.Time{}, true},
		{`42`, time.Time{}, true},
	}
	for _, tc := range tests {
		var d DeliveryDate
		err := json.Unmarshal([]byte(tc.in), &d)
		if (err != nil) != tc.wantErr {
			t.Errorf("unmarshal %s: err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && !d.Time.Equal(tc.want) {
			t.Errorf("unmarshal %s = %v, want %v", tc.in, d.Time, tc.want)
		}
	}
}
