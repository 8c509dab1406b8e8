package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func record(user, invoice string, day int) *OrderRecord {
	return &OrderRecord{
		UserID:        user,
		InvoiceNumber: invoice,
		TotalAmount:   decimal.NewFromInt(1000),
		OrderDate:     time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC),
		Status:        StatusPending,
	}
}

func TestMemoryStoreRejectsDuplicateInvoice(t *testing.T) {
	s := NewMemoryOrderStore()
	ctx := context.Background()
	if err := s.Create(ctx, record("u1", "INV-A", 1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Create(ctx, record("u2", "INV-A", 2)); err == nil {
		t.Error("expected a duplicate invoice error")
	}
}

func TestMemoryStoreListByUser(t *testing.T) {
	s := NewMemoryOrderStore()
	ctx := context.Background()
	for _, r := range []*OrderRecord{
		record("u1", "INV-A", 1),
		record("u1", "INV-B", 5),
		record("u2", "INV-C", 3),
	} {
		if err := s.Create(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	orders, err := s.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	// newest first
	if orders[0].InvoiceNumber != "INV-B" || orders[1].InvoiceNumber != "INV-A" {
		t.Errorf("unexpected order: %s, %s", orders[0].InvoiceNumber, orders[1].InvoiceNumber)
	}

	got, err := s.GetByInvoice(ctx, "INV-C")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.UserID != "u2" {
		t.Errorf("GetByInvoice = %+v", got)
	}
	missing, err := s.GetByInvoice(ctx, "INV-X")
	if err != nil || missing != nil {
		t.Errorf("missing invoice: got %+v, %v", missing, err)
	}
}
