package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryOrderStore keeps order records in memory. Used by tests and for
// running the service without a database.
type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders map[string]OrderRecord // by invoice number
}

var _ OrderStore = (*MemoryOrderStore)(nil)

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{orders: map[string]OrderRecord{}}
}

func (s *MemoryOrderStore) Create(_ context.Context, order *OrderRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[order.InvoiceNumber]; ok {
		return fmt.Errorf("duplicate invoice number %s", order.InvoiceNumber)
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	s.orders[order.InvoiceNumber] = *order
	return nil
}

func (s *MemoryOrderStore) GetByInvoice(_ context.Context, invoiceNumber string) (*OrderRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[invoiceNumber]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (s *MemoryOrderStore) ListByUser(_ context.Context, userID string) ([]OrderRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []OrderRecord
	for _, order := range s.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	return out, nil
}
