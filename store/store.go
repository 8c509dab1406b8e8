// Package store persists order records. Pricing and layout never touch it;
// the checkout pipeline writes here only after a document has been
// rendered.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order statuses.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// OrderRecord is the persisted form of a priced order.
type OrderRecord struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        string          `gorm:"index;not null" json:"userId"`
	ProductIDs    datatypes.JSON  `gorm:"type:jsonb" json:"productIds"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2)" json:"totalAmount"`
	OrderDate     time.Time       `json:"orderDate"`
	InvoiceNumber string          `gorm:"uniqueIndex;not null" json:"invoiceNumber"`
	Status        string          `gorm:"default:Pending" json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// BeforeCreate assigns the record ID.
func (o *OrderRecord) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderStore is the persistence boundary of the checkout pipeline.
type OrderStore interface {
	Create(ctx context.Context, order *OrderRecord) error
	GetByInvoice(ctx context.Context, invoiceNumber string) (*OrderRecord, error)
	ListByUser(ctx context.Context, userID string) ([]OrderRecord, error)
}

type gormStore struct {
	db *gorm.DB
}

// NewOrderStore builds a gorm-backed order store.
func NewOrderStore(db *gorm.DB) OrderStore {
	return &gormStore{db: db}
}

func (s *gormStore) Create(ctx context.Context, order *OrderRecord) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *gormStore) GetByInvoice(ctx context.Context, invoiceNumber string) (*OrderRecord, error) {
	var order OrderRecord
	err := s.db.WithContext(ctx).First(&order, "invoice_number = ?", invoiceNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *gormStore) ListByUser(ctx context.Context, userID string) ([]OrderRecord, error) {
	var orders []OrderRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}
