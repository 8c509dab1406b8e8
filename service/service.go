// Package service runs the checkout pipeline: validate, price, compose,
// render, persist, notify. Each order is one synchronous pass; the order
// record is written only after the document rendered, so a failed render
// never leaves a confirmed order without a quotation.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/spotfurnish/quotegen/layout"
	"github.com/spotfurnish/quotegen/mailer"
	"github.com/spotfurnish/quotegen/pricing"
	"github.com/spotfurnish/quotegen/quote"
	"github.com/spotfurnish/quotegen/renderer"
	"github.com/spotfurnish/quotegen/store"
)

const emailAttempts = 3

// ProductSelection is one cart entry as submitted by the checkout
// endpoint, with the tenure's monthly price already copied in.
type ProductSelection struct {
	ProductID    string          `json:"productId"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	TenureMonths int             `json:"tenure"`
	Images       []string        `json:"images"`
}

// DeliveryDate is a requested delivery date. Clients send either a full
// RFC 3339 timestamp or a bare calendar date, both are accepted.
type DeliveryDate struct {
	time.Time
}

func (d *DeliveryDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
	}
	if err != nil {
		return fmt.Errorf("delivery date %q: want an RFC 3339 timestamp or YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// CheckoutRequest is the full checkout submission.
type CheckoutRequest struct {
	UserID       string             `json:"userId"`
	Products     []ProductSelection `json:"products"`
	Customer     quote.Customer     `json:"customer"`
	AdminEmail   string             `json:"adminEmail"`
	DeliveryDate *DeliveryDate      `json:"deliveryDate,omitempty"`
	DiscountCode string             `json:"discountCode,omitempty"`
}

// CheckoutResult reports a completed checkout.
type CheckoutResult struct {
	InvoiceNumber string
	OrderID       string
}

// ImageFetcher loads the letterhead logo. Failures are absorbed: a missing
// logo never blocks an order.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Checkout orchestrates order processing. All collaborators are injected;
// the service holds only read-only state and is safe for concurrent use.
type Checkout struct {
	engine   *pricing.Engine
	fees     pricing.FeeConfig
	company  quote.Company
	measurer *layout.Measurer
	renderer renderer.Renderer
	orders   store.OrderStore
	mail     mailer.Mailer
	images   ImageFetcher
	logoURL  string
	debugDir string
	log      *zap.Logger
}

// Options wires a Checkout service.
type Options struct {
	Engine   *pricing.Engine
	Fees     pricing.FeeConfig
	Company  quote.Company
	Measurer *layout.Measurer
	Renderer renderer.Renderer
	Orders   store.OrderStore
	Mailer   mailer.Mailer
	Images   ImageFetcher
	LogoURL  string
	// DebugDir, when set, receives a layout JSON dump per order.
	DebugDir string
	Log      *zap.Logger
}

func NewCheckout(opts Options) *Checkout {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Checkout{
		engine:   opts.Engine,
		fees:     opts.Fees,
		company:  opts.Company,
		measurer: opts.Measurer,
		renderer: opts.Renderer,
		orders:   opts.Orders,
		mail:     opts.Mailer,
		images:   opts.Images,
		logoURL:  opts.LogoURL,
		debugDir: opts.DebugDir,
		log:      log,
	}
}

// Process runs one order through the pipeline and returns the minted
// invoice number and the persisted order ID.
func (c *Checkout) Process(ctx context.Context, req CheckoutRequest) (CheckoutResult, error) {
	items := make([]pricing.LineItem, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, pricing.LineItem{
			ProductID:        p.ProductID,
			Name:             p.Name,
			UnitMonthlyPrice: p.Price,
			Quantity:         p.Quantity,
			TenureMonths:     p.TenureMonths,
		})
	}

	order, err := c.engine.PriceOrder(items, c.fees, req.DiscountCode)
	if err != nil {
		var derr pricing.DiscountError
		if !errors.As(err, &derr) {
			return CheckoutResult{}, err
		}
		c.log.Warn("unknown discount code, proceeding without discount",
			zap.String("code", derr.Code))
	}
	if req.DeliveryDate != nil && !req.DeliveryDate.IsZero() {
		order.DeliveryDate = req.DeliveryDate.Time
	}

	logo := c.fetchLogo(ctx)
	script := quote.BuildScript(c.company, req.Customer, order, c.fees, logo)

	composer := layout.NewComposer(layout.A4(), c.measurer)
	doc, err := composer.Compose(script)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("compose quotation: %w", err)
	}
	c.dumpDebug(doc, order.InvoiceNumber)

	pdf, err := c.renderer.Render(doc)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("render quotation: %w", err)
	}

	record, err := c.persist(ctx, req, order)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("persist order: %w", err)
	}

	c.notify(ctx, req, order, pdf)

	c.log.Info("order processed",
		zap.String("invoice", order.InvoiceNumber),
		zap.String("user", req.UserID),
		zap.Int("pages", len(doc.Pages)),
		zap.String("grandTotal", order.GrandTotal.String()))
	return CheckoutResult{InvoiceNumber: order.InvoiceNumber, OrderID: record.ID.String()}, nil
}

// ListOrders returns a user's persisted orders, newest first.
func (c *Checkout) ListOrders(ctx context.Context, userID string) ([]store.OrderRecord, error) {
	return c.orders.ListByUser(ctx, userID)
}

func (c *Checkout) fetchLogo(ctx context.Context) []byte {
	if c.images == nil || c.logoURL == "" {
		return nil
	}
	logo, err := c.images.Fetch(ctx, c.logoURL)
	if err != nil {
		// blank placeholder, generation continues
		c.log.Warn("logo fetch failed", zap.String("url", c.logoURL), zap.Error(err))
		return nil
	}
	return logo
}

func (c *Checkout) persist(ctx context.Context, req CheckoutRequest, order pricing.Order) (*store.OrderRecord, error) {
	ids := make([]string, 0, len(req.Products))
	for _, p := range req.Products {
		ids = append(ids, p.ProductID)
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return nil, err
	}
	record := &store.OrderRecord{
		UserID:        req.UserID,
		ProductIDs:    datatypes.JSON(idsJSON),
		TotalAmount:   order.GrandTotal,
		OrderDate:     order.IssueDate,
		InvoiceNumber: order.InvoiceNumber,
		Status:        store.StatusPending,
	}
	if err := c.orders.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// notify emails the quotation to the customer and the admin. Delivery
// failures are logged and retried a bounded number of times; the order
// stays Pending either way.
func (c *Checkout) notify(ctx context.Context, req CheckoutRequest, order pricing.Order, pdf []byte) {
	if c.mail == nil {
		return
	}
	customerMsg, err := mailer.CustomerMessage(order, c.fees, req.Customer, c.company, pdf)
	if err != nil {
		c.log.Error("build customer email", zap.Error(err))
	} else {
		c.sendWithRetry(ctx, customerMsg)
	}
	if req.AdminEmail == "" {
		return
	}
	adminMsg, err := mailer.AdminMessage(order, req.Customer, c.company, req.AdminEmail, pdf)
	if err != nil {
		c.log.Error("build admin email", zap.Error(err))
		return
	}
	c.sendWithRetry(ctx, adminMsg)
}

func (c *Checkout) sendWithRetry(ctx context.Context, msg mailer.Message) {
	var err error
	for attempt := 1; attempt <= emailAttempts; attempt++ {
		if err = c.mail.Send(ctx, msg); err == nil {
			return
		}
		c.log.Warn("email delivery failed",
			zap.String("to", msg.To), zap.Int("attempt", attempt), zap.Error(err))
	}
	c.log.Error("email delivery abandoned", zap.String("to", msg.To), zap.Error(err))
}

func (c *Checkout) dumpDebug(doc *layout.Document, invoice string) {
	if c.debugDir == "" {
		return
	}
	path := filepath.Join(c.debugDir, "layout-"+invoice+".json")
	if err := layout.WriteDebugJSON(doc, path); err != nil {
		c.log.Warn("write layout debug json", zap.String("path", path), zap.Error(err))
	}
}
