package pricing

import (
	"strings"

	"github.com/bwmarrin/snowflake"
)

// InvoiceSource mints invoice numbers. Implementations must be safe for
// concurrent use and must never return the same number twice.
type InvoiceSource interface {
	Next() string
}

// SnowflakeInvoices issues invoice numbers from a snowflake node, so
// concurrent checkouts on the same process, and processes with distinct
// node IDs, can never collide.
type SnowflakeInvoices struct {
	node *snowflake.Node
}

// NewSnowflakeInvoices builds an invoice source for the given node ID.
func NewSnowflakeInvoices(nodeID int64) (*SnowflakeInvoices, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &SnowflakeInvoices{node: node}, nil
}

// Next returns the next invoice number, formatted "INV-" plus the ID in
// upper-case base36.
func (s *SnowflakeInvoices) Next() string {
	return "INV-" + strings.ToUpper(s.node.Generate().Base36())
}
