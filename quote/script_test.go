package quote

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spotfurnish/quotegen/layout"
	"github.com/spotfurnish/quotegen/pricing"
)

func sampleOrder() pricing.Order {
	issued := time.Date(2026, time.January, 2, 10, 0, 0, 0, time.UTC)
	return pricing.Order{
		LineItems: []pricing.LineItem{
			{ProductID: "p1", Name: "Queen Bed", UnitMonthlyPrice: decimal.NewFromInt(500), Quantity: 2, TenureMonths: 3},
		},
		MonthlySubtotal:   decimal.NewFromInt(1000),
		DepositTotal:      decimal.NewFromInt(2000),
		TransportationFee: decimal.NewFromInt(750),
		Discount:          decimal.Zero,
		GrandTotal:        decimal.NewFromInt(3750),
		InvoiceNumber:     "INV-TEST0001",
		IssueDate:         issued,
		DeliveryDate:      issued.AddDate(0, 0, 3),
	}
}

func sampleCompany() Company {
	return Company{
		Name:          "Spot Furnish Rentals",
		AddressLines:  []string{"8th Main, Ramamurthy Nagar main Road", "Bengaluru, Karnataka 560016"},
		Phones:        []string{"+91 8123096928", "+91 9844723432"},
		BankName:      "AXIS Bank",
		AccountName:   "Preethi Yogesh Navandar",
		AccountNumber: "919010043469563",
		IFSC:          "UTIB0003569",
		UPI:           "9844723432",
	}
}

func buildSample(t *testing.T) []layout.Block {
	t.Helper()
	customer := Customer{Name: "Asha", Phone: "+91 9000000000", Address: "12 MG Road, Bengaluru"}
	return BuildScript(sampleCompany(), customer, sampleOrder(), pricing.DefaultFees(), []byte{1})
}

func findTable(script []layout.Block, borderless bool) (layout.TableBlock, bool) {
	for _, b := range script {
		if tbl, ok := b.(layout.TableBlock); ok && tbl.Borderless == borderless {
			return tbl, true
		}
	}
	return layout.TableBlock{}, false
}

func TestScriptPriceTable(t *testing.T) {
	script := buildSample(t)
	tbl, ok := findTable(script, false)
	if !ok {
		t.Fatal("no pricing table in script")
	}

	width := 0.0
	for _, col := range tbl.Columns {
		width += col.Width
	}
	if width != 500 {
		t.Errorf("table width = %g, want 500", width)
	}
	if !tbl.Rows[0].Header {
		t.Error("first row is not the header")
	}

	// header + one item + subtotal + deposit + transportation + grand total
	if len(tbl.Rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(tbl.Rows))
	}
	item := tbl.Rows[1]
	if item.Cells[0] != "Queen Bed" || item.Cells[1] != "3 Months" || item.Cells[4] != "1000" {
		t.Errorf("unexpected item row: %v", item.Cells)
	}
	grand := tbl.Rows[len(tbl.Rows)-1]
	if grand.Cells[0] != "Grand Total" || grand.Cells[4] != "3750" || !grand.Bold {
		t.Errorf("unexpected grand total row: %+v", grand)
	}
	deposit := tbl.Rows[3]
	if deposit.Cells[1] != "2 Months" || deposit.Cells[4] != "2000" {
		t.Errorf("unexpected deposit row: %v", deposit.Cells)
	}
	if len(deposit.Rules) != 2 {
		t.Errorf("deposit row rules = %v, want two boundaries", deposit.Rules)
	}
}

func TestScriptDiscountRowOnlyWhenPresent(t *testing.T) {
	order := sampleOrder()
	customer := Customer{Address: "12 MG Road"}

	script := BuildScript(sampleCompany(), customer, order, pricing.DefaultFees(), nil)
	tbl, _ := findTable(script, false)
	for _, row := range tbl.Rows {
		if row.Cells[0] == "Discount" {
			t.Fatal("discount row present for a zero discount")
		}
	}

	order.Discount = decimal.NewFromInt(375)
	order.GrandTotal = decimal.NewFromInt(3375)
	script = BuildScript(sampleCompany(), customer, order, pricing.DefaultFees(), nil)
	tbl, _ = findTable(script, false)
	found := false
	for _, row := range tbl.Rows {
		if row.Cells[0] == "Discount" && row.Cells[4] == "-375" {
			found = true
		}
	}
	if !found {
		t.Error("discount row missing for a non-zero discount")
	}
}

func TestScriptDeliveryDetails(t *testing.T) {
	script := buildSample(t)
	tbl, ok := findTable(script, true)
	if !ok {
		t.Fatal("no delivery details table in script")
	}
	if got := tbl.Rows[1].Cells[0]; got != "12 MG Road\nBengaluru" {
		t.Errorf("address cell = %q", got)
	}
	if got := tbl.Rows[1].Cells[1]; got != "2nd Jan 2026" {
		t.Errorf("date cell = %q", got)
	}
	if got := tbl.Rows[3].Cells[1]; got != "5th Jan 2026" {
		t.Errorf("delivery date cell = %q", got)
	}
}

func TestScriptEndsWithTermsAndFooter(t *testing.T) {
	script := buildSample(t)

	last := script[len(script)-1]
	if _, ok := last.(layout.FooterBlock); !ok {
		t.Fatalf("last block is %T, want FooterBlock", last)
	}

	breaks := 0
	titles := 0
	for _, b := range script {
		switch blk := b.(type) {
		case layout.PageBreakBlock:
			breaks++
		case layout.TextBlock:
			if blk.Text == "TERMS AND CONDITIONS" {
				titles++
			}
			if strings.HasPrefix(blk.Text, "• ") && blk.Indent == 0 {
				t.Error("bullet point without indent")
			}
		}
	}
	if breaks != 1 {
		t.Errorf("page breaks = %d, want 1", breaks)
	}
	if titles != 1 {
		t.Errorf("terms title appears %d times, want 1", titles)
	}

	sections := Terms()
	if len(sections) != 14 {
		t.Fatalf("got %d term sections, want 14", len(sections))
	}
}

func TestScriptSkipsLogoWithoutData(t *testing.T) {
	customer := Customer{Address: "12 MG Road"}
	script := BuildScript(sampleCompany(), customer, sampleOrder(), pricing.DefaultFees(), nil)
	if _, ok := script[0].(layout.ImageBlock); ok {
		t.Error("logo block present with no image data")
	}
}
