// Package quote builds the quotation document script for a priced order.
// It produces layout blocks only; composing and rendering happen elsewhere.
package quote

import (
	"fmt"
	"strings"

	"github.com/spotfurnish/quotegen/layout"
	"github.com/spotfurnish/quotegen/pricing"
)

// Company is the letterhead and payment identity printed on every
// quotation. Loaded from configuration.
type Company struct {
	Name          string
	AddressLines  []string
	Phones        []string
	BankName      string
	AccountName   string
	AccountNumber string
	IFSC          string
	UPI           string
}

// Customer is the delivery recipient printed on the first page. The JSON
// names follow the checkout request contract.
type Customer struct {
	UserID  string `json:"userId"`
	Name    string `json:"customerName"`
	Email   string `json:"email"`
	Phone   string `json:"phoneNumber"`
	Address string `json:"address"`
}

// priceColumns mirrors the fixed column plan of the pricing table. The five
// widths sum to the 500pt table width.
func priceColumns() []layout.ColumnSpec {
	return []layout.ColumnSpec{
		{Title: "Items", Width: 200},
		{Title: "Duration", Width: 80},
		{Title: "Amount", Width: 70, Align: "right"},
		{Title: "Qty", Width: 50, Align: "right"},
		{Title: "Total", Width: 100, Align: "right"},
	}
}

// BuildScript assembles the full quotation: letterhead, delivery details,
// the pricing table with its summary rows, payment instructions, and the
// terms pages. The returned script is ready for a Composer.
func BuildScript(company Company, customer Customer, order pricing.Order, fees pricing.FeeConfig, logo []byte) []layout.Block {
	var script []layout.Block

	if len(logo) > 0 {
		script = append(script, layout.ImageBlock{Data: logo, Width: 100, Height: 50, Align: "right"})
	}
	script = append(script,
		layout.TextBlock{Text: company.Name, Font: "Helvetica-Bold", Size: 24, Color: layout.Green},
		layout.TextBlock{
			Text: strings.Join(append(append([]string(nil), company.AddressLines...), company.Phones...), "\n"),
			Font: "Helvetica", Size: 12, Color: layout.Black,
		},
		layout.SpacerBlock{Height: 20},
		layout.TextBlock{Text: "Quotation", Font: "Helvetica-Bold", Size: 16, Color: layout.Black},
	)

	script = append(script, deliveryBlock(customer, order))
	script = append(script, layout.SpacerBlock{Height: 15})
	script = append(script, priceTable(order, fees))
	script = append(script, layout.SpacerBlock{Height: 30})

	script = append(script,
		layout.TextBlock{
			Text: fmt.Sprintf(
				"To confirm the order, you need to pay rupees %s/- as a token advance in below account and\nthe remaining amount to be paid at the time of delivery.",
				fees.AdvanceTokenAmount),
			Font: "Helvetica", Size: 11, Color: layout.Black,
		},
		layout.SpacerBlock{Height: 10},
		layout.TextBlock{
			Text: fmt.Sprintf("%s : %s : A/C %s : IFSC- %s",
				company.BankName, company.AccountName, company.AccountNumber, company.IFSC),
			Font: "Helvetica-Bold", Size: 12, Color: layout.Black,
		},
		layout.TextBlock{
			Text: "Gpay/ Phone Pay/Paytm/Cred: " + company.UPI,
			Font: "Helvetica", Size: 12, Color: layout.Black,
		},
		layout.SpacerBlock{Height: 15},
		layout.TextBlock{
			Text: "Documents required before delivery: PAN, AADHAR, Company ID and Rental Agreement of house",
			Font: "Helvetica-Bold", Size: 12, Color: layout.Red,
		},
		layout.PageBreakBlock{},
	)

	script = append(script, layout.TextBlock{
		Text: "TERMS AND CONDITIONS", Font: "Helvetica-Bold", Size: 16,
		Color: layout.Black, Align: "center",
	})
	for _, section := range Terms() {
		script = append(script,
			layout.SpacerBlock{Height: 10},
			layout.TextBlock{Text: section.Title, Font: "Helvetica-Bold", Size: 12, Color: layout.Black},
		)
		for _, point := range section.Points {
			script = append(script, layout.TextBlock{
				Text: "• " + point,
				Font: "Helvetica", Size: 11, Color: layout.Black,
				Indent: 15, MaxWidth: 470,
			})
		}
	}

	script = append(script, layout.FooterBlock{Template: "Page %d of %d", Font: "Helvetica", Size: 10})
	return script
}

// deliveryBlock lays the delivery address and the two dates side by side
// as a borderless table, keeping the page cursor monotonic.
func deliveryBlock(customer Customer, order pricing.Order) layout.Block {
	address := customer.Address
	if address == "" {
		address = "Address not provided"
	}
	parts := make([]string, 0, 4)
	for _, p := range strings.Split(address, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return layout.TableBlock{
		Borderless: true,
		Columns: []layout.ColumnSpec{
			{Width: 300},
			{Width: 200},
		},
		Rows: []layout.TableRow{
			{Cells: []string{"Delivery To :", "Date"}, Bold: true},
			{Cells: []string{strings.Join(parts, "\n"), FormatDate(order.IssueDate)}},
			{Cells: []string{"Contact No: " + customer.Phone, "Delivery Date"}},
			{Cells: []string{"", FormatDate(order.DeliveryDate)}},
		},
		MinRowHeight: 18,
	}
}

// priceTable builds the bordered pricing table: one row per line item, then
// the four summary rows. Summary rows list only the vertical rules the
// printed form draws, so the deposit and transportation rows show a single
// divider before the Total column.
func priceTable(order pricing.Order, fees pricing.FeeConfig) layout.Block {
	rows := []layout.TableRow{
		{Cells: []string{"Items", "Duration", "Amount", "Qty", "Total"}, Header: true},
	}
	for _, li := range order.LineItems {
		rows = append(rows, layout.TableRow{Cells: []string{
			li.Name,
			fmt.Sprintf("%d Months", li.TenureMonths),
			li.UnitMonthlyPrice.String(),
			fmt.Sprintf("%d", li.Quantity),
			li.Total().String(),
		}})
	}
	rows = append(rows,
		layout.TableRow{
			Cells: []string{"Total Monthly Package", "", "", "", order.MonthlySubtotal.String()},
			Bold:  true,
			Rules: []int{4},
		},
		layout.TableRow{
			Cells:    []string{"Fully Refundable Deposit @ months rent", fmt.Sprintf("%d Months", fees.DepositMonths), "", "", order.DepositTotal.String()},
			Rules:    []int{1, 4},
			FontSize: 10,
		},
		layout.TableRow{
			Cells: []string{"One time Transportation", "Upto 15 Kms", "", "", order.TransportationFee.String()},
			Rules: []int{4},
		},
	)
	if !order.Discount.IsZero() {
		rows = append(rows, layout.TableRow{
			Cells: []string{"Discount", "", "", "", "-" + order.Discount.String()},
			Rules: []int{4},
		})
	}
	rows = append(rows, layout.TableRow{
		Cells: []string{"Grand Total", "", "", "", order.GrandTotal.String()},
		Bold:  true,
		Rules: []int{4},
	})

	return layout.TableBlock{Columns: priceColumns(), Rows: rows}
}
