package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/spotfurnish/quotegen/pricing"
	"github.com/spotfurnish/quotegen/quote"
)

var customerTemplate = template.Must(template.New("customer").Parse(`
<h2>Thank you for your purchase!</h2>
<p>Please find your quotation attached.</p>
<p>Order details:</p>
<ul>
{{range .Items}}<li><strong>{{.Name}}</strong> - {{.Price}} x {{.Quantity}} = {{.Total}}</li>
{{end}}</ul>
<p>Kindly refer to attached quotation for all the details.</p>
<p><strong>Total Monthly Package:</strong> {{.MonthlyTotal}}</p>
<p>To confirm your order, please pay {{.Advance}} as token advance to the Gpay/ Phone pay number {{.UPI}}.</p>
<p>If you have any questions, please contact us at {{.Phones}}.</p>
`))

var adminTemplate = template.Must(template.New("admin").Parse(`
<h2>New Quotation Alert</h2>
<p>A new quotation has been generated for {{.Customer}}.</p>
<p>Invoice {{.Invoice}}, grand total {{.GrandTotal}}.</p>
`))

type customerEmailData struct {
	Items                              []customerItem
	MonthlyTotal, Advance, UPI, Phones string
}

type customerItem struct {
	Name, Price, Total string
	Quantity           int
}

// CustomerMessage builds the customer-facing quotation email.
func CustomerMessage(order pricing.Order, fees pricing.FeeConfig, customer quote.Customer, company quote.Company, pdf []byte) (Message, error) {
	data := customerEmailData{
		MonthlyTotal: quote.FormatINR(order.MonthlySubtotal),
		Advance:      quote.FormatINR(fees.AdvanceTokenAmount),
		UPI:          company.UPI,
		Phones:       joinPhones(company.Phones),
	}
	for _, li := range order.LineItems {
		data.Items = append(data.Items, customerItem{
			Name:     li.Name,
			Price:    quote.FormatINR(li.UnitMonthlyPrice),
			Quantity: li.Quantity,
			Total:    quote.FormatINR(li.Total()),
		})
	}
	var body bytes.Buffer
	if err := customerTemplate.Execute(&body, data); err != nil {
		return Message{}, err
	}
	return Message{
		To:             customer.Email,
		Subject:        fmt.Sprintf("Quotation #%s from %s", order.InvoiceNumber, company.Name),
		HTML:           body.String(),
		AttachmentName: fmt.Sprintf("Quotation-%s.pdf", order.InvoiceNumber),
		Attachment:     pdf,
	}, nil
}

// AdminMessage builds the internal notification email.
func AdminMessage(order pricing.Order, customer quote.Customer, company quote.Company, adminEmail string, pdf []byte) (Message, error) {
	who := customer.Name
	if who == "" {
		who = customer.Address
	}
	var body bytes.Buffer
	err := adminTemplate.Execute(&body, struct {
		Customer, Invoice, GrandTotal string
	}{who, order.InvoiceNumber, quote.FormatINR(order.GrandTotal)})
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:             adminEmail,
		Subject:        fmt.Sprintf("New Quotation Generated - #%s", order.InvoiceNumber),
		HTML:           body.String(),
		AttachmentName: fmt.Sprintf("Quotation-%s.pdf", order.InvoiceNumber),
		Attachment:     pdf,
	}, nil
}

func joinPhones(phones []string) string {
	out := ""
	for i, p := range phones {
		if i > 0 {
			out += " or "
		}
		out += p
	}
	return out
}
