package quote

// TermSection is one numbered section of the rental terms.
type TermSection struct {
	Title  string
	Points []string
}

// Terms returns the rental terms and conditions printed after the pricing
// page. The wording is fixed business copy; do not edit casually.
func Terms() []TermSection {
	return []TermSection{
		{
			Title: "1. Terms of Agreement",
			Points: []string{
				"The agreement starts when the products are delivered and lasts until the tenure chosen by the customer.",
				"Early closure or extension can be done based on this agreement.",
			},
		},
		{
			Title: "2. Tenure Policy:",
			Points: []string{
				"Early closure incurs charges based on the chosen tenure.",
				"Extension follows the monthly rate applicable at the time of extension.",
				"Rates can be revised by the company at its discretion.",
			},
		},
		{
			Title: "3. Payments",
			Points: []string{
				"The first month's rent is charged on prorate basis from the delivery date to end of Month,",
				"Customer need to pay the agreed monthly rent before the 5th of every month via Gpay, Phonepay, paytm or bank transfer. (No cash Accepted)",
			},
		},
		{
			Title: "4. Refundable Deposit",
			Points: []string{
				"A refundable security deposit is collected at the time of ordering the rental items.",
				"It is refunded within 7 to 15 working days after the agreement ends, provided there's no damage.",
				"Deductions may occur for damages, non-payment, or default.",
			},
		},
		{
			Title: "5. Confirmation of Order",
			Points: []string{
				"Confirmation occurs after receiving the order and security deposit.",
				"If a product is unavailable, the company may offer a substitute.",
				"KYC verification is required, and orders may be rejected if unsuccessful.",
			},
		},
		{
			Title: "6. Delivery",
			Points: []string{
				"Products are delivered to the specified location as mentioned in the order.",
				"The customer or a representative must be present during delivery.",
				"Quality checks are performed, and any damage must be reported during delivery.",
			},
		},
		{
			Title: "7. Damage",
			Points: []string{
				"Customers are liable for repair or replacement costs for damage, theft, or loss.",
			},
		},
		{
			Title: "8. Relocation",
			Points: []string{
				"Customers wishing to relocate must request it two weeks in advance.",
				"Relocation is subject to KYC verification and service availability of the new location, but an additional delivery charge will be applicable.",
			},
		},
		{
			Title: "9. Notice",
			Points: []string{
				"Customers need to provide 1 months' notice to terminate the contract. If the customer wishes to end the contract before the agreed tenure they need to pay full rent for the remaining period.",
				"The company can terminate the agreement for non-payment or breach of terms.",
			},
		},
		{
			Title: "10. Assignment",
			Points: []string{
				"Customers cannot transfer the agreement without written consent.",
				"The company can assign the agreement to third parties without notice.",
			},
		},
		{
			Title: "11. Governing Law",
			Points: []string{
				"The agreement is governed by Indian laws, with exclusive jurisdiction in Bangalore.",
			},
		},
		{
			Title: "12. Limitation of Liability",
			Points: []string{
				"The company's liability is limited, and it is not liable for indirect or consequential damages.",
				"The company will not be responsible for any loss or damage to the renter's place and human liability due to the malfunction of any item.",
			},
		},
		{
			Title: "13. Refund Policy",
			Points: []string{
				"Cancellation Requests: We can only cancel your order if you ask right after placing it. Once we've told the location partner to send your stuff and they've started, we might not be able to cancel.",
				"Damaged Items: If something arrives damaged, tell our Customer Service team within 2 days. We'll sort it out after the delivery team checks and confirms the damage.",
				"Not Working Right: If you're not happy with something because it doesn't work, you can return it at the time of delivery. Just let us know during delivery because you can't return it once our team leaves after confirming the delivery.",
				"Check Product Dimensions: Before you order, check how big things are. If you reject something based on size, we can't take it back when it's delivered.",
				"Refund Processing: If we approve a refund, it'll take about 8-10 days to get the money back in your bank account.",
			},
		},
		{
			Title: "14. REPAIRS, SERVICE & REPLACEMENT",
			Points: []string{
				"After the reporting of any issue or defect burgeoned in the product during usage of the product, Company product experts will analyze the issue and ensure resolution in 7-15 working days. Company appointed third party will repair and/ or service for the issues which have burgeoned in the product due to normal usage. In case after analysis, the Company product experts team finds the issues or defect is due to misuse of the product or damage beyond repair, the customer shall be liable to pay for repair/ service and in case of damage beyond repair customer shall be liable to pay Company the market price of the Product. The decision on service or replacement will be at sole discretion of Company's product experts' team.",
			},
		},
	}
}
