package notifications

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/amendezc/audiophile-backend/internal/pricing"
	"github.com/amendezc/audiophile-backend/pkg/db/models"
)

// confirmationTemplate mirrors the storefront's transactional email: dark
// header, order summary box, line items, totals and the shipping address.
var confirmationTemplate = template.Must(template.New("order_confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f6f6f6;">
  <table width="100%" cellpadding="0" cellspacing="0" style="background-color: #f6f6f6; padding: 20px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden; max-width: 100%;">
          <tr>
            <td style="background-color: #191919; padding: 30px; text-align: center;">
              <h1 style="margin: 0; color: #ffffff; font-size: 28px; letter-spacing: 2px; text-transform: lowercase;">audiophile</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 40px 30px;">
              <h2 style="margin: 0 0 20px; color: #191919; font-size: 24px; text-align: center;">Thank You For Your Order!</h2>
              <p style="margin: 0 0 15px; color: #525252; font-size: 16px; line-height: 24px;">Hi {{.Name}},</p>
              <p style="margin: 0 0 20px; color: #525252; font-size: 16px; line-height: 24px;">
                We've received your order and it's being processed. You'll receive a shipping confirmation email soon.
              </p>
              <table width="100%" cellpadding="0" cellspacing="0" style="margin: 25px 0; background-color: #f9f9f9; border: 1px solid #e5e5e5; border-radius: 8px;">
                <tr>
                  <td style="padding: 20px;">
                    <table width="100%">
                      <tr>
                        <td width="50%">
                          <p style="margin: 0 0 5px; color: #7d7d7d; font-size: 11px; font-weight: bold; text-transform: uppercase; letter-spacing: 0.5px;">Order Number</p>
                          <p style="margin: 0; color: #191919; font-size: 15px; font-weight: bold;">#{{.OrderNumber}}</p>
                        </td>
                        <td width="50%" style="text-align: right;">
                          <p style="margin: 0 0 5px; color: #7d7d7d; font-size: 11px; font-weight: bold; text-transform: uppercase; letter-spacing: 0.5px;">Order Date</p>
                          <p style="margin: 0; color: #191919; font-size: 15px; font-weight: bold;">{{.OrderDate}}</p>
                        </td>
                      </tr>
                    </table>
                  </td>
                </tr>
              </table>
              <h3 style="margin: 25px 0 15px; color: #191919; font-size: 16px; text-transform: uppercase; letter-spacing: 1px; font-weight: bold;">Order Details</h3>
              {{range .Items}}
              <table width="100%" cellpadding="0" cellspacing="0" style="margin-bottom: 12px;">
                <tr>
                  <td width="65%">
                    <p style="margin: 0 0 3px; color: #191919; font-size: 14px; font-weight: 600;">{{.Name}}</p>
                    <p style="margin: 0; color: #7d7d7d; font-size: 13px;">Quantity: {{.Quantity}}</p>
                  </td>
                  <td width="35%" style="text-align: right; vertical-align: middle;">
                    <p style="margin: 0; color: #191919; font-size: 14px; font-weight: 600;">{{.Total}}</p>
                  </td>
                </tr>
              </table>
              {{end}}
              <hr style="border: none; border-top: 1px solid #e5e5e5; margin: 20px 0;">
              <table width="100%" cellpadding="0" cellspacing="0" style="margin: 10px 0;">
                <tr>
                  <td><p style="margin: 0 0 6px; color: #7d7d7d; font-size: 14px;">Subtotal</p></td>
                  <td style="text-align: right;"><p style="margin: 0 0 6px; color: #191919; font-size: 14px; font-weight: 600;">{{.Subtotal}}</p></td>
                </tr>
                <tr>
                  <td><p style="margin: 0 0 6px; color: #7d7d7d; font-size: 14px;">Shipping</p></td>
                  <td style="text-align: right;"><p style="margin: 0 0 6px; color: #191919; font-size: 14px; font-weight: 600;">{{.Shipping}}</p></td>
                </tr>
                <tr>
                  <td><p style="margin: 0 0 6px; color: #7d7d7d; font-size: 14px;">VAT (Included)</p></td>
                  <td style="text-align: right;"><p style="margin: 0 0 6px; color: #191919; font-size: 14px; font-weight: 600;">{{.VAT}}</p></td>
                </tr>
              </table>
              <hr style="border: none; border-top: 2px solid #191919; margin: 15px 0;">
              <table width="100%" cellpadding="0" cellspacing="0">
                <tr>
                  <td><p style="margin: 0; color: #191919; font-size: 15px; font-weight: bold; text-transform: uppercase;">Grand Total</p></td>
                  <td style="text-align: right;"><p style="margin: 0; color: #d87d4a; font-size: 17px; font-weight: bold;">{{.GrandTotal}}</p></td>
                </tr>
              </table>
              <h3 style="margin: 25px 0 10px; color: #191919; font-size: 16px; text-transform: uppercase; letter-spacing: 1px; font-weight: bold;">Shipping Address</h3>
              <p style="margin: 0; color: #525252; font-size: 14px; line-height: 20px;">
                {{.Address}}<br>
                {{.City}}, {{.ZipCode}}<br>
                {{.Country}}
              </p>
              <table width="100%" cellpadding="0" cellspacing="0" style="margin: 25px 0 0; background-color: #f9f9f9; border-radius: 8px;">
                <tr>
                  <td style="padding: 18px;">
                    <p style="margin: 0 0 8px; color: #191919; font-size: 13px; font-weight: bold;">Need Help?</p>
                    <p style="margin: 0; color: #525252; font-size: 13px; line-height: 19px;">
                      Contact us at <a href="mailto:support@audiophile.com" style="color: #d87d4a; text-decoration: none; font-weight: 600;">support@audiophile.com</a>
                    </p>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="background-color: #f1f1f1; padding: 20px; text-align: center;">
              <p style="margin: 0 0 4px; color: #7d7d7d; font-size: 11px;">&copy; 2026 Audiophile. All rights reserved.</p>
              <p style="margin: 0; color: #7d7d7d; font-size: 11px;">This email was sent because you placed an order.</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`))

type confirmationLine struct {
	Name     string
	Quantity int
	Total    string
}

type confirmationData struct {
	Name        string
	OrderNumber string
	OrderDate   string
	Items       []confirmationLine
	Subtotal    string
	Shipping    string
	VAT         string
	GrandTotal  string
	Address     string
	City        string
	ZipCode     string
	Country     string
}

func confirmationSubject(order *models.Order) string {
	return fmt.Sprintf("Order #%s Confirmed", order.OrderNumber)
}

func renderConfirmation(order *models.Order) (string, error) {
	data := confirmationData{
		Name:        order.Shipping.Name,
		OrderNumber: order.OrderNumber,
		OrderDate:   order.CreatedAt.Format("January 2, 2006"),
		Subtotal:    pricing.FormatPrice(order.Subtotal),
		Shipping:    pricing.FormatPrice(order.ShippingCost),
		VAT:         pricing.FormatPrice(order.VAT),
		GrandTotal:  pricing.FormatPrice(order.GrandTotal),
		Address:     order.Shipping.Address,
		City:        order.Shipping.City,
		ZipCode:     order.Shipping.ZipCode,
		Country:     order.Shipping.Country,
	}
	for _, item := range order.Items {
		data.Items = append(data.Items, confirmationLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Total:    pricing.FormatPrice(item.Total),
		})
	}

	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering confirmation email: %w", err)
	}
	return buf.String(), nil
}
