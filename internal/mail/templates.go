package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"elegance/internal/domain/model"
)

type Template string

const (
	TemplateOrderConfirmation Template = "order-confirmation"
	TemplateOrderShipped      Template = "order-shipped"
)

// テンプレートに流し込む注文データ
type OrderData struct {
	CustomerName   string                `json:"customer_name"`
	OrderNumber    string                `json:"order_number"`
	TotalAmount    float64               `json:"total_amount"`
	PaymentMethod  string                `json:"payment_method"`
	Shipping       model.ShippingAddress `json:"shipping_address"`
	TrackingNumber string                `json:"tracking_number,omitempty"`
}

// PaymentLabel はメール上の支払い方法の表記。
func (d OrderData) PaymentLabel() string {
	if d.PaymentMethod == "cod" {
		return "Cash on Delivery"
	}
	return "Prepaid"
}

var confirmationTmpl = template.Must(template.New("order-confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #1f2937 0%, #111827 100%); color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background: #f9fafb; }
    .footer { text-align: center; padding: 20px; color: #6b7280; font-size: 12px; }
    .button { display: inline-block; background: #1f2937; color: white; padding: 10px 20px; border-radius: 4px; text-decoration: none; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Order Confirmed</h1>
    </div>
    <div class="content">
      <p>Dear {{.CustomerName}},</p>
      <p>Thank you for your order! Your order has been confirmed and will be processed shortly.</p>

      <h3>Order Details</h3>
      <p><strong>Order Number:</strong> {{.OrderNumber}}</p>
      <p><strong>Total Amount:</strong> &#8377;{{.TotalAmount}}</p>
      <p><strong>Payment Method:</strong> {{.PaymentLabel}}</p>

      <h3>Shipping Address</h3>
      <p>
        {{.Shipping.AddressLine1}}<br>
        {{if .Shipping.AddressLine2}}{{.Shipping.AddressLine2}}<br>{{end}}
        {{.Shipping.City}}, {{.Shipping.State}} - {{.Shipping.Pincode}}
      </p>

      <p style="margin-top: 30px;">Your order will be delivered in 3-5 business days.</p>

      <p style="text-align: center; margin-top: 30px;">
        <a href="https://eleganceearrings.com" class="button">Track Your Order</a>
      </p>
    </div>
    <div class="footer">
      <p>If you have any questions, please contact us at info@eleganceearrings.com or chat with us on WhatsApp: +91 98765 43210</p>
      <p>&copy; 2024 Elegance Earrings. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`))

var shippedTmpl = template.Must(template.New("order-shipped").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #059669 0%, #047857 100%); color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background: #f9fafb; }
    .footer { text-align: center; padding: 20px; color: #6b7280; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Your Order Has Shipped</h1>
    </div>
    <div class="content">
      <p>Dear {{.CustomerName}},</p>
      <p>Great news! Your order has been shipped.</p>

      <h3>Order Number: {{.OrderNumber}}</h3>
      {{if .TrackingNumber}}<p><strong>Tracking Number:</strong> {{.TrackingNumber}}</p>{{end}}

      <p>Your package is on its way and should arrive soon. You can track your shipment using the tracking number above.</p>
    </div>
    <div class="footer">
      <p>For any questions, contact us at info@eleganceearrings.com</p>
    </div>
  </div>
</body>
</html>
`))

// Render はテンプレートをHTMLにする。未知のテンプレートはエラー。
func Render(t Template, data OrderData) (string, error) {
	var tmpl *template.Template
	switch t {
	case TemplateOrderConfirmation:
		tmpl = confirmationTmpl
	case TemplateOrderShipped:
		tmpl = shippedTmpl
	default:
		return "", fmt.Errorf("unknown template: %s", t)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
