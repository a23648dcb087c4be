package usecase

import (
	"context"
	"net/http"
	"time"

	"elegance/internal/domain/model"
	"elegance/internal/mail"

	"go.uber.org/zap"
)

// NotificationUsecase は注文系メールの送出。
// 送信失敗は呼び出し元に伝播させない（注文フローのクリティカルパス外）。
type NotificationUsecase struct {
	sender mail.Sender // nilなら未設定（ログのみのソフト成功）
	log    *zap.Logger
}

// DI
func NewNotificationUsecase(sender mail.Sender, log *zap.Logger) *NotificationUsecase {
	return &NotificationUsecase{sender: sender, log: log}
}

type SendEmailInput struct {
	To       string
	Subject  string
	Template string
	Data     mail.OrderData
}

// Send はテンプレートを描画して送る。
// トランスポート障害・未設定はソフト成功（メッセージで区別）。
func (u *NotificationUsecase) Send(ctx context.Context, in SendEmailInput) (string, error) {
	if in.To == "" || in.Subject == "" || in.Template == "" {
		return "", NewHTTPError(http.StatusBadRequest, "Missing required fields: to, subject, template")
	}

	html, err := mail.Render(mail.Template(in.Template), in.Data)
	if err != nil {
		return "", NewHTTPError(http.StatusBadRequest, "unknown template: "+in.Template)
	}

	if u.sender == nil {
		u.log.Info("email not configured; would send",
			zap.String("to", in.To),
			zap.String("template", in.Template),
		)
		return "Email service not configured. Email would be sent: " + in.To, nil
	}

	res, err := u.sender.SendEmail(ctx, in.To, in.Subject, html)
	if err != nil {
		u.log.Warn("email send failed; swallowed",
			zap.String("to", in.To),
			zap.String("template", in.Template),
			zap.Error(err),
		)
		return "Email logged (send failed)", nil
	}

	u.log.Info("email sent",
		zap.String("to", in.To),
		zap.String("message_id", res.MessageID),
	)
	return "Email sent successfully", nil
}

// OrderConfirmed は注文確定メール。goroutineから呼ぶ前提で自前のctxを持つ。
func (u *NotificationUsecase) OrderConfirmed(order model.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, _ = u.Send(ctx, SendEmailInput{
		To:       order.CustomerEmail,
		Subject:  "Order Confirmed - " + order.OrderNumber,
		Template: string(mail.TemplateOrderConfirmation),
		Data:     orderMailData(order, ""),
	})
}

// OrderShipped は発送通知メール。
func (u *NotificationUsecase) OrderShipped(order model.Order, trackingNumber string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, _ = u.Send(ctx, SendEmailInput{
		To:       order.CustomerEmail,
		Subject:  "Your Order Has Shipped - " + order.OrderNumber,
		Template: string(mail.TemplateOrderShipped),
		Data:     orderMailData(order, trackingNumber),
	})
}

func orderMailData(order model.Order, trackingNumber string) mail.OrderData {
	return mail.OrderData{
		CustomerName:   order.CustomerName,
		OrderNumber:    order.OrderNumber,
		TotalAmount:    order.TotalAmount,
		PaymentMethod:  order.PaymentMethod,
		Shipping:       order.Shipping(),
		TrackingNumber: trackingNumber,
	}
}
