package usecase_test

import (
	"context"
	"errors"
	"testing"

	"elegance/internal/mail"
	"elegance/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// 呼び出しを記録するSender
type recordSender struct {
	to      []string
	subject []string
	html    []string
	err     error
}

func (s *recordSender) SendEmail(ctx context.Context, to string, subject string, html string) (mail.SendResult, error) {
	s.to = append(s.to, to)
	s.subject = append(s.subject, subject)
	s.html = append(s.html, html)
	if s.err != nil {
		return mail.SendResult{}, s.err
	}
	return mail.SendResult{MessageID: "msg-1"}, nil
}

func validEmailInput() usecase.SendEmailInput {
	return usecase.SendEmailInput{
		To:       "priya@example.com",
		Subject:  "Order Confirmed - ORD1",
		Template: string(mail.TemplateOrderConfirmation),
		Data: mail.OrderData{
			CustomerName: "Priya",
			OrderNumber:  "ORD1",
			TotalAmount:  1300,
		},
	}
}

func TestNotificationUsecase_Send_Validation(t *testing.T) {
	uc := usecase.NewNotificationUsecase(nil, zap.NewNop())
	ctx := context.Background()

	in := validEmailInput()
	in.To = ""
	_, err := uc.Send(ctx, in)
	assertHTTPError(t, err, 400)

	in = validEmailInput()
	in.Subject = ""
	_, err = uc.Send(ctx, in)
	assertHTTPError(t, err, 400)

	in = validEmailInput()
	in.Template = ""
	_, err = uc.Send(ctx, in)
	assertHTTPError(t, err, 400)

	in = validEmailInput()
	in.Template = "password-reset"
	_, err = uc.Send(ctx, in)
	assertHTTPError(t, err, 400)
}

// 未設定はソフト成功
func TestNotificationUsecase_Send_NotConfigured(t *testing.T) {
	uc := usecase.NewNotificationUsecase(nil, zap.NewNop())

	msg, err := uc.Send(context.Background(), validEmailInput())
	require.NoError(t, err)
	assert.Equal(t, "Email service not configured. Email would be sent: priya@example.com", msg)
}

// 送信失敗も注文フローを落とさない
func TestNotificationUsecase_Send_TransportFailure(t *testing.T) {
	sender := &recordSender{err: errors.New("smtp: connection refused")}
	uc := usecase.NewNotificationUsecase(sender, zap.NewNop())

	msg, err := uc.Send(context.Background(), validEmailInput())
	require.NoError(t, err)
	assert.Equal(t, "Email logged (send failed)", msg)
}

func TestNotificationUsecase_Send_Success(t *testing.T) {
	sender := &recordSender{}
	uc := usecase.NewNotificationUsecase(sender, zap.NewNop())

	msg, err := uc.Send(context.Background(), validEmailInput())
	require.NoError(t, err)
	assert.Equal(t, "Email sent successfully", msg)

	require.Len(t, sender.to, 1)
	assert.Equal(t, "priya@example.com", sender.to[0])
	assert.Contains(t, sender.html[0], "ORD1")
	assert.Contains(t, sender.html[0], "Priya")
}
