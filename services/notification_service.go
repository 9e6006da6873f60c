// services/notification_service.go
package services

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// NotificationService sends best-effort SMS confirmations after check-ins.
// When Twilio credentials are not configured it stays disabled and every
// send is a no-op.
type NotificationService struct {
	client *twilio.RestClient
	from   string
	log    *zap.Logger
}

func NewNotificationService(accountSid, authToken, from string, log *zap.Logger) *NotificationService {
	svc := &NotificationService{from: from, log: log}

	if accountSid == "" || authToken == "" || from == "" {
		log.Info("sms notifications disabled, twilio credentials not configured")
		return svc
	}

	svc.client = twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	return svc
}

func (s *NotificationService) Enabled() bool {
	return s != nil && s.client != nil
}

// SendCheckInConfirmation texts the customer their earned and running point
// totals. Failures are logged and never surfaced to the check-in caller.
func (s *NotificationService) SendCheckInConfirmation(phoneNumber string, earned, total int, merchantName string) {
	if !s.Enabled() {
		return
	}

	body := fmt.Sprintf("You earned %d points at %s! Your balance is now %d points.", earned, merchantName, total)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phoneNumber)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		s.log.Warn("failed to send check-in sms",
			zap.String("phoneNumber", phoneNumber),
			zap.Error(err),
		)
		return
	}

	s.log.Info("check-in sms sent", zap.String("phoneNumber", phoneNumber))
}
