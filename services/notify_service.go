// services/notify_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"agenda-salao-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService sends an optional booking confirmation to the customer's
// phone. It only activates when Twilio credentials are configured; sending
// happens after the booking transaction committed and a failure is logged,
// never surfaced to the booking caller.
type NotifyService struct {
	client  *twilio.RestClient
	enabled bool
}

func NewNotifyService() *NotifyService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotifyService{
		enabled: accountSid != "" && authToken != "",
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *NotifyService) Enabled() bool {
	return s.enabled
}

// ConfirmBooking messages the customer about their appointment. Uses
// WhatsApp when the phone is E.164 with a '+' prefix, plain SMS otherwise.
func (s *NotifyService) ConfirmBooking(appointment *models.Appointment) {
	if !s.enabled || appointment.CustomerPhone == "" {
		return
	}

	message := fmt.Sprintf("Hi %s, your %s appointment is confirmed for %s at %s.",
		appointment.CustomerName,
		appointment.Service.Name,
		appointment.Slot.Date,
		appointment.Slot.Time)

	channel := "sms"
	to := appointment.CustomerPhone
	if strings.HasPrefix(appointment.CustomerPhone, "+") {
		to = "whatsapp:" + appointment.CustomerPhone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send confirmation to %s: %v", appointment.CustomerPhone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Confirmation sent to %s, SID: %s", appointment.CustomerPhone, *resp.Sid)
	} else {
		log.Printf("Confirmation sent to %s, but no SID returned", appointment.CustomerPhone)
	}
}
