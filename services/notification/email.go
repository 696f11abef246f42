package notification

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"slotify/config"
	"slotify/models"
	"slotify/utils"

	"go.uber.org/zap"
)

// SMTPSender sends plain-text email over SMTP.
type SMTPSender struct {
	addr string
	from string
}

// NewSMTPSender builds a sender from the loaded configuration.
func NewSMTPSender() *SMTPSender {
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", config.AppConfig.SMTPHost, config.AppConfig.SMTPPort),
		from: config.AppConfig.EmailFrom,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		s.from, to, subject, body,
	)
	return smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg))
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Sender Sender
}

// ManageTokenTTL bounds how long reschedule/cancel links stay valid.
const ManageTokenTTL = 30 * 24 * time.Hour

func (s *DefaultNotificationService) send(to, subject, body string) {
	logger := utils.GetLogger()
	if to == "" {
		return
	}
	if err := s.Sender.Send(to, subject, body); err != nil {
		logger.Warn("failed to send notification email",
			zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return
	}
	logger.Debug("notification email sent", zap.String("to", to), zap.String("subject", subject))
}

func formatWhen(b *models.Booking) string {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		loc = time.UTC
	}
	start := b.Interval.Start.In(loc)
	return fmt.Sprintf("%s at %s (%s)", start.Format("02/01/2006"), start.Format("15:04"), b.Timezone)
}

func manageLinks(b *models.Booking) string {
	rescheduleToken, err1 := utils.GenerateManageToken(b.ID, "reschedule", ManageTokenTTL)
	cancelToken, err2 := utils.GenerateManageToken(b.ID, "cancel", ManageTokenTTL)
	if err1 != nil || err2 != nil {
		utils.GetLogger().Warn("failed to issue manage tokens", zap.String("bookingID", b.ID))
		return ""
	}
	base := config.AppConfig.BaseURL
	return fmt.Sprintf(
		"Reschedule: %s/api/bookings/%s/reschedule?token=%s\nCancel: %s/api/bookings/%s/cancel?token=%s",
		base, b.ID, rescheduleToken, base, b.ID, cancelToken,
	)
}

func (s *DefaultNotificationService) SendBookingCreated(b *models.Booking, et *models.EventType, hostEmail, hostName string) {
	state := "confirmed"
	note := ""
	if b.Status == models.BookingPending {
		state = "received"
		note = "\nNote: this booking needs confirmation by the host."
	}

	inviteeBody := fmt.Sprintf(
		"Hello %s,\n\nYour booking for %s with %s has been %s.\nWhen: %s\nDuration: %d minutes\nLocation: %s%s\n\n%s\n",
		b.InviteeName, et.Title, hostName, state, formatWhen(b), et.Duration, b.Location, note, manageLinks(b),
	)
	s.send(b.InviteeEmail, fmt.Sprintf("Booking %s: %s with %s", state, et.Title, hostName), inviteeBody)

	var hostLines []string
	hostLines = append(hostLines,
		fmt.Sprintf("New booking for %s with %s.", et.Title, b.InviteeName),
		"When: "+formatWhen(b),
		fmt.Sprintf("Duration: %d minutes", et.Duration),
		"Status: "+string(b.Status),
		"Invitee email: "+b.InviteeEmail,
	)
	if b.InviteePhone != "" {
		hostLines = append(hostLines, "Invitee phone: "+b.InviteePhone)
	}
	if b.Notes != "" {
		hostLines = append(hostLines, "Notes: "+b.Notes)
	}
	if b.Status == models.BookingPending {
		hostLines = append(hostLines, "Please confirm or decline this booking.")
	}
	s.send(hostEmail, fmt.Sprintf("New booking: %s with %s", et.Title, b.InviteeName), strings.Join(hostLines, "\n")+"\n")
}

func (s *DefaultNotificationService) SendStatusChanged(b *models.Booking, et *models.EventType, hostEmail string) {
	body := fmt.Sprintf(
		"Your booking for %s on %s is now %s.\n",
		et.Title, formatWhen(b), b.Status,
	)
	s.send(b.InviteeEmail, fmt.Sprintf("Booking update: %s", et.Title), body)
}

func (s *DefaultNotificationService) SendRescheduled(b *models.Booking, et *models.EventType, hostEmail string) {
	body := fmt.Sprintf(
		"Your booking for %s has been rescheduled.\nNew time: %s\n\n%s\n",
		et.Title, formatWhen(b), manageLinks(b),
	)
	s.send(b.InviteeEmail, fmt.Sprintf("Booking rescheduled: %s", et.Title), body)
	s.send(hostEmail, fmt.Sprintf("Booking rescheduled: %s", et.Title),
		fmt.Sprintf("The booking with %s moved to %s.\n", b.InviteeName, formatWhen(b)))
}

func (s *DefaultNotificationService) SendCancelled(b *models.Booking, et *models.EventType, hostEmail string) {
	reason := b.CancellationReason
	if reason == "" {
		reason = "No reason provided"
	}
	body := fmt.Sprintf(
		"The booking for %s on %s was cancelled.\nReason: %s\n",
		et.Title, formatWhen(b), reason,
	)
	s.send(b.InviteeEmail, fmt.Sprintf("Booking cancelled: %s", et.Title), body)
	s.send(hostEmail, fmt.Sprintf("Booking cancelled: %s", et.Title), body)
}

func (s *DefaultNotificationService) SendReminder(to, subject, body string) error {
	return s.Sender.Send(to, subject, body)
}
