package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/meinhoongagan/handyhub/models"
	"github.com/meinhoongagan/handyhub/utils"
)

// Notifier is told about booking events after they are persisted. It must
// not fail the request.
type Notifier interface {
	BookingCreated(ctx context.Context, booking *models.Booking)
	BookingStatusChanged(ctx context.Context, booking *models.Booking)
}

type NopNotifier struct{}

func (NopNotifier) BookingCreated(context.Context, *models.Booking)       {}
func (NopNotifier) BookingStatusChanged(context.Context, *models.Booking) {}

// Directory resolves the people and service named by a booking.
type Directory interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetProviderProfile(ctx context.Context, id string) (*models.ProviderProfile, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
}

// MailNotifier emails the provider about new bookings and the customer about
// status changes.
type MailNotifier struct {
	mailer utils.Mailer
	dir    Directory
	log    *slog.Logger
}

func NewMailNotifier(mailer utils.Mailer, dir Directory, log *slog.Logger) *MailNotifier {
	return &MailNotifier{mailer: mailer, dir: dir, log: log}
}

func (n *MailNotifier) BookingCreated(ctx context.Context, b *models.Booking) {
	profile, err := n.dir.GetProviderProfile(ctx, b.ProviderID)
	if err != nil {
		n.log.Warn("booking email skipped", "booking_id", b.ID, "error", err)
		return
	}
	provider, err := n.dir.GetUser(ctx, profile.UserID)
	if err != nil || provider.Email == nil {
		n.log.Warn("booking email skipped", "booking_id", b.ID, "error", err)
		return
	}
	service, err := n.dir.GetService(ctx, b.ServiceID)
	if err != nil {
		n.log.Warn("booking email skipped", "booking_id", b.ID, "error", err)
		return
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have a new booking request.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Estimated hours:</strong> %s</li>
			<li><strong>Total:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
		</ul>
		<p>Please accept or decline it from your dashboard.</p>
	`, provider.FirstName, service.Title, b.ScheduledDate.Format("2006-01-02"),
		b.EstimatedHours, b.TotalPrice, b.Address)

	n.send(*provider.Email, "New booking request", body, b.ID)
}

func (n *MailNotifier) BookingStatusChanged(ctx context.Context, b *models.Booking) {
	customer, err := n.dir.GetUser(ctx, b.CustomerID)
	if err != nil || customer.Email == nil {
		n.log.Warn("status email skipped", "booking_id", b.ID, "error", err)
		return
	}
	service, err := n.dir.GetService(ctx, b.ServiceID)
	if err != nil {
		n.log.Warn("status email skipped", "booking_id", b.ID, "error", err)
		return
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking for <strong>%s</strong> on %s is now <strong>%s</strong>.</p>
	`, customer.FirstName, service.Title, b.ScheduledDate.Format("2006-01-02"), b.Status)

	n.send(*customer.Email, "Booking "+string(b.Status), body, b.ID)
}

func (n *MailNotifier) send(to, subject, body, bookingID string) {
	if err := n.mailer.Send(to, subject, body); err != nil {
		n.log.Error("failed to send booking email", "booking_id", bookingID, "to", to, "error", err)
	}
}
