package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// bookingTransitions lists the legal successors of each status. Terminal
// statuses have none.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusCompleted},
	StatusCompleted: nil,
	StatusCancelled: nil,
}

func ParseBookingStatus(s string) (BookingStatus, bool) {
	st := BookingStatus(s)
	_, ok := bookingTransitions[st]
	return st, ok
}

func (s BookingStatus) IsTerminal() bool {
	next, ok := bookingTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, candidate := range bookingTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ErrInvalidTransition is returned by CheckTransition.
type ErrInvalidTransition struct {
	From, To BookingStatus
}

func (e ErrInvalidTransition) Error() string {
	if e.From.IsTerminal() {
		return fmt.Sprintf("no transitions allowed from %s", e.From)
	}
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

func (s BookingStatus) CheckTransition(next BookingStatus) error {
	if !s.CanTransitionTo(next) {
		return ErrInvalidTransition{From: s, To: next}
	}
	return nil
}

type Booking struct {
	ID             string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID     string          `json:"customerId" gorm:"type:varchar(255);not null;index"`
	Customer       User            `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	ProviderID     string          `json:"providerId" gorm:"type:varchar(36);not null;index"`
	Provider       ProviderProfile `json:"-" gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
	ServiceID      string          `json:"serviceId" gorm:"type:varchar(36);not null;index"`
	Service        Service         `json:"-" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	ScheduledDate  time.Time       `json:"scheduledDate" gorm:"not null"`
	Status         BookingStatus   `json:"status" gorm:"type:varchar(20);not null;default:pending"`
	EstimatedHours Hours           `json:"estimatedHours" gorm:"type:decimal(4,1)"`
	TotalPrice     Money           `json:"totalPrice" gorm:"type:decimal(10,2)"`
	Notes          string          `json:"notes"`
	Address        string          `json:"address"`
	CreatedAt      time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}
