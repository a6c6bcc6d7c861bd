package models

import "time"

// Read-side shapes returned by the listing and detail endpoints.

type UserSummary struct {
	ID              string  `json:"id"`
	Email           *string `json:"email,omitempty"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	ProfileImageURL string  `json:"profileImageUrl"`
}

type ProviderView struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Bio             string      `json:"bio"`
	Phone           string      `json:"phone"`
	Location        string      `json:"location"`
	YearsExperience string      `json:"yearsExperience"`
	User            UserSummary `json:"user"`
}

type ServiceView struct {
	ID           string       `json:"id"`
	ProviderID   string       `json:"providerId"`
	Category     string       `json:"category"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	PricePerHour Money        `json:"pricePerHour"`
	ImageURL     string       `json:"imageUrl"`
	CreatedAt    time.Time    `json:"createdAt"`
	Provider     ProviderView `json:"provider"`
}

type ProviderSummary struct {
	ID       string      `json:"id"`
	UserID   string      `json:"userId"`
	Location string      `json:"location"`
	User     UserSummary `json:"user"`
}

type ServiceSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

type CustomerSummary struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email"`
}

// BookingFields are the booking columns shared by both booking views.
type BookingFields struct {
	ID             string        `json:"id"`
	CustomerID     string        `json:"customerId"`
	ProviderID     string        `json:"providerId"`
	ServiceID      string        `json:"serviceId"`
	ScheduledDate  time.Time     `json:"scheduledDate"`
	Status         BookingStatus `json:"status"`
	EstimatedHours Hours         `json:"estimatedHours"`
	TotalPrice     Money         `json:"totalPrice"`
	Notes          string        `json:"notes"`
	Address        string        `json:"address"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// CustomerBookingView is what a customer sees: who will do the job.
type CustomerBookingView struct {
	BookingFields
	Provider ProviderSummary `json:"provider"`
	Service  ServiceSummary  `json:"service"`
}

// ProviderBookingView is what a provider sees: who ordered the job.
type ProviderBookingView struct {
	BookingFields
	Customer CustomerSummary `json:"customer"`
	Service  ServiceSummary  `json:"service"`
}

func NewUserSummary(u User) UserSummary {
	return UserSummary{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
	}
}

// NewServiceView expects s.Provider and s.Provider.User to be loaded.
func NewServiceView(s Service) ServiceView {
	p := s.Provider
	return ServiceView{
		ID:           s.ID,
		ProviderID:   s.ProviderID,
		Category:     s.Category,
		Title:        s.Title,
		Description:  s.Description,
		PricePerHour: s.PricePerHour,
		ImageURL:     s.ImageURL,
		CreatedAt:    s.CreatedAt,
		Provider: ProviderView{
			ID:              p.ID,
			UserID:          p.UserID,
			Bio:             p.Bio,
			Phone:           p.Phone,
			Location:        p.Location,
			YearsExperience: p.YearsExperience,
			User:            NewUserSummary(p.User),
		},
	}
}

func newBookingFields(b Booking) BookingFields {
	return BookingFields{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		ProviderID:     b.ProviderID,
		ServiceID:      b.ServiceID,
		ScheduledDate:  b.ScheduledDate,
		Status:         b.Status,
		EstimatedHours: b.EstimatedHours,
		TotalPrice:     b.TotalPrice,
		Notes:          b.Notes,
		Address:        b.Address,
		CreatedAt:      b.CreatedAt,
	}
}

func newServiceSummary(s Service) ServiceSummary {
	return ServiceSummary{ID: s.ID, Title: s.Title, Category: s.Category}
}

// NewCustomerBookingView expects Provider.User and Service to be loaded.
func NewCustomerBookingView(b Booking) CustomerBookingView {
	u := b.Provider.User
	return CustomerBookingView{
		BookingFields: newBookingFields(b),
		Provider: ProviderSummary{
			ID:       b.Provider.ID,
			UserID:   b.Provider.UserID,
			Location: b.Provider.Location,
			User: UserSummary{
				ID:              u.ID,
				FirstName:       u.FirstName,
				LastName:        u.LastName,
				ProfileImageURL: u.ProfileImageURL,
			},
		},
		Service: newServiceSummary(b.Service),
	}
}

// NewProviderBookingView expects Customer and Service to be loaded.
func NewProviderBookingView(b Booking) ProviderBookingView {
	return ProviderBookingView{
		BookingFields: newBookingFields(b),
		Customer: CustomerSummary{
			ID:        b.Customer.ID,
			FirstName: b.Customer.FirstName,
			LastName:  b.Customer.LastName,
			Email:     b.Customer.Email,
		},
		Service: newServiceSummary(b.Service),
	}
}
