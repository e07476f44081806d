package services

import (
	"errors"

	"github.com/akber360/QA-Cinema/models"
	"gorm.io/gorm"
)

// Ticket type labels in the order they appear on the booking form and in
// persisted line items.
const (
	TicketAdult      = "Adult"
	TicketChild      = "Child"
	TicketConcession = "Concession"
)

var TicketTypes = []string{TicketAdult, TicketChild, TicketConcession}

// BookingService computes ticket totals and persists bookings with their
// line items. Prices come from configuration, one entry per ticket type.
type BookingService struct {
	db     *gorm.DB
	prices map[string]float64
}

func NewBookingService(db *gorm.DB, prices map[string]float64) *BookingService {
	return &BookingService{db: db, prices: prices}
}

// Quote returns the total for the requested quantities without persisting
// anything. Unknown labels are ignored.
func (s *BookingService) Quote(quantities map[string]int) float64 {
	total := 0.0
	for _, ticketType := range TicketTypes {
		if qty := quantities[ticketType]; qty > 0 {
			total += float64(qty) * s.prices[ticketType]
		}
	}
	return total
}

// CreateBooking persists a booking header plus one detail row per ticket
// type with a nonzero quantity, preserving the TicketTypes order. The
// screening's capacity is not checked or decremented.
func (s *BookingService) CreateBooking(userID, screeningID uint, quantities map[string]int) (*models.Booking, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}

	var screening models.Screening
	if err := s.db.First(&screening, screeningID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScreeningNotFound
		}
		return nil, err
	}

	booking := models.Booking{
		UserID:      userID,
		ScreeningID: screening.ID,
		TotalPrice:  s.Quote(quantities),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		for _, ticketType := range TicketTypes {
			qty := quantities[ticketType]
			if qty <= 0 {
				continue
			}
			detail := models.BookingDetail{
				BookingID:  booking.ID,
				TicketType: ticketType,
				Quantity:   qty,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
			booking.Details = append(booking.Details, detail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (s *BookingService) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Details").Preload("Screening.Movie").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}
