package submit_booking

import (
	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	submitBooking "github.com/m1shk4/ASB-BookingFront/internal/usecase/submit_booking"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	ItemType      string             `json:"itemType"`
	ItemID        int64              `json:"itemId"`
	ScheduleID    int64              `json:"scheduleId"`
	Contact       ContactModel       `json:"contact"`
	Participants  []ParticipantModel `json:"participants"`
	SelectedDates []string           `json:"selectedDates,omitempty"`
	CouponCode    string             `json:"couponCode,omitempty"`
	Discount      *DiscountModel     `json:"discount,omitempty"`
}

// ContactModel контактные данные в HTTP представлении
type ContactModel struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ParticipantModel участник в HTTP представлении
type ParticipantModel struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Gender       string `json:"gender,omitempty"`
	SkillLevel   string `json:"skillLevel,omitempty"`
	MedicalNotes string `json:"medicalNotes,omitempty"`
	DailyHours   int    `json:"dailyHours,omitempty"`
}

// DiscountModel скидка в HTTP представлении
type DiscountModel struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	BookingReference string  `json:"bookingReference"`
	Subtotal         float64 `json:"subtotal"`
	DiscountAmount   float64 `json:"discountAmount"`
	FinalPrice       float64 `json:"finalPrice"`
}

// ToUseCaseRequest конвертирует HTTP модель в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest(clientID, bearerToken string) *submitBooking.Request {
	participants := make([]domain.Participant, len(r.Participants))
	for i, p := range r.Participants {
		participants[i] = domain.Participant{
			ID:           p.ID,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			DateOfBirth:  types.DateString(p.DateOfBirth),
			Gender:       p.Gender,
			SkillLevel:   p.SkillLevel,
			MedicalNotes: p.MedicalNotes,
			DailyHours:   p.DailyHours,
		}
	}

	dates := make([]types.DateString, len(r.SelectedDates))
	for i, date := range r.SelectedDates {
		dates[i] = types.DateString(date)
	}

	req := &submitBooking.Request{
		ClientID:    clientID,
		BearerToken: bearerToken,
		ItemType:    domain.ItemType(r.ItemType),
		ItemID:      r.ItemID,
		ScheduleID:  r.ScheduleID,
		Contact: domain.Contact{
			Name:  r.Contact.Name,
			Email: r.Contact.Email,
			Phone: r.Contact.Phone,
		},
		Participants:  participants,
		SelectedDates: dates,
		CouponCode:    r.CouponCode,
	}
	if r.Discount != nil {
		req.Discount = &domain.Discount{
			Type:   domain.DiscountType(r.Discount.Type),
			Amount: r.Discount.Amount,
		}
	}
	return req
}

// FromUseCaseResponse конвертирует модель use case в HTTP ответ
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		BookingReference: resp.BookingReference,
		Subtotal:         resp.Quote.Subtotal,
		DiscountAmount:   resp.Quote.DiscountAmount,
		FinalPrice:       resp.Quote.FinalPrice,
	}
}
