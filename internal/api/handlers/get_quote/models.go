package get_quote

import (
	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	getQuote "github.com/m1shk4/ASB-BookingFront/internal/usecase/get_quote"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	ItemType      string             `json:"itemType"`
	ItemID        int64              `json:"itemId"`
	ScheduleID    int64              `json:"scheduleId"`
	SelectedDates []string           `json:"selectedDates,omitempty"`
	Participants  []ParticipantModel `json:"participants"`
	Discount      *DiscountModel     `json:"discount,omitempty"`
}

// ParticipantModel участник в HTTP представлении.
// Для расчёта значимы только количество участников и dailyHours
type ParticipantModel struct {
	DailyHours int `json:"dailyHours,omitempty"`
}

// DiscountModel скидка в HTTP представлении
type DiscountModel struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`
}

// ToUseCaseRequest конвертирует HTTP модель в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *getQuote.Request {
	dates := make([]types.DateString, len(r.SelectedDates))
	for i, date := range r.SelectedDates {
		dates[i] = types.DateString(date)
	}

	participants := make([]domain.Participant, len(r.Participants))
	for i, p := range r.Participants {
		participants[i] = domain.Participant{
			ID:         int64(i + 1),
			DailyHours: p.DailyHours,
		}
	}

	req := &getQuote.Request{
		ItemType:      domain.ItemType(r.ItemType),
		ItemID:        r.ItemID,
		ScheduleID:    r.ScheduleID,
		SelectedDates: dates,
		Participants:  participants,
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
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		Subtotal:       resp.Quote.Subtotal,
		DiscountAmount: resp.Quote.DiscountAmount,
		FinalPrice:     resp.Quote.FinalPrice,
	}
}
