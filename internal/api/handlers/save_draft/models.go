package save_draft

import (
	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// SaveDraftRequest HTTP модель сохраняемого черновика.
// Черновик сохраняется целиком: частичных обновлений нет
type SaveDraftRequest struct {
	Contact       ContactModel       `json:"contact"`
	Participants  []ParticipantModel `json:"participants"`
	SelectedDates []string           `json:"selectedDates"`
	ScheduleID    int64              `json:"scheduleId,omitempty"`
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

// SaveDraftResponse HTTP модель ответа на сохранение
type SaveDraftResponse struct {
	Saved bool `json:"saved"`
}

// ToDomainDraft конвертирует HTTP модель в доменный черновик
func (r *SaveDraftRequest) ToDomainDraft() *domain.BookingDraft {
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

	draft := &domain.BookingDraft{
		Contact: domain.Contact{
			Name:  r.Contact.Name,
			Email: r.Contact.Email,
			Phone: r.Contact.Phone,
		},
		Participants:  participants,
		SelectedDates: dates,
		ScheduleID:    r.ScheduleID,
		CouponCode:    r.CouponCode,
	}
	if r.Discount != nil {
		draft.Discount = &domain.Discount{
			Type:   domain.DiscountType(r.Discount.Type),
			Amount: r.Discount.Amount,
		}
	}
	return draft
}
