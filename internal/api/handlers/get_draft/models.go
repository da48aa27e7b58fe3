package get_draft

import (
	"github.com/m1shk4/ASB-BookingFront/internal/domain"
)

// DraftResponse HTTP модель восстановленного черновика
type DraftResponse struct {
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
	DailyHours   int    `json:"dailyHours"`
}

// DiscountModel скидка в HTTP представлении
type DiscountModel struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// FromDomainDraft конвертирует доменный черновик в HTTP ответ
func FromDomainDraft(draft *domain.BookingDraft) *DraftResponse {
	participants := make([]ParticipantModel, len(draft.Participants))
	for i, p := range draft.Participants {
		participants[i] = ParticipantModel{
			ID:           p.ID,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			DateOfBirth:  p.DateOfBirth.String(),
			Gender:       p.Gender,
			SkillLevel:   p.SkillLevel,
			MedicalNotes: p.MedicalNotes,
			DailyHours:   p.EffectiveDailyHours(),
		}
	}

	dates := make([]string, len(draft.SelectedDates))
	for i, date := range draft.SelectedDates {
		dates[i] = date.String()
	}

	response := &DraftResponse{
		Contact: ContactModel{
			Name:  draft.Contact.Name,
			Email: draft.Contact.Email,
			Phone: draft.Contact.Phone,
		},
		Participants:  participants,
		SelectedDates: dates,
		ScheduleID:    draft.ScheduleID,
		CouponCode:    draft.CouponCode,
	}
	if draft.Discount != nil {
		response.Discount = &DiscountModel{
			Type:   string(draft.Discount.Type),
			Amount: draft.Discount.Amount,
		}
	}
	return response
}
