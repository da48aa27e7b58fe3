package draft

import (
	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// persistedParticipant модель участника в JSONB payload
type persistedParticipant struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Gender       string `json:"gender,omitempty"`
	SkillLevel   string `json:"skillLevel,omitempty"`
	MedicalNotes string `json:"medicalNotes,omitempty"`
	DailyHours   int    `json:"dailyHours"`
}

// persistedDiscount модель скидки в JSONB payload
type persistedDiscount struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// persistedDraft модель черновика в JSONB payload
type persistedDraft struct {
	ContactName   string                 `json:"contactName"`
	ContactEmail  string                 `json:"contactEmail"`
	ContactPhone  string                 `json:"contactPhone"`
	Participants  []persistedParticipant `json:"participants"`
	SelectedDates []string               `json:"selectedDates"`
	ScheduleID    int64                  `json:"scheduleId,omitempty"`
	CouponCode    string                 `json:"couponCode,omitempty"`
	Discount      *persistedDiscount     `json:"discount,omitempty"`
}

// toPersisted конвертирует доменный черновик в модель хранения
func toPersisted(d *domain.BookingDraft) *persistedDraft {
	participants := make([]persistedParticipant, len(d.Participants))
	for i, p := range d.Participants {
		participants[i] = persistedParticipant{
			ID:           p.ID,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			DateOfBirth:  p.DateOfBirth.String(),
			Gender:       p.Gender,
			SkillLevel:   p.SkillLevel,
			MedicalNotes: p.MedicalNotes,
			DailyHours:   p.DailyHours,
		}
	}

	dates := make([]string, len(d.SelectedDates))
	for i, date := range d.SelectedDates {
		dates[i] = date.String()
	}

	var discount *persistedDiscount
	if d.Discount != nil {
		discount = &persistedDiscount{
			Type:   string(d.Discount.Type),
			Amount: d.Discount.Amount,
		}
	}

	return &persistedDraft{
		ContactName:   d.Contact.Name,
		ContactEmail:  d.Contact.Email,
		ContactPhone:  d.Contact.Phone,
		Participants:  participants,
		SelectedDates: dates,
		ScheduleID:    d.ScheduleID,
		CouponCode:    d.CouponCode,
		Discount:      discount,
	}
}

// toDomain конвертирует модель хранения в доменный черновик
func (p *persistedDraft) toDomain() *domain.BookingDraft {
	participants := make([]domain.Participant, len(p.Participants))
	for i, pp := range p.Participants {
		participants[i] = domain.Participant{
			ID:           pp.ID,
			FirstName:    pp.FirstName,
			LastName:     pp.LastName,
			DateOfBirth:  types.DateString(pp.DateOfBirth),
			Gender:       pp.Gender,
			SkillLevel:   pp.SkillLevel,
			MedicalNotes: pp.MedicalNotes,
			DailyHours:   pp.DailyHours,
		}
	}

	dates := make([]types.DateString, len(p.SelectedDates))
	for i, date := range p.SelectedDates {
		dates[i] = types.DateString(date)
	}

	var discount *domain.Discount
	if p.Discount != nil {
		discount = &domain.Discount{
			Type:   domain.DiscountType(p.Discount.Type),
			Amount: p.Discount.Amount,
		}
	}

	return &domain.BookingDraft{
		Contact: domain.Contact{
			Name:  p.ContactName,
			Email: p.ContactEmail,
			Phone: p.ContactPhone,
		},
		Participants:  participants,
		SelectedDates: dates,
		ScheduleID:    p.ScheduleID,
		CouponCode:    p.CouponCode,
		Discount:      discount,
	}
}
