package submit_booking

import (
	"fmt"
	"strings"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
)

// Предусловия отправки, по одному сообщению на нарушение
const (
	msgContactNameRequired      = "укажите контактное имя"
	msgContactEmailRequired     = "укажите email"
	msgContactPhoneRequired     = "укажите телефон"
	msgFirstParticipantRequired = "укажите имя первого участника"
	msgDatesRequired            = "выберите хотя бы одну дату"
	msgScheduleRequired         = "выберите расписание"
)

// validateRequest валидирует структурную корректность запроса
func validateRequest(req *Request) error {
	if req.ClientID == "" {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}
	if !req.ItemType.IsValid() {
		return fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, req.ItemType)
	}
	if req.ItemID <= 0 {
		return fmt.Errorf("%w: itemID must be positive", ErrInvalidInput)
	}
	if len(req.Participants) < domain.MinParticipants {
		return fmt.Errorf("%w: at least one participant is required", ErrInvalidInput)
	}
	if req.Discount != nil && !req.Discount.Type.IsValidType() {
		return fmt.Errorf("%w: unknown discount type %q", ErrInvalidInput, req.Discount.Type)
	}
	for _, date := range req.SelectedDates {
		if err := date.Validate(); err != nil {
			return fmt.Errorf("%w: invalid selected date %q: %v", ErrInvalidInput, date, err)
		}
	}
	return nil
}

// checkPreconditions проверяет локальные предусловия отправки.
// Нарушения собираются в одно агрегированное сообщение; частичная
// отправка не выполняется
func checkPreconditions(req *Request) *PreconditionError {
	var violations []string

	if strings.TrimSpace(req.Contact.Name) == "" {
		violations = append(violations, msgContactNameRequired)
	}
	if strings.TrimSpace(req.Contact.Email) == "" {
		violations = append(violations, msgContactEmailRequired)
	}
	if strings.TrimSpace(req.Contact.Phone) == "" {
		violations = append(violations, msgContactPhoneRequired)
	}
	if strings.TrimSpace(req.Participants[0].FirstName) == "" {
		violations = append(violations, msgFirstParticipantRequired)
	}

	switch req.ItemType {
	case domain.ItemTypeCourse:
		if len(req.SelectedDates) == 0 {
			violations = append(violations, msgDatesRequired)
		}
	case domain.ItemTypePackage:
		if req.ScheduleID <= 0 {
			violations = append(violations, msgScheduleRequired)
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return &PreconditionError{Message: strings.Join(violations, "; ")}
}
