package schedulegate

import (
	"fmt"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// Сообщения о нарушениях, в порядке приоритета
const (
	msgScheduleInactive   = "расписание недоступно для записи"
	msgScheduleNotYetOpen = "запись на это расписание ещё не открыта"
	msgScheduleEnded      = "запись на это расписание завершена"
	msgBelowMinimum       = "минимальное количество участников — %d"
	msgAboveMaximum       = "максимальное количество участников — %d"
)

// IsScheduleActive проверяет, что расписание доступно для записи сегодня.
// Обе границы окна включительны и сравниваются как локальные календарные
// дни, а не моменты времени — иначе на границе часовых поясов возможна
// ошибка на день
func IsScheduleActive(window domain.ScheduleWindow, today types.DateString) bool {
	return window.Active && window.Contains(today)
}

// IsBookingRuleSatisfied проверяет количество участников по правилу бронирования.
// Отсутствующая граница (nil) означает отсутствие ограничения
func IsBookingRuleSatisfied(rule domain.BookingRule, participantCount int) bool {
	if rule.MinParticipants != nil && participantCount < *rule.MinParticipants {
		return false
	}
	if rule.MaxParticipants != nil && participantCount > *rule.MaxParticipants {
		return false
	}
	return true
}

// RuleViolationMessage возвращает ровно одно сообщение о нарушении
// с приоритетом: расписание ещё не открыто > расписание завершено >
// меньше минимума > больше максимума. nil — нарушений нет.
// При любом нарушении отправка должна блокироваться, а не только
// сопровождаться предупреждением
func RuleViolationMessage(window domain.ScheduleWindow, rule domain.BookingRule, participantCount int, today types.DateString) *string {
	if !window.Active {
		msg := msgScheduleInactive
		return &msg
	}
	if today.IsBefore(window.StartDate) {
		msg := msgScheduleNotYetOpen
		return &msg
	}
	if today.IsAfter(window.EndDate) {
		msg := msgScheduleEnded
		return &msg
	}
	if rule.MinParticipants != nil && participantCount < *rule.MinParticipants {
		msg := fmt.Sprintf(msgBelowMinimum, *rule.MinParticipants)
		return &msg
	}
	if rule.MaxParticipants != nil && participantCount > *rule.MaxParticipants {
		msg := fmt.Sprintf(msgAboveMaximum, *rule.MaxParticipants)
		return &msg
	}
	return nil
}
