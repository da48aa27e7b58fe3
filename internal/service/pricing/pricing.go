package pricing

import (
	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

// Compute вычисляет стоимость бронирования курса.
// Цена даты берётся из слота доступности; для дат без известного слота
// используется fallbackPrice (плоская цена за слот), иначе 0.
// Часовой множитель участника умножает сумму по всем датам целиком:
// subtotal = Σ по участникам ( Σ по датам unitPrice ) × dailyHours.
// Скидка применяется к итоговой сумме; результат не бывает отрицательным.
// Функция чистая и пересчитывается на каждое изменение состояния —
// мемоизации нет намеренно, чтобы исключить устаревший результат
func Compute(
	selectedDates []types.DateString,
	availability map[types.DateString]domain.AvailabilitySlot,
	participants []domain.Participant,
	fallbackPrice float64,
	discount *domain.Discount,
) domain.Quote {
	dateSum := 0.0
	for _, date := range selectedDates {
		dateSum += unitPrice(date, availability, fallbackPrice)
	}

	subtotal := 0.0
	for i := range participants {
		subtotal += dateSum * float64(participants[i].EffectiveDailyHours())
	}

	return applyDiscount(subtotal, discount)
}

// ComputePackage вычисляет стоимость бронирования пакета.
// Пакет имеет единую цену вне зависимости от длины расписания:
// subtotal = packagePrice × количество участников
func ComputePackage(packagePrice float64, participantCount int, discount *domain.Discount) domain.Quote {
	subtotal := packagePrice * float64(participantCount)
	return applyDiscount(subtotal, discount)
}

// unitPrice определяет цену одной даты: цена слота, иначе fallbackPrice, иначе 0
func unitPrice(date types.DateString, availability map[types.DateString]domain.AvailabilitySlot, fallbackPrice float64) float64 {
	if slot, ok := availability[date]; ok {
		return slot.Price
	}
	if fallbackPrice > 0 {
		return fallbackPrice
	}
	return 0
}

// applyDiscount применяет скидку к промежуточной сумме.
// PERCENTAGE умножает subtotal на amount/100, FIXED_AMOUNT вычитается напрямую.
// finalPrice = max(0, subtotal - discountAmount)
func applyDiscount(subtotal float64, discount *domain.Discount) domain.Quote {
	discountAmount := 0.0
	if discount != nil {
		switch discount.Type {
		case domain.DiscountPercentage:
			discountAmount = subtotal * discount.Amount / 100
		case domain.DiscountFixed:
			discountAmount = discount.Amount
		}
	}

	if discountAmount > subtotal {
		discountAmount = subtotal
	}

	return domain.Quote{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		FinalPrice:     subtotal - discountAmount,
	}
}
