package get_available_slots

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// generateSlots перечисляет свободные времена начала для услуги заданной
// длительности с учетом журнала занятости дня.
//
// Сетка: каждые domain.SlotStepMinutes минут от открытия; кандидат t
// допустим, только если t + duration не выходит за закрытие. Кандидат
// исключается, если в журнале есть бронирование того же стилиста,
// интервал которого реально пересекается с [t, t+duration).
//
// Сравнение стилиста - строгое строковое равенство. Sentinel "ANY" не
// работает как wildcard ни в одну сторону: бронирование ANY не блокирует
// выбор конкретного стилиста, и наоборот. Поведение унаследовано от
// исходного виджета и закреплено тестом.
//
// Граничные случаи пересечения не считаются коллизией:
// бронирование 09:00-09:30 не блокирует кандидата 09:30.
func generateSlots(ledger domain.DayLedger, durationMinutes int, stylist string) []types.MinuteOfDay {
	slots := make([]types.MinuteOfDay, 0)

	for t := types.MinuteOfDay(domain.OpenMinute); t <= domain.CloseMinute; t += domain.SlotStepMinutes {
		end := t.Add(durationMinutes)
		if end > domain.CloseMinute {
			continue
		}

		if ledger.HasCollision(stylist, t, end) {
			continue
		}

		slots = append(slots, t)
	}

	return slots
}

// normalizeStylist подставляет sentinel ANY вместо пустого предпочтения
func normalizeStylist(stylist string) string {
	if stylist == "" {
		return domain.StylistAny
	}
	return stylist
}
