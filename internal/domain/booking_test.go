package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func TestBooking_Overlaps(t *testing.T) {
	b := Booking{Stylist: StylistAny, StartMin: 540, EndMin: 570} // 09:00-09:30

	tests := []struct {
		name  string
		start types.MinuteOfDay
		end   types.MinuteOfDay
		want  bool
	}{
		{name: "identical interval", start: 540, end: 570, want: true},
		{name: "contained", start: 550, end: 560, want: true},
		{name: "overlaps start", start: 510, end: 541, want: true},
		{name: "overlaps end", start: 569, end: 600, want: true},
		{name: "touches end boundary", start: 570, end: 600, want: false},
		{name: "touches start boundary", start: 510, end: 540, want: false},
		{name: "fully before", start: 480, end: 510, want: false},
		{name: "fully after", start: 600, end: 630, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(tt.start, tt.end))
		})
	}
}

func TestBooking_BlocksStylist_ExactMatchOnly(t *testing.T) {
	anyBooking := Booking{Stylist: StylistAny, StartMin: 540, EndMin: 570}
	annaBooking := Booking{Stylist: "anna", StartMin: 540, EndMin: 570}

	// Sentinel ANY не работает как wildcard ни в одну сторону
	assert.True(t, anyBooking.BlocksStylist(StylistAny, 540, 570))
	assert.False(t, anyBooking.BlocksStylist("anna", 540, 570))
	assert.True(t, annaBooking.BlocksStylist("anna", 540, 570))
	assert.False(t, annaBooking.BlocksStylist(StylistAny, 540, 570))
	assert.False(t, annaBooking.BlocksStylist("boris", 540, 570))
}

func TestDayLedger_HasCollision(t *testing.T) {
	ledger := DayLedger{
		{Stylist: StylistAny, StartMin: 600, EndMin: 630},
		{Stylist: "anna", StartMin: 840, EndMin: 900},
	}

	assert.True(t, ledger.HasCollision(StylistAny, 600, 630))
	assert.True(t, ledger.HasCollision("anna", 870, 900))
	assert.False(t, ledger.HasCollision("anna", 600, 630))
	assert.False(t, ledger.HasCollision(StylistAny, 840, 900))
	assert.False(t, ledger.HasCollision(StylistAny, 630, 660))
	assert.False(t, DayLedger{}.HasCollision(StylistAny, 540, 1080))
}
