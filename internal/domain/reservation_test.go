package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(h, m int) time.Time {
	return time.Date(2026, 5, 10, h, m, 0, 0, time.UTC)
}

func reservation(id int64, start, end time.Time) *Reservation {
	return &Reservation{ID: id, CourtID: 1, StartTime: start, EndTime: end}
}

func TestWindow_Overlaps(t *testing.T) {
	existing := Window{Start: at(10, 0), End: at(11, 0)}

	tests := []struct {
		name   string
		window Window
		want   bool
	}{
		{name: "same window", window: Window{Start: at(10, 0), End: at(11, 0)}, want: true},
		{name: "inside", window: Window{Start: at(10, 15), End: at(10, 45)}, want: true},
		{name: "covers", window: Window{Start: at(9, 0), End: at(12, 0)}, want: true},
		{name: "overlaps start", window: Window{Start: at(9, 30), End: at(10, 30)}, want: true},
		{name: "overlaps end", window: Window{Start: at(10, 30), End: at(11, 30)}, want: true},
		{name: "touches end", window: Window{Start: at(11, 0), End: at(12, 0)}, want: false},
		{name: "touches start", window: Window{Start: at(9, 0), End: at(10, 0)}, want: false},
		{name: "disjoint", window: Window{Start: at(14, 0), End: at(15, 0)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.Overlaps(existing))
			assert.Equal(t, tt.want, existing.Overlaps(tt.window))
		})
	}
}

func TestHasOverlap(t *testing.T) {
	window := Window{Start: at(10, 30), End: at(11, 30)}

	t.Run("empty", func(t *testing.T) {
		assert.False(t, HasOverlap(nil, window, nil))
	})

	t.Run("order independent", func(t *testing.T) {
		a := reservation(1, at(8, 0), at(9, 0))
		b := reservation(2, at(11, 0), at(12, 0))
		assert.True(t, HasOverlap([]*Reservation{a, b}, window, nil))
		assert.True(t, HasOverlap([]*Reservation{b, a}, window, nil))
	})

	t.Run("excluded reservation is ignored", func(t *testing.T) {
		self := reservation(7, at(10, 0), at(11, 0))
		id := int64(7)
		assert.False(t, HasOverlap([]*Reservation{self}, window, &id))
		assert.True(t, HasOverlap([]*Reservation{self}, window, nil))
	})

	t.Run("deleted reservation is ignored", func(t *testing.T) {
		deleted := reservation(3, at(10, 0), at(11, 0))
		deleted.Deleted = true
		assert.False(t, HasOverlap([]*Reservation{deleted}, window, nil))
	})
}

func TestWindow_Minutes(t *testing.T) {
	assert.Equal(t, int64(9), Window{Start: at(10, 0), End: at(10, 9).Add(59 * time.Second)}.Minutes())
	assert.Equal(t, int64(60), Window{Start: at(10, 0), End: at(11, 0)}.Minutes())
}

func TestCourt_IsActive(t *testing.T) {
	assert.True(t, (&Court{Surface: &Surface{}}).IsActive())
	assert.False(t, (&Court{Deleted: true, Surface: &Surface{}}).IsActive())
	assert.False(t, (&Court{Surface: &Surface{Deleted: true}}).IsActive())
	assert.False(t, (&Court{}).IsActive())
	var nilCourt *Court
	assert.False(t, nilCourt.IsActive())
}

func TestNormalizePhoneNumber(t *testing.T) {
	assert.Equal(t, "+79990000001", NormalizePhoneNumber("\t+79990000001 \n"))
	assert.Equal(t, "", NormalizePhoneNumber("   "))
}
