package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation represents a court booking
type Reservation struct {
	ID         int64
	CourtID    int64
	UserID     int64
	StartTime  time.Time
	EndTime    time.Time
	IsDoubles  bool
	TotalPrice decimal.Decimal
	Deleted    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Заполняются при чтении с join
	Court *Court
	User  *User
}

// Window возвращает временное окно бронирования
func (r *Reservation) Window() Window {
	return Window{Start: r.StartTime, End: r.EndTime}
}

// Window полуоткрытый интервал [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// Minutes длительность окна в целых минутах (остаток отбрасывается)
func (w Window) Minutes() int64 {
	return int64(w.End.Sub(w.Start) / time.Minute)
}

// Overlaps окна пересекаются, если start < other.end и end > other.start.
// Соприкасающиеся окна не пересекаются.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && w.End.After(other.Start)
}

// HasOverlap проверяет, пересекается ли window хотя бы с одним неудаленным бронированием.
// Бронирование с ID == *excludeID пропускается (используется при изменении).
func HasOverlap(reservations []*Reservation, window Window, excludeID *int64) bool {
	for _, r := range reservations {
		if r == nil || r.Deleted {
			continue
		}
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		if window.Overlaps(r.Window()) {
			return true
		}
	}
	return false
}
