package models

import "fmt"

// Trend classifies the sign of a TY minus LY difference.
type Trend int

const (
	// Flat means TY equals LY.
	Flat Trend = iota
	// Up means TY is above LY.
	Up
	// Down means TY is below LY.
	Down
)

// TrendOf classifies a difference.
func TrendOf(diff float64) Trend {
	switch {
	case diff > 0:
		return Up
	case diff < 0:
		return Down
	default:
		return Flat
	}
}

func (t Trend) String() string {
	switch t {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "flat"
	}
}

// Symbol returns the arrow shown in tables.
func (t Trend) Symbol() string {
	switch t {
	case Up:
		return "▲"
	case Down:
		return "▼"
	default:
		return "▬"
	}
}

// MarshalText encodes the trend by name.
func (t Trend) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a trend name.
func (t *Trend) UnmarshalText(b []byte) error {
	switch string(b) {
	case "up":
		*t = Up
	case "down":
		*t = Down
	case "flat":
		*t = Flat
	default:
		return fmt.Errorf("invalid trend: %q", b)
	}
	return nil
}

// ComparisonRecord is the comparison for one snapshot date.
type ComparisonRecord struct {
	// Date is the snapshot date label.
	Date string `json:"date"`
	// TY is this year's value.
	TY float64 `json:"ty"`
	// LY is last year's value.
	LY float64 `json:"ly"`
	// Difference is TY minus LY.
	Difference float64 `json:"difference"`
	// Trend is the sign of Difference.
	Trend Trend `json:"trend"`
	// Mean is the rolling mean of TY (nil until the window fills).
	Mean *float64 `json:"mean"`
	// Std is the rolling standard deviation of TY (nil until the window fills).
	Std *float64 `json:"std"`
	// Upper is Mean + 2*Std (nil when Mean is nil).
	Upper *float64 `json:"upper"`
	// Lower is Mean - 2*Std (nil when Mean is nil).
	Lower *float64 `json:"lower"`
}
