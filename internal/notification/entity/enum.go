package entity

import "strings"

// Category groups marketing content so users can opt in per interest.
type Category int16

const (
	CategoryUnknown       Category = 0
	CategoryPromotional   Category = 1
	CategoryNewsletter    Category = 2
	CategoryProductUpdate Category = 3
)

func CategoryFromString(raw string) Category {
	switch strings.TrimSpace(raw) {
	case "promotional":
		return CategoryPromotional
	case "newsletter":
		return CategoryNewsletter
	case "product_update":
		return CategoryProductUpdate
	default:
		return CategoryUnknown
	}
}

func (c Category) String() string {
	switch c {
	case CategoryPromotional:
		return "promotional"
	case CategoryNewsletter:
		return "newsletter"
	case CategoryProductUpdate:
		return "product_update"
	default:
		return "unknown"
	}
}

// Timing decides whether a broadcast goes out on create or at a scheduled time.
type Timing int16

const (
	TimingUnknown   Timing = 0
	TimingImmediate Timing = 1
	TimingScheduled Timing = 2
)

func TimingFromString(raw string) Timing {
	switch strings.TrimSpace(raw) {
	case "immediate":
		return TimingImmediate
	case "scheduled":
		return TimingScheduled
	default:
		return TimingUnknown
	}
}

func (t Timing) String() string {
	switch t {
	case TimingImmediate:
		return "immediate"
	case TimingScheduled:
		return "scheduled"
	default:
		return "unknown"
	}
}
