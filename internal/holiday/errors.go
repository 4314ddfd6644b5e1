package holiday

import "errors"

var (
	// ErrMalformedRule is returned when a fixed-holiday specification cannot
	// be turned into a valid day/month pair. Nothing is stored in that case.
	ErrMalformedRule = errors.New("malformed holiday rule")

	// ErrYearOutOfRange marks a year outside [MinYear, MaxYear].
	ErrYearOutOfRange = errors.New("year out of supported range")

	// ErrNoBusinessDay is returned when a business-day walk finds only
	// holidays and weekends for MaxBusinessGap days.
	ErrNoBusinessDay = errors.New("no business day found")

	// ErrInvalidCacheRange is returned for a cacheable range with min > max
	// or with bounds outside [MinYear, MaxYear].
	ErrInvalidCacheRange = errors.New("invalid feast cache range")
)
