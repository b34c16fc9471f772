package models

import "time"

// Bar is one period of OHLCV data for the underlying. Timestamp is in ms.
type Bar struct {
	Timestamp int64   `csv:"timestamp"`
	Open      float64 `csv:"open"`
	High      float64 `csv:"high"`
	Low       float64 `csv:"low"`
	Close     float64 `csv:"close"`
	Volume    float64 `csv:"volume"`
}

func (b Bar) Time() time.Time {
	return time.Unix(0, b.Timestamp*int64(time.Millisecond)).UTC()
}
