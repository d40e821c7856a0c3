package pricehistory

// Resolution is the concrete (candle interval, candle count) pair a
// coarse timeframe maps to.
type Resolution struct {
	Interval string
	Limit    int
}

// timeframeMap maps each user-facing chart window to a data resolution.
// Counts are chosen so every window renders at a similar point density.
var timeframeMap = map[string]Resolution{
	"24H": {Interval: "15m", Limit: 96},  // 96 * 15m = 24 hours
	"7D":  {Interval: "1h", Limit: 168},  // 168 * 1h = 7 days
	"30D": {Interval: "4h", Limit: 180},  // 180 * 4h = 30 days
	"1Y":  {Interval: "1d", Limit: 365},  // 365 * 1d = 1 year
}

// Resolve maps a timeframe string to its resolution. Unknown input is a
// defined case, not an error: it resolves to the 24H entry, which the
// frontend relies on as the default path.
func Resolve(timeframe string) Resolution {
	if res, ok := timeframeMap[timeframe]; ok {
		return res
	}
	return timeframeMap["24H"]
}
