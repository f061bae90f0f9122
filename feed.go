package zoo

import "github.com/samber/lo"

// FeedAll feeds every element in order and returns the total food points
// consumed. Each element's own Feed is called exactly once; an empty or nil
// slice yields 0.
func FeedAll[F Feeder](pets []F) int {
	total := lo.SumBy(pets, func(p F) int {
		return p.Feed()
	})
	feedLogger.Debugw("fed all", "count", len(pets), "total", total)
	return total
}
