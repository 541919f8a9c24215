// Package rating aggregates review scores for a listing.
package rating

// Average returns the arithmetic mean of the ratings, or 0.0 for an empty
// set. The zero default keeps display logic simple downstream; it is not an
// error and not null. The result is order-independent and lies in [0, 5]
// for ratings in [1, 5].
func Average(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0.0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}
