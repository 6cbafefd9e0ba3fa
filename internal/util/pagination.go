package util

// Calculate turns 1-based page/size query values into a search offset and
// limit, clamping size to 1..100 with a default of 10.
func Calculate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	from = (page - 1) * size
	return from, size
}
