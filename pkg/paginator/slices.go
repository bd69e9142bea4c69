package paginator

// PaginateSlice applies pagination to a slice of any type.
// It returns the items for the requested page plus the filtered total.
func PaginateSlice[T any](slice []T, query PaginateQuery) ([]T, int64) {
	query.Adjust()

	total := int64(len(slice))

	start := query.Offset()
	end := start + query.PageSize
	if int64(end) > total {
		end = int(total)
	}

	// Out-of-range page yields an empty page, not an error.
	if int64(start) >= total {
		return []T{}, total
	}

	return slice[start:end], total
}
