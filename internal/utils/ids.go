package utils

import "strconv"

// FormatID renders a numeric ID for use in URLs
func FormatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
