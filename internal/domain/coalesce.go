package domain

import "strings"

// CoalesceStr returns the first value that is not blank after trimming
// whitespace. Returns "" when every value is blank.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
