package loader

import "strings"

// dateColumnRule matches a candidate order-date header.
type dateColumnRule func(header string) bool

// Date column detection is a prioritized rule list, checked rule by rule
// across all headers so an earlier rule always wins over a later one.
var dateColumnRules = []dateColumnRule{
	func(h string) bool { return strings.Contains(strings.ToLower(h), "dateorders") },
	func(h string) bool {
		lower := strings.ToLower(h)
		return strings.Contains(lower, "order") && strings.Contains(lower, "date")
	},
	func(h string) bool { return h == "OrderDate" },
}

// DetectDateColumn returns the index of the order-date column, or false when
// no rule matches any header.
func DetectDateColumn(headers []string) (int, bool) {
	for _, rule := range dateColumnRules {
		for i, h := range headers {
			if rule(h) {
				return i, true
			}
		}
	}
	return 0, false
}
