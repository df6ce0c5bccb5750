// Package format holds the pure helpers shared by the page and the JSON
// endpoints. Every function is total: malformed input degrades to a usable
// string instead of failing.
package format

import (
	"strconv"
	"strings"
	"time"

	"xoi-ngoc-web/internal/domain"
)

// PhoneDigits strips everything that is not a digit, so hotlines written as
// "038.698.3357" become dialable.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// TelURL builds a tel: link from any human-formatted phone number.
func TelURL(phone string) string {
	return "tel:" + PhoneDigits(phone)
}

// ZaloURL builds a Zalo chat link from any human-formatted phone number.
func ZaloURL(phone string) string {
	return "https://zalo.me/" + PhoneDigits(phone)
}

// FormatVND renders a whole-VND price like "25.000đ".
func FormatVND(price int) string {
	return groupThousands(price) + "đ"
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + strings.Join(parts, ".")
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders an ISO timestamp as DD/MM/YYYY. The output is built
// from calendar fields, never from the environment locale. Unparseable
// input is returned unchanged.
func FormatDate(dateStr string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return dateStr
}

// GroupByCategory partitions items by category label, keeping the incoming
// order inside each group. The second return value lists the labels in
// first-seen order, since a map cannot carry it.
func GroupByCategory(items []domain.MenuItem) (map[string][]domain.MenuItem, []string) {
	grouped := make(map[string][]domain.MenuItem, len(items))
	var order []string
	for _, item := range items {
		if _, ok := grouped[item.Category]; !ok {
			order = append(order, item.Category)
		}
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped, order
}
