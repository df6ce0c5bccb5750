package format

import (
	"reflect"
	"testing"

	"xoi-ngoc-web/internal/domain"
)

func TestFormatVND(t *testing.T) {
	cases := []struct {
		price int
		want  string
	}{
		{25000, "25.000đ"},
		{500, "500đ"},
		{0, "0đ"},
		{1000000, "1.000.000đ"},
		{-1500, "-1.500đ"},
	}

	for _, tc := range cases {
		if got := FormatVND(tc.price); got != tc.want {
			t.Fatalf("FormatVND(%d): expected %q, got %q", tc.price, tc.want, got)
		}
	}
}

func TestPhoneDigits(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"038.698.3357", "0386983357"},
		{"038-698 3357", "0386983357"},
		{"+84 38 698 3357", "84386983357"},
		{"", ""},
		{"no digits", ""},
	}

	for _, tc := range cases {
		if got := PhoneDigits(tc.in); got != tc.want {
			t.Fatalf("PhoneDigits(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestTelAndZaloURLs(t *testing.T) {
	if got := TelURL("038.698.3357"); got != "tel:0386983357" {
		t.Fatalf("unexpected tel url: %q", got)
	}
	if got := ZaloURL("038.698.3357"); got != "https://zalo.me/0386983357" {
		t.Fatalf("unexpected zalo url: %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2025-12-06T10:30:00Z", "06/12/2025"},
		{"2025-12-06T10:30:00+07:00", "06/12/2025"},
		{"2025-01-02", "02/01/2025"},
		{"not a date", "not a date"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := FormatDate(tc.in); got != tc.want {
			t.Fatalf("FormatDate(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestGroupByCategory(t *testing.T) {
	items := []domain.MenuItem{
		{ID: "1", Category: "XÔI"},
		{ID: "2", Category: "BÁNH MÌ"},
		{ID: "3", Category: "XÔI"},
	}

	grouped, order := GroupByCategory(items)

	if !reflect.DeepEqual(order, []string{"XÔI", "BÁNH MÌ"}) {
		t.Fatalf("unexpected category order: %v", order)
	}
	if len(grouped["XÔI"]) != 2 || grouped["XÔI"][0].ID != "1" || grouped["XÔI"][1].ID != "3" {
		t.Fatalf("unexpected XÔI group: %v", grouped["XÔI"])
	}
	if len(grouped["BÁNH MÌ"]) != 1 {
		t.Fatalf("unexpected BÁNH MÌ group: %v", grouped["BÁNH MÌ"])
	}
}
