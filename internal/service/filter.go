package service

import (
	"sort"
	"strings"

	"xoi-ngoc-web/internal/domain"
)

// Filter is the per-session menu filter state: the category the visitor
// picked and the transient search text. A non-empty search decides the
// displayed set on its own, but the picked category stays underneath so
// clearing the search falls back to it.
type Filter struct {
	activeCategory string
	latched        bool
	searchQuery    string
}

func NewFilter() *Filter {
	return &Filter{}
}

// SelectCategory records an explicit category choice. Once any choice has
// been made (here or by the default latch in Apply) it sticks; an empty
// label is ignored so the default latch can still fire.
func (f *Filter) SelectCategory(category string) {
	if category == "" {
		return
	}
	f.activeCategory = category
	f.latched = true
}

func (f *Filter) SetSearch(query string) {
	f.searchQuery = query
}

func (f *Filter) ClearSearch() {
	f.searchQuery = ""
}

func (f *Filter) ActiveCategory() string {
	return f.activeCategory
}

func (f *Filter) SearchQuery() string {
	return f.searchQuery
}

// Apply runs the derivation pipeline over a fresh menu document. The
// default category latches exactly once, on the first run that discovers
// any categories; later runs never override a choice already made.
func (f *Filter) Apply(data *domain.MenuData) domain.MenuView {
	available := AvailableItems(data.Items)
	categories := Categories(available)

	if !f.latched && len(categories) > 0 {
		f.activeCategory = categories[0]
		f.latched = true
	}

	view := domain.MenuView{
		Available:      true,
		UpdatedAt:      data.UpdatedAt,
		Meta:           data.Meta,
		Categories:     categories,
		ActiveCategory: f.activeCategory,
		SearchQuery:    f.searchQuery,
		Items:          FilterItems(available, f.activeCategory, f.searchQuery),
		Toppings:       AvailableToppings(data.Toppings),
	}

	if f.activeCategory == domain.NoteCategory && f.searchQuery == "" && data.Meta.NoteXoiDefault != "" {
		view.Note = data.Meta.NoteXoiDefault
	}

	return view
}

// AvailableItems keeps items with available==true, ordered by sort key.
// The sort is stable so equal keys keep their upstream order.
func AvailableItems(items []domain.MenuItem) []domain.MenuItem {
	out := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Available {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sort < out[j].Sort })
	return out
}

// Categories projects the distinct category labels out of the sorted
// available items, keeping first occurrence.
func Categories(available []domain.MenuItem) []string {
	seen := make(map[string]struct{}, len(available))
	var categories []string
	for _, item := range available {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories
}

// FilterItems applies the effective filter. A non-empty trimmed query
// matches name, description or category case-insensitively and ignores the
// category selection; otherwise the active category applies; with neither,
// everything available shows.
func FilterItems(available []domain.MenuItem, activeCategory, searchQuery string) []domain.MenuItem {
	query := strings.ToLower(strings.TrimSpace(searchQuery))
	if query != "" {
		out := []domain.MenuItem{}
		for _, item := range available {
			if strings.Contains(strings.ToLower(item.Name), query) ||
				strings.Contains(strings.ToLower(item.Description), query) ||
				strings.Contains(strings.ToLower(item.Category), query) {
				out = append(out, item)
			}
		}
		return out
	}

	if activeCategory != "" {
		out := []domain.MenuItem{}
		for _, item := range available {
			if item.Category == activeCategory {
				out = append(out, item)
			}
		}
		return out
	}

	return available
}

// AvailableToppings keeps toppings with available==true, ordered by sort
// key, stable on ties.
func AvailableToppings(toppings []domain.Topping) []domain.Topping {
	out := make([]domain.Topping, 0, len(toppings))
	for _, topping := range toppings {
		if topping.Available {
			out = append(out, topping)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sort < out[j].Sort })
	return out
}
