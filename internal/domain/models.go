package domain

import "time"

// Branding and static links for the storefront.
const (
	RestaurantName    = "Bánh mì và xôi Ngọc"
	RestaurantTagline = "Ngon - Sạch - Rẻ"
	FacebookURL       = "https://www.facebook.com/61573438988182"
	DefaultMapsURL    = "https://maps.google.com/?q=146+Phung+Khoang,+Dai+Mo,+Ha+Noi"
)

// NoteCategory is the category whose tab shows the default note from meta.
const NoteCategory = "XÔI"

// MenuItem is one dish as served by the upstream menu API. Prices are whole
// VND. Sort orders items inside a category and decides category discovery
// order across the whole menu.
type MenuItem struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Available   bool   `json:"available"`
	Sort        int    `json:"sort"`
}

// Topping is an add-on sold independently of any single item.
type Topping struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Available bool   `json:"available"`
	Sort      int    `json:"sort"`
}

// MenuMeta carries the operational details shown around the menu.
type MenuMeta struct {
	Hotline        string `json:"hotline"`
	Address        string `json:"address"`
	Address1       string `json:"address1,omitempty"`
	Address2       string `json:"address2,omitempty"`
	TimeOpen       string `json:"time_open"`
	TimeClose      string `json:"time_close"`
	NoteXoiDefault string `json:"note_xoi_default"`
}

// MenuData is the root document returned by the menu API.
type MenuData struct {
	UpdatedAt string     `json:"updatedAt"`
	Meta      MenuMeta   `json:"meta"`
	Items     []MenuItem `json:"items"`
	Toppings  []Topping  `json:"toppings"`
}

// FallbackMeta keeps the contact actions working when the menu API is down
// or not configured.
func FallbackMeta() MenuMeta {
	return MenuMeta{
		Hotline:   "0386983357",
		Address:   "146 Phùng Khoang - Đại Mỗ - HN",
		TimeOpen:  "07:00",
		TimeClose: "22:00",
	}
}

// MenuView is the derived page state for one request. Available is false
// when the menu could not be fetched; Meta is still populated so contact
// shortcuts keep working.
type MenuView struct {
	Available      bool       `json:"available"`
	UpdatedAt      string     `json:"updated_at,omitempty"`
	Meta           MenuMeta   `json:"meta"`
	Categories     []string   `json:"categories"`
	ActiveCategory string     `json:"active_category"`
	SearchQuery    string     `json:"search_query"`
	Items          []MenuItem `json:"items"`
	Toppings       []Topping  `json:"toppings"`
	Note           string     `json:"note,omitempty"`
}

// PageEvent is emitted to Kafka for page views and searches.
type PageEvent struct {
	Type      string    `json:"type"`
	Path      string    `json:"path"`
	Category  string    `json:"category,omitempty"`
	Query     string    `json:"query,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
