package domain

// Color is a display color in "#RRGGBB" form.
type Color string

// Catalog colors.
const (
	ColorRed    Color = "#FF0000"
	ColorGreen  Color = "#00FF00"
	ColorBlue   Color = "#0000FF"
	ColorPurple Color = "#8E44AD"
	ColorGold   Color = "#FFD700"
	ColorWhite  Color = "#FFFFFF"
)

// DefaultThemeColor is the theme color used when no item is selected.
const DefaultThemeColor = ColorWhite

// StoreItem is a purchasable color theme.
// Only Purchased and Selected change; the rest comes from the catalog.
type StoreItem struct {
	ColorName string
	ColorCode Color
	Price     int
	Purchased bool
	Selected  bool
}

// CatalogEntry is the fixed part of a store item.
type CatalogEntry struct {
	ColorName string
	ColorCode Color
	Price     int
}

// catalog is the fixed, ordered list of store items.
var catalog = []CatalogEntry{
	{ColorName: "Red", ColorCode: ColorRed, Price: 50},
	{ColorName: "Green", ColorCode: ColorGreen, Price: 50},
	{ColorName: "Blue", ColorCode: ColorBlue, Price: 80},
	{ColorName: "Purple", ColorCode: ColorPurple, Price: 120},
	{ColorName: "Gold", ColorCode: ColorGold, Price: 200},
}

// Catalog returns a copy of the fixed catalog in display order.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog)
	return out
}

// LookupCatalog finds a catalog entry by color name.
func LookupCatalog(name string) (CatalogEntry, bool) {
	for _, e := range catalog {
		if e.ColorName == name {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// BuildStoreItems merges persisted purchase state into the catalog.
// The selected name is honoured only if it names a catalog item.
func BuildStoreItems(purchased []string, selected string) []StoreItem {
	owned := make(map[string]struct{}, len(purchased))
	for _, name := range purchased {
		owned[name] = struct{}{}
	}

	items := make([]StoreItem, 0, len(catalog))
	for _, e := range catalog {
		_, ok := owned[e.ColorName]
		items = append(items, StoreItem{
			ColorName: e.ColorName,
			ColorCode: e.ColorCode,
			Price:     e.Price,
			Purchased: ok,
			Selected:  selected != "" && selected == e.ColorName,
		})
	}
	return items
}

// PurchasedNames returns the names of purchased items in catalog order.
func PurchasedNames(items []StoreItem) []string {
	var names []string
	for _, it := range items {
		if it.Purchased {
			names = append(names, it.ColorName)
		}
	}
	return names
}

// SelectedItem returns the selected item, or nil if none is selected.
func SelectedItem(items []StoreItem) *StoreItem {
	for i := range items {
		if items[i].Selected {
			return &items[i]
		}
	}
	return nil
}

// ThemeColor returns the color of the selected item, or DefaultThemeColor.
func ThemeColor(items []StoreItem) Color {
	if it := SelectedItem(items); it != nil {
		return it.ColorCode
	}
	return DefaultThemeColor
}

// ItemState is the lifecycle state of a store item.
type ItemState int

const (
	ItemUnpurchased ItemState = iota
	ItemPurchased
	ItemSelected
)

// String returns the display label for the state.
func (s ItemState) String() string {
	switch s {
	case ItemUnpurchased:
		return "purchase"
	case ItemPurchased:
		return "select"
	case ItemSelected:
		return "selected"
	}
	return "unknown"
}

// State returns the item's lifecycle state.
func (it StoreItem) State() ItemState {
	switch {
	case it.Selected:
		return ItemSelected
	case it.Purchased:
		return ItemPurchased
	default:
		return ItemUnpurchased
	}
}
