package service

// CatalogEntry maps a basket item to its BLS Average Price series on FRED.
type CatalogEntry struct {
	Item     string
	Unit     string
	SeriesID string
}

// DefaultCatalog returns the fixed basket. Declaration order is significant:
// it drives CSV row order, chart bar order and top-mover tie breaking.
func DefaultCatalog() []CatalogEntry {
	return []CatalogEntry{
		// Food at home
		{Item: "Bread (white, pan)", Unit: "lb", SeriesID: "APU0000702111"},
		{Item: "Chicken breast, boneless", Unit: "lb", SeriesID: "APU0000FF1101"},
		{Item: "Rice, white, long-grain", Unit: "lb", SeriesID: "APU0000701312"},
		{Item: "Coffee, ground", Unit: "lb", SeriesID: "APU0000717311"},
		{Item: "Potatoes", Unit: "5 lb", SeriesID: "APU0000712112"},
		{Item: "Bananas", Unit: "lb", SeriesID: "APU0000711211"},
		{Item: "Peanut butter", Unit: "16 oz", SeriesID: "APU0000716141"},
		{Item: "Eggs, large", Unit: "dozen", SeriesID: "APU0000708111"},
		{Item: "Milk (whole)", Unit: "gallon", SeriesID: "APU0000709111"},
		{Item: "Ground beef (100% beef)", Unit: "lb", SeriesID: "APU0000703112"},
		// Utilities / Energy
		{Item: "Electricity (residential)", Unit: "cents/kWh", SeriesID: "APU000072610"},
		{Item: "Natural gas (residential), per therm", Unit: "$/therm", SeriesID: "APU000072620"},
		{Item: "Gasoline, regular", Unit: "gallon", SeriesID: "APU000074714"},
	}
}
