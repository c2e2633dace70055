package service

// Amount is a yearly mean price that may be absent when the source had no
// usable observations for that year. Absence is explicit; floating NaN is
// never used as a sentinel.
type Amount struct {
	Value float64
	Valid bool
}

// ComparisonRow pairs one basket item's yearly mean prices for the two
// requested years.
type ComparisonRow struct {
	Item    string
	Unit    string
	Base    Amount
	Compare Amount
	Source  string
}

// Usable reports whether the row can enter a ratio: both values present and
// strictly positive.
func (r ComparisonRow) Usable() bool {
	return r.Base.Valid && r.Compare.Valid && r.Base.Value > 0 && r.Compare.Value > 0
}

// Relative is the price relative compare/base. Only meaningful for usable rows.
func (r ComparisonRow) Relative() float64 {
	return r.Compare.Value / r.Base.Value
}

// Summary holds the unweighted basket statistics.
type Summary struct {
	ItemsUsed  int
	ItemsTotal int
	Arithmetic float64
	Geometric  float64
}

// WeightedIndex is the category-weighted "necessities" result together with
// the normalized category weights actually applied.
type WeightedIndex struct {
	PctChange float64
	Weights   map[string]float64
}

// Mover is one entry in the top increases/decreases lists.
type Mover struct {
	Item      string
	PctChange float64
}
