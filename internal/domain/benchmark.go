package domain

// Benchmark is an industry conversion-rate reference band, expressed in
// percent (2.5 means 2.5%).
type Benchmark struct {
	Industry string  `json:"industry"`
	MinPct   float64 `json:"min_pct"`
	MaxPct   float64 `json:"max_pct"`
}

// ConversionBenchmarks is the fixed industry reference table shown alongside
// the base conversion rate input.
var ConversionBenchmarks = []Benchmark{
	{Industry: "Financial Services", MinPct: 2.5, MaxPct: 5.5},
	{Industry: "Consumer Banking", MinPct: 2.9, MaxPct: 6.1},
	{Industry: "Credit Cards", MinPct: 1.8, MaxPct: 4.7},
	{Industry: "Personal Loans", MinPct: 2.2, MaxPct: 5.9},
	{Industry: "Investment Products", MinPct: 1.5, MaxPct: 3.8},
	{Industry: "Insurance", MinPct: 2.4, MaxPct: 4.9},
}
