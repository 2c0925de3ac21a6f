package countries

// Option is a single country entry from the built-in dataset.
type Option struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Continent string `json:"continent"`
}

// Continent display order used when grouping options.
var continentOrder = []string{
	"Africa",
	"Americas",
	"Asia",
	"Europe",
	"Oceania",
}

// defaultCountries is a trimmed ISO 3166-1 alpha-2 dataset. Hosts needing
// the full registry can supply their own list via WithCountries.
var defaultCountries = []Option{
	{Value: "AR", Label: "Argentina", Continent: "Americas"},
	{Value: "AU", Label: "Australia", Continent: "Oceania"},
	{Value: "BR", Label: "Brazil", Continent: "Americas"},
	{Value: "CA", Label: "Canada", Continent: "Americas"},
	{Value: "CN", Label: "China", Continent: "Asia"},
	{Value: "DE", Label: "Germany", Continent: "Europe"},
	{Value: "EG", Label: "Egypt", Continent: "Africa"},
	{Value: "ES", Label: "Spain", Continent: "Europe"},
	{Value: "FR", Label: "France", Continent: "Europe"},
	{Value: "GB", Label: "United Kingdom", Continent: "Europe"},
	{Value: "GH", Label: "Ghana", Continent: "Africa"},
	{Value: "IN", Label: "India", Continent: "Asia"},
	{Value: "IT", Label: "Italy", Continent: "Europe"},
	{Value: "JP", Label: "Japan", Continent: "Asia"},
	{Value: "KE", Label: "Kenya", Continent: "Africa"},
	{Value: "KR", Label: "South Korea", Continent: "Asia"},
	{Value: "MX", Label: "Mexico", Continent: "Americas"},
	{Value: "NG", Label: "Nigeria", Continent: "Africa"},
	{Value: "NL", Label: "Netherlands", Continent: "Europe"},
	{Value: "NZ", Label: "New Zealand", Continent: "Oceania"},
	{Value: "PL", Label: "Poland", Continent: "Europe"},
	{Value: "PT", Label: "Portugal", Continent: "Europe"},
	{Value: "SE", Label: "Sweden", Continent: "Europe"},
	{Value: "SG", Label: "Singapore", Continent: "Asia"},
	{Value: "US", Label: "United States", Continent: "Americas"},
	{Value: "ZA", Label: "South Africa", Continent: "Africa"},
}

// DefaultCountries returns a copy of the built-in dataset.
func DefaultCountries() []Option {
	return append([]Option{}, defaultCountries...)
}
