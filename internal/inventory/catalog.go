package inventory

// Catalog prices for common parts, in the smallest currency unit. Used only
// as a fallback when a job has no outbound records and its parts field does
// not embed prices. Missing names price at zero at the consumption site.
var catalog = map[string]int64{
	"도어록":     45000,
	"디지털도어록":  120000,
	"손잡이":     15000,
	"경첩":      8000,
	"실린더":     35000,
	"보조키":     25000,
	"현관정리":    10000,
	"방충망":     30000,
	"유리":      50000,
	"샤시롤러":    12000,
	"door_lock":   45000,
	"handle":      15000,
	"hinge":       8000,
	"cylinder":    35000,
	"screen_mesh": 30000,
}

// BuildPriceMap returns a fresh copy of the static part-name -> unit-price
// catalog. Pure, no I/O; callers may mutate their copy freely.
func BuildPriceMap() map[string]int64 {
	prices := make(map[string]int64, len(catalog))
	for name, price := range catalog {
		prices[name] = price
	}
	return prices
}
