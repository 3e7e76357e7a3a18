package pricing

// DisplacementCode is the pseudo-service holding the fixed travel fee.
// It is billed as its own breakdown line and is never surcharged.
const DisplacementCode = "deplacement"

// DefaultSurcharges matches the percentages advertised on the pricing page.
var DefaultSurcharges = SurchargePolicy{
	NightPct:   50, // 20h-8h
	WeekendPct: 30,
	UrgentPct:  25,
	HolidayPct: 75,
}

// defaultEntries is the built-in pricebook used when no database-backed
// catalog is configured (and as the fallback for the seed data).
var defaultEntries = map[string]CatalogEntry{
	"ouverture-simple":   {Code: "ouverture-simple", BasePriceCents: 8900, Duration: DurationRange{Min: 30, Max: 60}},
	"ouverture-blindee":  {Code: "ouverture-blindee", BasePriceCents: 14900, Duration: DurationRange{Min: 45, Max: 90}},
	"cylindre-standard":  {Code: "cylindre-standard", BasePriceCents: 12900, Duration: DurationRange{Min: 45, Max: 90}},
	"cylindre-securise":  {Code: "cylindre-securise", BasePriceCents: 18900, Duration: DurationRange{Min: 60, Max: 120}},
	"cylindre-a2p":       {Code: "cylindre-a2p", BasePriceCents: 24900},
	"multipoints-3pts":   {Code: "multipoints-3pts", BasePriceCents: 29900, Duration: DurationRange{Min: 90, Max: 150}},
	"multipoints-5pts":   {Code: "multipoints-5pts", BasePriceCents: 39900, Duration: DurationRange{Min: 120, Max: 180}},
	"securisation":       {Code: "securisation", BasePriceCents: 14900, Duration: DurationRange{Min: 60, Max: 120}},
	"blindage":           {Code: "blindage", BasePriceCents: 89900, Duration: DurationRange{Min: 180, Max: 240}},
	"coffre-fort":        {Code: "coffre-fort", BasePriceCents: 19900, Duration: DurationRange{Min: 60, Max: 180}},
	"double-standard":    {Code: "double-standard", BasePriceCents: 1500, Duration: DurationRange{Min: 15, Max: 30}},
	"double-securise":    {Code: "double-securise", BasePriceCents: 4500},
	"volet":              {Code: "volet", BasePriceCents: 9900, Duration: DurationRange{Min: 45, Max: 90}},
	DisplacementCode:     {Code: DisplacementCode, BasePriceCents: 3900},
}

// StaticCatalog serves the built-in pricebook. It is immutable after
// construction and safe for concurrent use.
type StaticCatalog struct {
	entries    map[string]CatalogEntry
	surcharges SurchargePolicy
}

// NewStaticCatalog returns the default built-in catalog.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{entries: defaultEntries, surcharges: DefaultSurcharges}
}

// Entry resolves a service code against the built-in table.
func (c *StaticCatalog) Entry(code string) (CatalogEntry, bool) {
	entry, ok := c.entries[code]
	return entry, ok
}

// Surcharges returns the built-in surcharge policy.
func (c *StaticCatalog) Surcharges() SurchargePolicy {
	return c.surcharges
}

// DefaultEntries returns a copy of the built-in pricebook, used to seed the
// database-backed catalog.
func DefaultEntries() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(defaultEntries))
	for _, entry := range defaultEntries {
		entries = append(entries, entry)
	}
	return entries
}

// Compile-time check that StaticCatalog implements CatalogProvider.
var _ CatalogProvider = (*StaticCatalog)(nil)

// serviceSlugCodes maps public service-page slugs to the catalog codes
// they cover, for displayed "from X to Y" price ranges.
var serviceSlugCodes = map[string][]string{
	"ouverture-de-porte":           {"ouverture-simple", "ouverture-blindee"},
	"changement-de-cylindre":       {"cylindre-standard", "cylindre-a2p"},
	"serrure-multipoints":          {"multipoints-3pts", "multipoints-5pts"},
	"securisation-apres-effraction": {"securisation"},
	"blindage-de-porte":            {"blindage"},
	"coffre-fort":                  {"coffre-fort"},
	"double-de-cles":               {"double-standard", "double-securise"},
	"depannage-volet-roulant":      {"volet"},
}

// PriceRangeForSlug returns the lowest and highest base price among the
// catalog codes behind a service-page slug. Unknown slugs yield {0, 0}.
func PriceRangeForSlug(catalog CatalogProvider, slug string) (fromCents, toCents int64) {
	for _, code := range serviceSlugCodes[slug] {
		entry, ok := catalog.Entry(code)
		if !ok || entry.BasePriceCents <= 0 {
			continue
		}
		if fromCents == 0 || entry.BasePriceCents < fromCents {
			fromCents = entry.BasePriceCents
		}
		if entry.BasePriceCents > toCents {
			toCents = entry.BasePriceCents
		}
	}
	return fromCents, toCents
}
