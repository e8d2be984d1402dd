// Package lexicon holds the fixed bilingual (English/Romanian) keyword
// tables the engines match against. The tables are package-level constants
// in spirit: they are built once at init and must never be mutated, so new
// languages or keywords land here and nowhere else.
package lexicon

import "regexp"

// SupportKeywords flag technical complaints and support requests.
var SupportKeywords = []string{
	"broken", "defect", "not working", "doesn't work", "problem", "issue",
	"fault", "damaged", "malfunction", "error", "failed", "stopped working",
	"help", "support", "warranty", "refund", "return", "exchange",
	"stricat", "nu functioneaza", "nu merge", "problema",
	"deteriorat", "eroare", "garantie", "returnare",
}

// Colors is the color-name list used for contradiction detection between a
// review and the product description.
var Colors = []string{
	"red", "blue", "green", "black", "white", "yellow", "pink", "purple",
	"rosu", "albastru", "verde", "negru", "alb",
}

// GenericPatterns match canned affirmations that mark a 5-star review as
// low-effort. Anchored, trailing exclamation marks allowed.
var GenericPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^great\s*product\s*!*$`),
	regexp.MustCompile(`^excellent\s*!*$`),
	regexp.MustCompile(`^good\s*!*$`),
	regexp.MustCompile(`^amazing\s*!*$`),
	regexp.MustCompile(`^awesome\s*!*$`),
	regexp.MustCompile(`^love\s*it\s*!*$`),
	regexp.MustCompile(`^perfect\s*!*$`),
	regexp.MustCompile(`^produs\s*bun\s*!*$`),
	regexp.MustCompile(`^excelent\s*!*$`),
}

// PositiveIndicators and NegativeIndicators pick polarity-appropriate
// sentences during insight extraction.
var PositiveIndicators = []string{
	"quality", "excellent", "great", "perfect", "love", "amazing", "recommend",
	"fantastic", "wonderful", "best", "awesome", "superb", "brilliant",
	"calitate", "excelent", "recomandat", "minunat",
}

var NegativeIndicators = []string{
	"broken", "defect", "poor", "bad", "terrible", "worst", "disappointed",
	"problem", "issue", "waste", "cheap", "useless", "failed", "horrible",
	"stricat", "prost", "problema", "dezamagit", "ieftin", "groaznic",
}

// FeatureBucket is one entry of the fixed 5-item tag vocabulary.
type FeatureBucket struct {
	Name     string
	Keywords []string
}

// FeatureBuckets is ordered; tag extraction and theme ranking both iterate
// it in this order so truncated outputs stay deterministic.
var FeatureBuckets = []FeatureBucket{
	{Name: "quality", Keywords: []string{
		"quality", "premium", "excellent", "great", "perfect", "material",
		"sturdy", "solid", "calitate", "excelent",
	}},
	{Name: "price", Keywords: []string{
		"price", "expensive", "cheap", "value", "worth", "affordable",
		"pret", "scump", "ieftin", "valoare",
	}},
	{Name: "performance", Keywords: []string{
		"performance", "works", "working", "fast", "slow", "speed",
		"efficient", "functioneaza", "performanta",
	}},
	{Name: "design", Keywords: []string{
		"design", "look", "appearance", "style", "beautiful", "ugly",
		"aesthetic", "aspect", "frumos",
	}},
	{Name: "durability", Keywords: []string{
		"durable", "broke", "broken", "lasted", "resistant",
		"durabilitate", "rezistent",
	}},
}

// TagVocabulary returns the bucket names in evaluation order.
func TagVocabulary() []string {
	names := make([]string, 0, len(FeatureBuckets))
	for _, b := range FeatureBuckets {
		names = append(names, b.Name)
	}
	return names
}

// ComparativeTerms mark comparisons with other products.
var ComparativeTerms = []string{
	"better", "worse", "than", "versus", "vs",
	"mai bun", "mai rau", "comparativ",
}

// IntensifierPatterns match intensifier+adjective phrases ("very durable",
// "foarte rezistent") used by the specificity bonus.
var IntensifierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(very|extremely|really|quite)\s+\w+`),
	regexp.MustCompile(`(?i)\b(foarte|extrem de|chiar)\s+\w+`),
}

// FeatureTerms is the concrete product terminology counted by the
// specificity bonus, distinct from the tag buckets above.
var FeatureTerms = []string{
	"battery", "screen", "material", "size", "weight", "button", "cable",
	"charge", "camera", "sound", "baterie", "ecran", "marime", "greutate",
	"buton", "cablu", "sunet",
}

// RomanianDiacritics and RomanianWords drive the advisory language
// heuristic. Neither is authoritative.
var RomanianDiacritics = []rune{'ă', 'â', 'î', 'ș', 'ț', 'Ă', 'Â', 'Î', 'Ș', 'Ț'}

var RomanianWords = []string{"produs", "foarte", "calitate", "bun", "excelent", "recomand"}
