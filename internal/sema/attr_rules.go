package sema

// attrRule selects the handler for a recognized attribute name. Unrecognized
// names map to attrRuleIgnore: unknown attributes are reserved for later
// phases and future language versions, never an error here.
type attrRule uint8

const (
	attrRuleIgnore attrRule = iota
	attrRuleInline
	attrRuleRepr
)

var attrRules = map[string]attrRule{
	"inline": attrRuleInline,
	"repr":   attrRuleRepr,
}

// lookupAttrRule resolves an attribute name (case-sensitive) to its rule.
func lookupAttrRule(name string) attrRule {
	return attrRules[name]
}

// reprClass tags repr words that feed the conflict tally. Words outside
// these classes (packed, align) modify layout without competing with other
// hints.
type reprClass uint8

const (
	reprClassNone reprClass = iota
	reprClassC
	reprClassSimd
	reprClassInt
)

// reprWordSpec describes one recognized repr word: where it may be applied
// and how to phrase the rejection.
type reprWordSpec struct {
	targets targetMask
	message string
	label   string
	class   reprClass
}

var reprWords = map[string]reprWordSpec{
	"C": {
		targets: maskStruct | maskUnion | maskEnum,
		message: "attribute should be applied to struct, enum or union",
		label:   "a struct, enum or union",
		class:   reprClassC,
	},
	"packed": {
		targets: maskStruct | maskUnion,
		message: "attribute should be applied to struct or union",
		label:   "a struct or union",
	},
	"simd": {
		targets: maskStruct,
		message: "attribute should be applied to struct",
		label:   "a struct",
		class:   reprClassSimd,
	},
	"align": {
		targets: maskStruct | maskUnion,
		message: "attribute should be applied to struct or union",
		label:   "a struct or union",
	},
}

func init() {
	// Integer-width hints share one spec and only make sense on enums.
	ints := reprWordSpec{
		targets: maskEnum,
		message: "attribute should be applied to enum",
		label:   "an enum",
		class:   reprClassInt,
	}
	for _, w := range []string{"i8", "u8", "i16", "u16", "i32", "u32", "i64", "u64", "isize", "usize"} {
		reprWords[w] = ints
	}
}
