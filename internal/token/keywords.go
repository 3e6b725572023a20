package token

var keywords = map[string]Kind{
	"fn":     KwFn,
	"struct": KwStruct,
	"union":  KwUnion,
	"enum":   KwEnum,
	"mod":    KwMod,
	"const":  KwConst,
	"static": KwStatic,
	"trait":  KwTrait,
	"impl":   KwImpl,
	"pub":    KwPub,
}

// LookupKeyword returns the keyword kind for ident, if any. Keywords are
// case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
