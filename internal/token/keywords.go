package token

var keywords = map[string]Kind{
	"abstract":     KwAbstract,
	"and":          KwAnd,
	"array":        KwArray,
	"as":           KwAs,
	"break":        KwBreak,
	"callable":     KwCallable,
	"case":         KwCase,
	"catch":        KwCatch,
	"class":        KwClass,
	"clone":        KwClone,
	"const":        KwConst,
	"continue":     KwContinue,
	"declare":      KwDeclare,
	"default":      KwDefault,
	"die":          KwExit,
	"do":           KwDo,
	"echo":         KwEcho,
	"else":         KwElse,
	"elseif":       KwElseIf,
	"empty":        KwEmpty,
	"exit":         KwExit,
	"extends":      KwExtends,
	"final":        KwFinal,
	"finally":      KwFinally,
	"fn":           KwFn,
	"for":          KwFor,
	"foreach":      KwForeach,
	"function":     KwFunction,
	"global":       KwGlobal,
	"goto":         KwGoto,
	"if":           KwIf,
	"implements":   KwImplements,
	"include":      KwInclude,
	"include_once": KwIncludeOnce,
	"instanceof":   KwInstanceof,
	"insteadof":    KwInsteadof,
	"interface":    KwInterface,
	"isset":        KwIsset,
	"list":         KwList,
	"match":        KwMatch,
	"namespace":    KwNamespace,
	"new":          KwNew,
	"or":           KwOr,
	"print":        KwPrint,
	"private":      KwPrivate,
	"protected":    KwProtected,
	"public":       KwPublic,
	"readonly":     KwReadonly,
	"require":      KwRequire,
	"require_once": KwRequireOnce,
	"return":       KwReturn,
	"static":       KwStatic,
	"switch":       KwSwitch,
	"throw":        KwThrow,
	"trait":        KwTrait,
	"try":          KwTry,
	"unset":        KwUnset,
	"use":          KwUse,
	"var":          KwVar,
	"while":        KwWhile,
	"xor":          KwXor,
	"yield":        KwYield,
}

var castTypes = map[string]Kind{
	"int":     IntCast,
	"integer": IntCast,
	"bool":    BoolCast,
	"boolean": BoolCast,
	"float":   DoubleCast,
	"double":  DoubleCast,
	"real":    DoubleCast,
	"string":  StringCast,
	"binary":  StringCast,
	"array":   ArrayCast,
	"object":  ObjectCast,
	"unset":   UnsetCast,
}

// LookupKeyword returns the keyword kind for an already case-folded identifier.
// PHP keywords are case-insensitive; callers fold before the lookup.
func LookupKeyword(folded string) (Kind, bool) {
	k, ok := keywords[folded]
	return k, ok
}

// LookupCast returns the cast kind for a case-folded type name written between parentheses.
func LookupCast(folded string) (Kind, bool) {
	k, ok := castTypes[folded]
	return k, ok
}

// CastKinds returns the set of all cast kinds.
func CastKinds() KindSet {
	return NewKindSet(IntCast, BoolCast, DoubleCast, StringCast, ArrayCast, ObjectCast, UnsetCast)
}

// KeywordKinds returns the set of all keyword kinds.
func KeywordKinds() KindSet {
	var set KindSet
	for k := KwAbstract; k <= KwYield; k++ {
		set = set.With(k)
	}
	return set
}
