package token

import "strconv"

var kindNames = [...]string{
	Invalid:                  "Invalid",
	Blank:                    "Blank",
	InlineHTML:               "InlineHTML",
	OpenTag:                  "OpenTag",
	OpenTagWithEcho:          "OpenTagWithEcho",
	CloseTag:                 "CloseTag",
	Whitespace:               "Whitespace",
	Comment:                  "Comment",
	DocComment:               "DocComment",
	Variable:                 "Variable",
	String:                   "String",
	ConstantString:           "ConstantString",
	InterpolatedString:       "InterpolatedString",
	Heredoc:                  "Heredoc",
	LNumber:                  "LNumber",
	DNumber:                  "DNumber",
	KwAbstract:               "KwAbstract",
	KwAnd:                    "KwAnd",
	KwArray:                  "KwArray",
	KwAs:                     "KwAs",
	KwBreak:                  "KwBreak",
	KwCallable:               "KwCallable",
	KwCase:                   "KwCase",
	KwCatch:                  "KwCatch",
	KwClass:                  "KwClass",
	KwClone:                  "KwClone",
	KwConst:                  "KwConst",
	KwContinue:               "KwContinue",
	KwDeclare:                "KwDeclare",
	KwDefault:                "KwDefault",
	KwDo:                     "KwDo",
	KwEcho:                   "KwEcho",
	KwElse:                   "KwElse",
	KwElseIf:                 "KwElseIf",
	KwEmpty:                  "KwEmpty",
	KwExit:                   "KwExit",
	KwExtends:                "KwExtends",
	KwFinal:                  "KwFinal",
	KwFinally:                "KwFinally",
	KwFn:                     "KwFn",
	KwFor:                    "KwFor",
	KwForeach:                "KwForeach",
	KwFunction:               "KwFunction",
	KwGlobal:                 "KwGlobal",
	KwGoto:                   "KwGoto",
	KwIf:                     "KwIf",
	KwImplements:             "KwImplements",
	KwInclude:                "KwInclude",
	KwIncludeOnce:            "KwIncludeOnce",
	KwInstanceof:             "KwInstanceof",
	KwInsteadof:              "KwInsteadof",
	KwInterface:              "KwInterface",
	KwIsset:                  "KwIsset",
	KwList:                   "KwList",
	KwMatch:                  "KwMatch",
	KwNamespace:              "KwNamespace",
	KwNew:                    "KwNew",
	KwOr:                     "KwOr",
	KwPrint:                  "KwPrint",
	KwPrivate:                "KwPrivate",
	KwProtected:              "KwProtected",
	KwPublic:                 "KwPublic",
	KwReadonly:               "KwReadonly",
	KwRequire:                "KwRequire",
	KwRequireOnce:            "KwRequireOnce",
	KwReturn:                 "KwReturn",
	KwStatic:                 "KwStatic",
	KwSwitch:                 "KwSwitch",
	KwThrow:                  "KwThrow",
	KwTrait:                  "KwTrait",
	KwTry:                    "KwTry",
	KwUnset:                  "KwUnset",
	KwUse:                    "KwUse",
	KwVar:                    "KwVar",
	KwWhile:                  "KwWhile",
	KwXor:                    "KwXor",
	KwYield:                  "KwYield",
	IntCast:                  "IntCast",
	BoolCast:                 "BoolCast",
	DoubleCast:               "DoubleCast",
	StringCast:               "StringCast",
	ArrayCast:                "ArrayCast",
	ObjectCast:               "ObjectCast",
	UnsetCast:                "UnsetCast",
	ObjectOperator:           "ObjectOperator",
	NullsafeObjectOperator:   "NullsafeObjectOperator",
	DoubleColon:              "DoubleColon",
	DoubleArrow:              "DoubleArrow",
	Inc:                      "Inc",
	Dec:                      "Dec",
	IsEqual:                  "IsEqual",
	IsIdentical:              "IsIdentical",
	IsNotEqual:               "IsNotEqual",
	IsNotIdentical:           "IsNotIdentical",
	IsSmallerOrEqual:         "IsSmallerOrEqual",
	IsGreaterOrEqual:         "IsGreaterOrEqual",
	Spaceship:                "Spaceship",
	BooleanAnd:               "BooleanAnd",
	BooleanOr:                "BooleanOr",
	PlusEqual:                "PlusEqual",
	MinusEqual:               "MinusEqual",
	MulEqual:                 "MulEqual",
	DivEqual:                 "DivEqual",
	ConcatEqual:              "ConcatEqual",
	ModEqual:                 "ModEqual",
	AndEqual:                 "AndEqual",
	OrEqual:                  "OrEqual",
	XorEqual:                 "XorEqual",
	SlEqual:                  "SlEqual",
	SrEqual:                  "SrEqual",
	PowEqual:                 "PowEqual",
	CoalesceEqual:            "CoalesceEqual",
	Pow:                      "Pow",
	Sl:                       "Sl",
	Sr:                       "Sr",
	Coalesce:                 "Coalesce",
	Ellipsis:                 "Ellipsis",
	NsSeparator:              "NsSeparator",
	Attribute:                "Attribute",
	LParen:                   "LParen",
	RParen:                   "RParen",
	LBrace:                   "LBrace",
	RBrace:                   "RBrace",
	LBracket:                 "LBracket",
	RBracket:                 "RBracket",
	Semicolon:                "Semicolon",
	Comma:                    "Comma",
	Dot:                      "Dot",
	Equals:                   "Equals",
	Plus:                     "Plus",
	Minus:                    "Minus",
	Star:                     "Star",
	Slash:                    "Slash",
	Percent:                  "Percent",
	Amp:                      "Amp",
	Pipe:                     "Pipe",
	Caret:                    "Caret",
	Tilde:                    "Tilde",
	Bang:                     "Bang",
	Question:                 "Question",
	Colon:                    "Colon",
	Lt:                       "Lt",
	Gt:                       "Gt",
	At:                       "At",
	Dollar:                   "Dollar",
	Backtick:                 "Backtick",
	ArrayIndexCurlyOpen:      "ArrayIndexCurlyOpen",
	ArrayIndexCurlyClose:     "ArrayIndexCurlyClose",
	ArraySquareOpen:          "ArraySquareOpen",
	ArraySquareClose:         "ArraySquareClose",
	DestructuringSquareOpen:  "DestructuringSquareOpen",
	DestructuringSquareClose: "DestructuringSquareClose",
	ClassConstant:            "ClassConstant",
	UseLambda:                "UseLambda",
	UseTrait:                 "UseTrait",
	ArrayTypehint:            "ArrayTypehint",
	NullableType:             "NullableType",
	AttributeClose:           "AttributeClose",
}

// String returns the kind name, e.g. "ArraySquareOpen".
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
