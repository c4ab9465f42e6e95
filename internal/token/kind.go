package token

// Kind represents the category of a source token.
type Kind uint16

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Blank is the placeholder kind of a cleared token slot.
	Blank

	// InlineHTML is text outside of <?php ... ?>.
	InlineHTML
	// OpenTag represents '<?php'.
	OpenTag // <?php
	// OpenTagWithEcho represents '<?='.
	OpenTagWithEcho // <?=
	// CloseTag represents '?>'.
	CloseTag // ?>
	// Whitespace is a run of spaces, tabs and newlines.
	Whitespace
	// Comment represents a line or block comment.
	Comment // // ..., # ..., /* ... */
	// DocComment represents a '/** ... */' comment.
	DocComment

	// Variable represents '$name'.
	Variable
	// String is a bare identifier (T_STRING).
	String
	// ConstantString is a quoted string without interpolation.
	ConstantString // 'x' or "x"
	// InterpolatedString is a double-quoted string with variables.
	InterpolatedString // "x $y"
	// Heredoc covers heredoc and nowdoc literals.
	Heredoc // <<<EOT ... EOT, <<<'EOT' ... EOT
	// LNumber is an integer literal.
	LNumber
	// DNumber is a float literal.
	DNumber

	// Keywords.

	// KwAbstract represents the 'abstract' keyword.
	KwAbstract // abstract
	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwArray represents the 'array' keyword.
	KwArray // array
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwCallable represents the 'callable' keyword.
	KwCallable // callable
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwClone represents the 'clone' keyword.
	KwClone // clone
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDeclare represents the 'declare' keyword.
	KwDeclare // declare
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwEcho represents the 'echo' keyword.
	KwEcho // echo
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwElseIf represents the 'elseif' keyword.
	KwElseIf // elseif
	// KwEmpty represents the 'empty' keyword.
	KwEmpty // empty
	// KwExit represents the 'exit' keyword (also 'die').
	KwExit // exit
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwFinal represents the 'final' keyword.
	KwFinal // final
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwForeach represents the 'foreach' keyword.
	KwForeach // foreach
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwGlobal represents the 'global' keyword.
	KwGlobal // global
	// KwGoto represents the 'goto' keyword.
	KwGoto // goto
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImplements represents the 'implements' keyword.
	KwImplements // implements
	// KwInclude represents the 'include' keyword.
	KwInclude // include
	// KwIncludeOnce represents the 'include_once' keyword.
	KwIncludeOnce // include_once
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwInsteadof represents the 'insteadof' keyword.
	KwInsteadof // insteadof
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwIsset represents the 'isset' keyword.
	KwIsset // isset
	// KwList represents the 'list' keyword.
	KwList // list
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwNamespace represents the 'namespace' keyword.
	KwNamespace // namespace
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwPrint represents the 'print' keyword.
	KwPrint // print
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwProtected represents the 'protected' keyword.
	KwProtected // protected
	// KwPublic represents the 'public' keyword.
	KwPublic // public
	// KwReadonly represents the 'readonly' keyword.
	KwReadonly // readonly
	// KwRequire represents the 'require' keyword.
	KwRequire // require
	// KwRequireOnce represents the 'require_once' keyword.
	KwRequireOnce // require_once
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwUnset represents the 'unset' keyword.
	KwUnset // unset
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwXor represents the 'xor' keyword.
	KwXor // xor
	// KwYield represents the 'yield' keyword.
	KwYield // yield

	// Casts.

	// IntCast represents the (int) cast.
	IntCast // (int) (integer)
	// BoolCast represents the (bool) cast.
	BoolCast // (bool) (boolean)
	// DoubleCast represents the (float) cast.
	DoubleCast // (float) (double) (real)
	// StringCast represents the (string) cast.
	StringCast // (string) (binary)
	// ArrayCast represents the (array) cast.
	ArrayCast // (array)
	// ObjectCast represents the (object) cast.
	ObjectCast // (object)
	// UnsetCast represents the (unset) cast.
	UnsetCast // (unset)

	// Multi-character operators.

	// ObjectOperator represents '->'.
	ObjectOperator // ->
	// NullsafeObjectOperator represents '?->'.
	NullsafeObjectOperator // ?->
	// DoubleColon represents '::'.
	DoubleColon // ::
	// DoubleArrow represents '=>'.
	DoubleArrow // =>
	// Inc represents '++'.
	Inc // ++
	// Dec represents '--'.
	Dec // --
	// IsEqual represents '=='.
	IsEqual // ==
	// IsIdentical represents '==='.
	IsIdentical // ===
	// IsNotEqual represents '!=' and '<>'.
	IsNotEqual // != <>
	// IsNotIdentical represents '!=='.
	IsNotIdentical // !==
	// IsSmallerOrEqual represents '<='.
	IsSmallerOrEqual // <=
	// IsGreaterOrEqual represents '>='.
	IsGreaterOrEqual // >=
	// Spaceship represents '<=>'.
	Spaceship // <=>
	// BooleanAnd represents '&&'.
	BooleanAnd // &&
	// BooleanOr represents '||'.
	BooleanOr // ||
	// PlusEqual represents '+='.
	PlusEqual // +=
	// MinusEqual represents '-='.
	MinusEqual // -=
	// MulEqual represents '*='.
	MulEqual // *=
	// DivEqual represents '/='.
	DivEqual // /=
	// ConcatEqual represents '.='.
	ConcatEqual // .=
	// ModEqual represents '%='.
	ModEqual // %=
	// AndEqual represents '&='.
	AndEqual // &=
	// OrEqual represents '|='.
	OrEqual // |=
	// XorEqual represents '^='.
	XorEqual // ^=
	// SlEqual represents '<<='.
	SlEqual // <<=
	// SrEqual represents '>>='.
	SrEqual // >>=
	// PowEqual represents '**='.
	PowEqual // **=
	// CoalesceEqual represents '??='.
	CoalesceEqual // ??=
	// Pow represents '**'.
	Pow // **
	// Sl represents '<<'.
	Sl // <<
	// Sr represents '>>'.
	Sr // >>
	// Coalesce represents '??'.
	Coalesce // ??
	// Ellipsis represents '...'.
	Ellipsis // ...
	// NsSeparator represents '\'.
	NsSeparator // \
	// Attribute represents '#['.
	Attribute // #[

	// Single-character punctuation.

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// Equals represents '='.
	Equals // =
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// Amp represents '&'.
	Amp // &
	// Pipe represents '|'.
	Pipe // |
	// Caret represents '^'.
	Caret // ^
	// Tilde represents '~'.
	Tilde // ~
	// Bang represents '!'.
	Bang // !
	// Question represents '?'.
	Question // ?
	// Colon represents ':'.
	Colon // :
	// Lt represents '<'.
	Lt // <
	// Gt represents '>'.
	Gt // >
	// At represents '@'.
	At // @
	// Dollar represents '$'.
	Dollar // $
	// Backtick represents '`'.
	Backtick // `

	// Composite kinds, assigned by transformers.

	compositeStart // sentinel, not a real kind
	// ArrayIndexCurlyOpen is '{' in $a{0}.
	ArrayIndexCurlyOpen
	// ArrayIndexCurlyClose is '}' in $a{0}.
	ArrayIndexCurlyClose
	// ArraySquareOpen is '[' of a short array literal.
	ArraySquareOpen
	// ArraySquareClose is ']' of a short array literal.
	ArraySquareClose
	// DestructuringSquareOpen is '[' of [$a, $b] = ...
	DestructuringSquareOpen
	// DestructuringSquareClose is ']' of [$a, $b] = ...
	DestructuringSquareClose
	// ClassConstant is 'class' in Foo::class.
	ClassConstant
	// UseLambda is 'use' in function () use ($x) {}.
	UseLambda
	// UseTrait is 'use' inside a class body.
	UseTrait
	// ArrayTypehint is 'array' used as a type.
	ArrayTypehint
	// NullableType is '?' in ?Foo.
	NullableType
	// AttributeClose is ']' closing #[ ... ].
	AttributeClose

	kindCount
)

// IsComposite reports whether k can only be produced by a transformer.
func (k Kind) IsComposite() bool {
	return k > compositeStart && k < kindCount
}

// IsKeyword reports whether k is a reserved word kind.
func (k Kind) IsKeyword() bool {
	return k >= KwAbstract && k <= KwYield
}

// IsCast reports whether k is a cast kind.
func (k Kind) IsCast() bool {
	return k >= IntCast && k <= UnsetCast
}
