package fixers_test

import (
	"errors"
	"testing"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/fixers"
)

func TestArraySyntaxShort(t *testing.T) {
	runCases(t, fixers.ArraySyntax(), []fixCase{
		{name: "empty", in: "<?php $x = array();", want: "<?php $x = [];"},
		{name: "nested", in: "<?php $x = array(array(array()));", want: "<?php $x = [[[]]];"},
		{name: "keyed", in: "<?php $x = array('a' => 1, 'b' => array(2));", want: "<?php $x = ['a' => 1, 'b' => [2]];"},
		{name: "space before paren", in: "<?php $x = array (1);", want: "<?php $x = [1];"},
		{name: "typehint kept", in: "<?php function(array $foo = array()) {};", want: "<?php function(array $foo = []) {};"},
		{name: "cast kept", in: "<?php $x = (array) $y;"},
		{name: "already short", in: "<?php $x = [1, [2]];"},
	})
}

func TestArraySyntaxLong(t *testing.T) {
	long := configure(t, fixers.ArraySyntax(), fixer.Options{"syntax": "long"})
	runCases(t, long, []fixCase{
		{name: "nested", in: "<?php $x = [1, [2, []]];", want: "<?php $x = array(1, array(2, array()));"},
		{name: "index kept", in: "<?php $x = $a[0];"},
		{name: "destructuring kept", in: "<?php [$a, $b] = $c;"},
	})
}

func TestArraySyntaxRejectsBadOption(t *testing.T) {
	_, err := fixers.ArraySyntax().Configure(fixer.Options{"syntax": "medium"})
	if !errors.Is(err, fixer.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestFunctionDeclaration(t *testing.T) {
	runCases(t, fixers.FunctionDeclaration(), []fixCase{
		{name: "brace", in: "<?php function foo(){}", want: "<?php function foo() {}"},
		{name: "many spaces", in: "<?php function   foo  ( $a, $b )   {}", want: "<?php function foo($a, $b) {}"},
		{name: "closure", in: "<?php $f = function( $x )use( $y ){};", want: "<?php $f = function ($x) use ($y) {};"},
		{name: "abstract", in: "<?php abstract class A { abstract function  foo( ); }", want: "<?php abstract class A { abstract function foo(); }"},
		{name: "brace on next line", in: "<?php function foo()\n{\n}"},
		{name: "by reference", in: "<?php function &foo() {}"},
		{name: "return type", in: "<?php function foo(): ?array{}", want: "<?php function foo(): ?array {}"},
	})
}

func TestShortScalarCast(t *testing.T) {
	runCases(t, fixers.ShortScalarCast(), []fixCase{
		{name: "boolean", in: "<?php (boolean)$x;", want: "<?php (bool)$x;"},
		{name: "integer padded", in: "<?php ( integer )$x;", want: "<?php ( int )$x;"},
		{name: "double and real", in: "<?php (double)$a; (REAL)$b;", want: "<?php (float)$a; (float)$b;"},
		{name: "short untouched", in: "<?php (int)$a; (string)$b; (binary)$c;"},
	})
}

func TestLowercaseCast(t *testing.T) {
	runCases(t, fixers.LowercaseCast(), []fixCase{
		{name: "upper", in: "<?php (BOOL)$a; ( Int )$b;", want: "<?php (bool)$a; ( int )$b;"},
		{name: "lower", in: "<?php (string)$a;"},
	})
}

func TestNormalizeIndexBrace(t *testing.T) {
	runCases(t, fixers.NormalizeIndexBrace(), []fixCase{
		{name: "simple", in: "<?php echo $a{0};", want: "<?php echo $a[0];"},
		{name: "chained", in: "<?php echo $a{$b{1}}{2};", want: "<?php echo $a[$b[1]][2];"},
		{name: "blocks kept", in: "<?php if ($a) { echo $a; }"},
	})
}

func TestLowercaseKeywords(t *testing.T) {
	runCases(t, fixers.LowercaseKeywords(), []fixCase{
		{name: "statements", in: "<?php FOREACH ($a AS $b) { ECHO $b; }", want: "<?php foreach ($a as $b) { echo $b; }"},
		{name: "class constant", in: "<?php echo Foo::CLASS;", want: "<?php echo Foo::class;"},
		{name: "identifiers kept", in: "<?php echo TRUE, Foo::BAR, $o->LIST;"},
	})
}

func TestNoTrailingWhitespace(t *testing.T) {
	runCases(t, fixers.NoTrailingWhitespace(), []fixCase{
		{name: "lines", in: "<?php\n$a = 1;  \n$b = 2;\t\n", want: "<?php\n$a = 1;\n$b = 2;\n"},
		{name: "comment", in: "<?php // note   \n$a;", want: "<?php // note\n$a;"},
		{name: "open tag", in: "<?php  \n$a;", want: "<?php\n$a;"},
		{name: "end of file", in: "<?php $a;   ", want: "<?php $a;"},
		{name: "inner spaces kept", in: "<?php $a  =  1;\n"},
		{name: "heredoc kept", in: "<?php $a = <<<EOT\nx   \nEOT;\n"},
	})
}

func TestSingleBlankLineAtEOF(t *testing.T) {
	runCases(t, fixers.SingleBlankLineAtEOF(), []fixCase{
		{name: "missing", in: "<?php\n$a = 1;", want: "<?php\n$a = 1;\n"},
		{name: "too many", in: "<?php\n$a = 1;\n\n\n", want: "<?php\n$a = 1;\n"},
		{name: "line comment", in: "<?php\n// end", want: "<?php\n// end\n"},
		{name: "close tag", in: "<?php $a; ?>"},
		{name: "inline html", in: "<?php $a; ?>\n<p>"},
		{name: "crlf", in: "<?php\r\n$a;\r\n\r\n", want: "<?php\r\n$a;\n"},
	})
}

func TestNoAliasFunctions(t *testing.T) {
	f := fixers.NoAliasFunctions()
	if !f.Risky {
		t.Fatal("no_alias_functions must be risky")
	}
	runCases(t, f, []fixCase{
		{name: "calls", in: "<?php $a = SizeOf($b) + \\sizeof($c); join(',', $d);", want: "<?php $a = count($b) + \\count($c); implode(',', $d);"},
		{name: "methods kept", in: "<?php $o->sizeof($a); A::join($b); new pos(); function chop() {}"},
		{name: "namespaced kept", in: "<?php Foo\\sizeof($a);"},
		{name: "constants kept", in: "<?php echo sizeof;"},
	})
}

func TestBuiltinRegisters(t *testing.T) {
	r, err := fixers.NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != len(fixers.Builtin()) {
		t.Fatalf("expected %d fixers, got %d", len(fixers.Builtin()), r.Len())
	}
	groups := r.Groups()
	if len(groups[fixers.GroupPSR2]) == 0 || len(groups[fixers.GroupSymfony]) <= len(groups[fixers.GroupPSR2]) {
		t.Fatalf("unexpected groups: %v", groups)
	}
	res, err := r.Resolve(fixer.RuleSet{Rules: []fixer.Rule{{Name: fixers.GroupSymfony, Enabled: true}}})
	if err != nil {
		t.Fatal(err)
	}
	names := res.Names()
	if names[len(names)-1] != "single_blank_line_at_eof" {
		t.Fatalf("lowest priority fixer must run last: %v", names)
	}
}
