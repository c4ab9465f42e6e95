package fuzztests

import (
	"testing"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixers"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

var handSeeds = []string{
	"",
	"<?php",
	"<?php\n",
	"plain html <?php echo 1 ?> tail",
	"<?= $x ?>",
	"<?php\n$a = ARRAY(1, [2, 3], array());\n",
	"<?php\nFUNCTION foo($a){ return SIZEOF($a{0});}\n",
	"<?php\n$b = (integer) $a; $c = (boolean)$b;\n",
	"<?php\n$s = <<<EOT\nline $x\nEOT;\n",
	"<?php\n/** doc */\n#[Attr]\nclass A { public function __construct() {} }\n",
	"<?php\n$f = fn($x) => $x ?? null;\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range handSeeds {
		f.Add([]byte(seed))
	}
	// примеры из описаний фиксеров
	for _, fx := range fixers.Builtin() {
		for _, sample := range fx.Samples {
			f.Add(clampSeed([]byte(sample.Before)))
			f.Add(clampSeed([]byte(sample.After)))
		}
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
