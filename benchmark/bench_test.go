package benchmark

import (
	"testing"

	"github.com/dhawalhost/rjson"
	"github.com/tidwall/pretty"
	"github.com/valyala/fastjson"
)

var (
	gen       = NewGenerator(42)
	intact    = gen.Document(200)
	truncated = gen.Damage(intact, DamageDropClosers)
	commaed   = gen.Damage(intact, DamageTrailingComma)
)

// Repaired output of the non-truncating damages must parse strictly.
func TestDamagedDocumentsRepair(t *testing.T) {
	for _, kind := range []DamageKind{DamageDropClosers, DamageTrailingComma, DamageBareLiteral} {
		damaged := gen.Damage(intact, kind)
		repaired := rjson.Minify(damaged)
		if err := fastjson.ValidateBytes(repaired); err != nil {
			t.Errorf("damage kind %d: repaired output invalid: %v", kind, err)
		}
	}
}

//------------------------------------------------------------------------------
// FORMATTING BASELINES (tidwall/pretty does no repair)
//------------------------------------------------------------------------------

func BenchmarkPretty_RJSON(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rjson.Fix(intact)
	}
}

func BenchmarkPretty_Tidwall(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pretty.Pretty(intact)
	}
}

func BenchmarkMinify_RJSON(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rjson.Minify(intact)
	}
}

func BenchmarkMinify_Tidwall(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pretty.Ugly(intact)
	}
}

//------------------------------------------------------------------------------
// REPAIR COST ON DAMAGED INPUT
//------------------------------------------------------------------------------

func BenchmarkRepair_Truncated(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rjson.Minify(truncated)
	}
}

func BenchmarkRepair_TrailingComma(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rjson.Minify(commaed)
	}
}

//------------------------------------------------------------------------------
// STRICT-FIRST PIPELINE
//------------------------------------------------------------------------------

// strictThenRepair mirrors the intended caller contract: parse strictly and
// fall back to repair only when that fails.
func strictThenRepair(data []byte) []byte {
	if fastjson.ValidateBytes(data) == nil {
		return data
	}
	return rjson.Minify(data)
}

func BenchmarkPipeline_ValidInput(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		strictThenRepair(intact)
	}
}

func BenchmarkPipeline_DamagedInput(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		strictThenRepair(truncated)
	}
}
