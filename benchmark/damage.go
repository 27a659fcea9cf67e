package benchmark

import (
	"bytes"
	"fmt"
	"math/rand"
)

// Generator produces JSON documents, intact or deliberately broken, for the
// repair benchmarks.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with a seed for reproducibility.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Document generates a well-formed document with the given record count
// (roughly 90 bytes per record).
func (g *Generator) Document(records int) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{"metadata":{"version":"1.0","count":%d},"records":[`, records)
	for i := 0; i < records; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"id":%d,"name":"record-%d","score":%d,"active":%t,"tags":["a","b"]}`,
			i, i, g.rng.Intn(100), i%2 == 0)
	}
	buf.WriteString(`]}`)
	return buf.Bytes()
}

// DamageKind selects the structural fault Damage injects.
type DamageKind int

const (
	// DamageTruncate cuts the document somewhere in its second half.
	DamageTruncate DamageKind = iota
	// DamageDropClosers removes the run of closing brackets at the end.
	DamageDropClosers
	// DamageTrailingComma inserts a comma before the last array closer.
	DamageTrailingComma
	// DamageBareLiteral rewrites the first "true" in Python style.
	DamageBareLiteral
)

// Damage returns a copy of data with the given fault injected.
func (g *Generator) Damage(data []byte, kind DamageKind) []byte {
	switch kind {
	case DamageTruncate:
		cut := len(data)/2 + g.rng.Intn(len(data)/2)
		return append([]byte(nil), data[:cut]...)
	case DamageDropClosers:
		end := len(data)
		for end > 0 && (data[end-1] == '}' || data[end-1] == ']') {
			end--
		}
		return append([]byte(nil), data[:end]...)
	case DamageTrailingComma:
		i := bytes.LastIndexByte(data, ']')
		if i < 0 {
			return append([]byte(nil), data...)
		}
		out := make([]byte, 0, len(data)+1)
		out = append(out, data[:i]...)
		out = append(out, ',')
		return append(out, data[i:]...)
	default:
		return bytes.Replace(data, []byte("true"), []byte("True"), 1)
	}
}
