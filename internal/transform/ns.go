package transform

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/cwbudde/jsklve/internal/jsast"
)

// newNSName returns a gensym'd identifier for the NS operating
// namespace. Per spec.md §9 ("a fresh gensym per call is the robust
// choice") it must not collide with any identifier the traced program
// could plausibly declare.
func newNSName() string {
	var buf [6]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing means the platform RNG is broken; fall
		// back to a fixed suffix rather than panicking the tracer.
		return "__jsklve_ns_fallback"
	}
	return "__jsklve_ns_" + hex.EncodeToString(buf[:])
}

func (t *transformer) nsIdent() *jsast.Identifier {
	return &jsast.Identifier{Name: t.ns}
}

func (t *transformer) nsMember(prop string) *jsast.MemberExpression {
	return &jsast.MemberExpression{Object: t.nsIdent(), Property: &jsast.Identifier{Name: prop}}
}

func (t *transformer) nsReportCall(value, meta jsast.Expression) *jsast.CallExpression {
	return &jsast.CallExpression{
		Callee:    t.nsMember("report"),
		Arguments: []jsast.Expression{value, meta},
	}
}

func (t *transformer) nsDescribeCall(arg jsast.Expression) *jsast.CallExpression {
	return &jsast.CallExpression{
		Callee:    t.nsMember("describe"),
		Arguments: []jsast.Expression{arg},
	}
}

func (t *transformer) nsCacheSlot(k int) *jsast.MemberExpression {
	return &jsast.MemberExpression{
		Object:   t.nsMember("cache"),
		Property: &jsast.NumericLiteral{Value: float64(k), Raw: fmt.Sprintf("%d", k)},
		Computed: true,
	}
}

func (t *transformer) nsReturnMember() *jsast.MemberExpression {
	return t.nsMember("return")
}

func (t *transformer) nextCacheSlot() int {
	k := t.cacheCounter
	t.cacheCounter++
	return k
}

func undefinedIdent() *jsast.Identifier {
	return &jsast.Identifier{Name: "undefined"}
}
