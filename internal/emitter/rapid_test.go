package emitter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/willabides/yamlemit/internal/yamlh"
	"pgregory.net/rapid"
)

// genScalarValue produces printable ASCII scalar content with no
// quotes, backslashes, or line breaks, so the round-trip below can
// strip each style's delimiters without reimplementing a parser.
func genScalarValue(t *rapid.T) string {
	return rapid.StringMatching(`[a-zA-Z0-9 ]{0,24}`).Draw(t, "scalar")
}

// newScalarWriter returns an Emitter configured so the scalar writers
// never wrap a line or treat a missing predecessor as needing a
// separating space, so their output can be compared byte-for-byte
// against the analyzed value.
func newScalarWriter() (*Emitter, *bytes.Buffer) {
	var buf bytes.Buffer
	e := New(&buf)
	e.width = 1 << 30
	e.lastCharWhitepace = true
	e.lastCharIndent = true
	return e, &buf
}

// reconstructScalar strips the style's delimiters back off written
// output. This only needs to undo what the writers above actually did
// with genScalarValue's printable-ASCII-no-quotes-no-breaks alphabet,
// not handle arbitrary YAML input — a general version of this would be
// a parser, which is out of scope here.
func reconstructScalar(style yamlh.YamlScalarStyle, written string) string {
	switch style {
	case yamlh.SINGLE_QUOTED_SCALAR_STYLE, yamlh.DOUBLE_QUOTED_SCALAR_STYLE:
		return strings.TrimSuffix(strings.TrimPrefix(written, written[:1]), written[len(written)-1:])
	default:
		return written
	}
}

// P2: for each style analyzeScalar deems legal for a
// scalar, writing it in that style and reconstructing the payload
// (without a full parser) must return the original value.
func TestRapidScalarStyleRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := genScalarValue(t)

		e := New(nil)
		analyzeScalar(e, []byte(value))
		data := e.scalarData

		tryStyle := func(style yamlh.YamlScalarStyle, write func(w *Emitter, v []byte, allowBreaks bool) error) {
			w, buf := newScalarWriter()
			if err := write(w, []byte(value), true); err != nil {
				t.Fatalf("write failed for style %d: %v", style, err)
			}
			got := reconstructScalar(style, buf.String())
			if got != value {
				t.Fatalf("style %d round-trip mismatch: wrote %q, reconstructed %q, want %q", style, buf.String(), got, value)
			}
		}

		if data.blockPlainAllowed {
			tryStyle(yamlh.PLAIN_SCALAR_STYLE, writePlainScalar)
		}
		if data.singleQuotedAllowed {
			tryStyle(yamlh.SINGLE_QUOTED_SCALAR_STYLE, writeSingleQuotedScalar)
		}
		// Double-quoted is always a legal fallback style.
		tryStyle(yamlh.DOUBLE_QUOTED_SCALAR_STYLE, writeDoubleQuotedScalar)
	})
}
