package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/yamlemit/internal/yamlh"
)

func TestAnalyzeScalarPlainAllowed(t *testing.T) {
	e := New(nil)
	analyzeScalar(e, []byte("hello"))
	require.True(t, e.scalarData.blockPlainAllowed)
	require.True(t, e.scalarData.flowPlainAllowed)
	require.False(t, e.scalarData.multiline)
}

func TestAnalyzeScalarMultilineForbidsPlain(t *testing.T) {
	e := New(nil)
	analyzeScalar(e, []byte("line1\nline2 "))
	require.True(t, e.scalarData.multiline)
	require.False(t, e.scalarData.blockPlainAllowed)
	require.False(t, e.scalarData.blockAllowed) // trailing space on the final line forbids literal/folded
}

func TestAnalyzeScalarUnicodeGate(t *testing.T) {
	value := []byte("café")

	e := New(nil)
	e.unicode = false
	analyzeScalar(e, value)
	require.False(t, e.scalarData.blockPlainAllowed, "non-ASCII must be treated as special when unicode is disabled")

	e2 := New(nil)
	e2.unicode = true
	analyzeScalar(e2, value)
	require.True(t, e2.scalarData.blockPlainAllowed)
}

func TestAnalyzeTagDirectiveRejectsEmptyHandle(t *testing.T) {
	err := analyzeTagDirective(&yamlh.TagDirective{Handle: nil, Prefix: []byte("tag:example.com,2024:")})
	require.Error(t, err)
	var emitErr *Error
	require.ErrorAs(t, err, &emitErr)
	require.Equal(t, UnexpectedEvent, emitErr.Kind)
}

func TestAnalyzeVersionDirectiveRejectsNonV1(t *testing.T) {
	err := analyzeVersionDirective(&yamlh.VersionDirective{Major: 2, Minor: 0})
	require.Error(t, err)
	var emitErr *Error
	require.ErrorAs(t, err, &emitErr)
	require.Equal(t, InvalidVersion, emitErr.Kind)
}
