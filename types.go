package yaml

import "github.com/willabides/yamlemit/internal/yamlh"

// Event is a single parsing event fed to an Emitter. Build one with the
// Xxx Event constructor functions below rather than populating it
// directly.
type Event = yamlh.Event

// Encoding identifies the byte encoding of a YAML stream.
type Encoding = yamlh.Encoding

// Stream encodings.
const (
	AnyEncoding     = yamlh.ANY_ENCODING
	UTF8Encoding    = yamlh.UTF8_ENCODING
	UTF16LEEncoding = yamlh.UTF16LE_ENCODING
	UTF16BEEncoding = yamlh.UTF16BE_ENCODING
)

// LineBreak identifies the line break sequence used when writing output.
type LineBreak = yamlh.Break

// Line break styles.
const (
	AnyBreak  = yamlh.ANY_BREAK
	CRBreak   = yamlh.CR_BREAK
	LNBreak   = yamlh.LN_BREAK
	CRLNBreak = yamlh.CRLN_BREAK
)

// ScalarStyle selects how a scalar value is rendered.
type ScalarStyle = yamlh.YamlScalarStyle

// Scalar styles. AnyScalarStyle lets the emitter choose based on the
// scalar's content.
const (
	AnyScalarStyle          = yamlh.ANY_SCALAR_STYLE
	PlainScalarStyle        = yamlh.PLAIN_SCALAR_STYLE
	SingleQuotedScalarStyle = yamlh.SINGLE_QUOTED_SCALAR_STYLE
	DoubleQuotedScalarStyle = yamlh.DOUBLE_QUOTED_SCALAR_STYLE
	LiteralScalarStyle      = yamlh.LITERAL_SCALAR_STYLE
	FoldedScalarStyle       = yamlh.FOLDED_SCALAR_STYLE
)

// SequenceStyle selects block or flow rendering for a sequence.
type SequenceStyle = yamlh.YamlSequenceStyle

// Sequence styles.
const (
	AnySequenceStyle   = yamlh.ANY_SEQUENCE_STYLE
	BlockSequenceStyle = yamlh.BLOCK_SEQUENCE_STYLE
	FlowSequenceStyle  = yamlh.FLOW_SEQUENCE_STYLE
)

// MappingStyle selects block or flow rendering for a mapping.
type MappingStyle = yamlh.YamlMappingStyle

// Mapping styles.
const (
	AnyMappingStyle   = yamlh.ANY_MAPPING_STYLE
	BlockMappingStyle = yamlh.BLOCK_MAPPING_STYLE
	FlowMappingStyle  = yamlh.FLOW_MAPPING_STYLE
)

// VersionDirective is a %YAML major.minor directive.
type VersionDirective = yamlh.VersionDirective

// TagDirective is a %TAG handle prefix directive.
type TagDirective = yamlh.TagDirective
