package yaml

import "github.com/willabides/yamlemit/internal/yamlh"

// StreamStartEvent returns a STREAM-START event, the first event of
// every stream.
func StreamStartEvent(encoding Encoding) *Event {
	return &Event{
		Type:     yamlh.STREAM_START_EVENT,
		Encoding: encoding,
	}
}

// StreamEndEvent returns a STREAM-END event, the last event of every
// stream.
func StreamEndEvent() *Event {
	return &Event{Type: yamlh.STREAM_END_EVENT}
}

// DocumentStartEvent returns a DOCUMENT-START event. version and tags
// may be nil/empty. implicit requests that the "---" marker be omitted
// when the emitter's other state allows it.
func DocumentStartEvent(version *VersionDirective, tags []TagDirective, implicit bool) *Event {
	return &Event{
		Type:              yamlh.DOCUMENT_START_EVENT,
		Version_directive: version,
		Tag_directives:    tags,
		Implicit:          implicit,
	}
}

// DocumentEndEvent returns a DOCUMENT-END event. implicit requests that
// the "..." marker be omitted when possible.
func DocumentEndEvent(implicit bool) *Event {
	return &Event{
		Type:     yamlh.DOCUMENT_END_EVENT,
		Implicit: implicit,
	}
}

// AliasEvent returns an ALIAS event referring to a prior anchor.
func AliasEvent(anchor string) *Event {
	return &Event{
		Type:   yamlh.ALIAS_EVENT,
		Anchor: []byte(anchor),
	}
}

// ScalarEvent returns a SCALAR event. The tag is written only when
// plainImplicit and quotedImplicit are both false, or when the emitter
// is canonical. An untagged scalar needs at least one of the two set,
// and with plainImplicit false it is never rendered plain. anchor and
// tag may be empty.
func ScalarEvent(anchor, tag, value string, plainImplicit, quotedImplicit bool, style ScalarStyle) *Event {
	return &Event{
		Type:            yamlh.SCALAR_EVENT,
		Anchor:          nonEmptyBytes(anchor),
		Tag:             nonEmptyBytes(tag),
		Value:           []byte(value),
		Implicit:        plainImplicit,
		Quoted_implicit: quotedImplicit,
		Style:           yamlh.YamlStyle(style),
	}
}

// SequenceStartEvent returns a SEQUENCE-START event. implicit omits the
// tag from the output unless the emitter is canonical.
func SequenceStartEvent(anchor, tag string, implicit bool, style SequenceStyle) *Event {
	return &Event{
		Type:     yamlh.SEQUENCE_START_EVENT,
		Anchor:   nonEmptyBytes(anchor),
		Tag:      nonEmptyBytes(tag),
		Implicit: implicit,
		Style:    yamlh.YamlStyle(style),
	}
}

// SequenceEndEvent returns a SEQUENCE-END event.
func SequenceEndEvent() *Event {
	return &Event{Type: yamlh.SEQUENCE_END_EVENT}
}

// MappingStartEvent returns a MAPPING-START event. implicit omits the
// tag from the output unless the emitter is canonical.
func MappingStartEvent(anchor, tag string, implicit bool, style MappingStyle) *Event {
	return &Event{
		Type:     yamlh.MAPPING_START_EVENT,
		Anchor:   nonEmptyBytes(anchor),
		Tag:      nonEmptyBytes(tag),
		Implicit: implicit,
		Style:    yamlh.YamlStyle(style),
	}
}

// MappingEndEvent returns a MAPPING-END event.
func MappingEndEvent() *Event {
	return &Event{Type: yamlh.MAPPING_END_EVENT}
}

func nonEmptyBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return []byte(s)
}
