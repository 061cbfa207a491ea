package yaml

import (
	"bytes"
	"errors"
	"testing"
)

// FuzzEmit decodes an arbitrary byte string into a small event program
// and asserts the emitter never panics, and any failure it returns is a
// typed *EmitError rather than some other error value leaking through.
func FuzzEmit(f *testing.F) {
	f.Add([]byte("\x01\x02hello\x00\x03\x04"))
	f.Add([]byte(""))
	f.Add([]byte("\x05\x06\x02a\x00\x02b\x00\x07"))

	f.Fuzz(func(t *testing.T, data []byte) {
		events := decodeFuzzEvents(data)

		var buf bytes.Buffer
		em := NewEmitter(&buf)
		for _, ev := range events {
			err := em.Emit(ev)
			if err != nil {
				var emitErr *EmitError
				if !errors.As(err, &emitErr) {
					t.Fatalf("Emit returned a non-EmitError: %v", err)
				}
				return
			}
		}
	})
}

// decodeFuzzEvents turns an arbitrary byte slice into a bounded
// sequence of events by reading one opcode byte at a time; scalar
// opcodes consume a NUL-terminated value. It never panics on
// truncated input.
func decodeFuzzEvents(data []byte) []*Event {
	var events []*Event
	i := 0
	for i < len(data) && len(events) < 64 {
		op := data[i]
		i++
		switch op % 8 {
		case 0:
			events = append(events, StreamStartEvent(UTF8Encoding))
		case 1:
			events = append(events, StreamEndEvent())
		case 2:
			value, n := readCString(data[i:])
			i += n
			events = append(events, ScalarEvent("", "", value, true, false, AnyScalarStyle))
		case 3:
			events = append(events, DocumentStartEvent(nil, nil, true))
		case 4:
			events = append(events, DocumentEndEvent(true))
		case 5:
			events = append(events, SequenceStartEvent("", "", true, BlockSequenceStyle))
		case 6:
			events = append(events, SequenceEndEvent())
		case 7:
			events = append(events, MappingStartEvent("", "", true, BlockMappingStyle))
			events = append(events, MappingEndEvent())
		}
	}
	return events
}

func readCString(data []byte) (string, int) {
	for i, b := range data {
		if b == 0 {
			return string(data[:i]), i + 1
		}
	}
	return string(data), len(data)
}
