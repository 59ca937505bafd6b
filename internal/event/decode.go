package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNoPayload is returned when an event carries no payload at all
	ErrNoPayload = errors.New("event has no payload")
	// ErrPayloadType is returned when a payload cannot be read as the requested type
	ErrPayloadType = errors.New("event payload has unexpected shape")
)

// PayloadAs reads evt.Payload as T.
// Events published in process carry T (or *T) directly. Payloads that went
// through JSON carry raw bytes or a generic map and are decoded into T.
func PayloadAs[T any](evt Event) (T, error) {
	var zero T
	switch p := evt.Payload.(type) {
	case nil:
		return zero, fmt.Errorf("%w: %s", ErrNoPayload, evt.Type)
	case T:
		return p, nil
	case *T:
		if p == nil {
			return zero, fmt.Errorf("%w: %s", ErrNoPayload, evt.Type)
		}
		return *p, nil
	case json.RawMessage:
		return unmarshalPayload[T](evt.Type, p)
	case []byte:
		return unmarshalPayload[T](evt.Type, p)
	}

	data, err := json.Marshal(evt.Payload)
	if err != nil {
		return zero, fmt.Errorf("%w: %s as %T: %v", ErrPayloadType, evt.Type, zero, err)
	}
	return unmarshalPayload[T](evt.Type, data)
}

func unmarshalPayload[T any](t Type, data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: %s as %T: %v", ErrPayloadType, t, out, err)
	}
	return out, nil
}
