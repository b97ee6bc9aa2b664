package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload of an event as T. Payloads published
// in process are already a T or *T; payloads read back from the journal
// are generic JSON values and are converted through a JSON round trip.
func DecodePayload[T any](payload any) (T, error) {
	var zero T
	switch p := payload.(type) {
	case T:
		return p, nil
	case *T:
		if p == nil {
			return zero, fmt.Errorf(ErrMsgNilPayload, zero)
		}
		return *p, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return zero, fmt.Errorf(ErrMsgDecodePayload, zero, err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf(ErrMsgDecodePayload, zero, err)
	}
	return out, nil
}
