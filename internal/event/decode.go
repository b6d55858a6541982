package event

import "encoding/json"

// DecodePayload returns an event payload as T. Payloads published in process
// are already T; payloads read back from a dead-letter file arrive as generic
// JSON values and are converted by re-encoding.
func DecodePayload[T any](input any) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	if p, ok := input.(*T); ok && p != nil {
		return *p, nil
	}

	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(data, &result)
	return result, err
}
