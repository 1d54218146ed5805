// Copyright (c) 2025 Visvasity LLC

package staticstr

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the live content as a JSON string.
func (s *String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON replaces the string's contents with a JSON string value.
// Fails without modifying the string if the value does not fit or carries a
// byte outside the accepted code unit range.
func (s *String) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if len(str) > s.Capacity() {
		return fmt.Errorf("staticstr: JSON string length %d exceeds capacity %d", len(str), s.Capacity())
	}
	for i := 0; i < len(str); i++ {
		if !isValidNext(str[i]) {
			return fmt.Errorf("staticstr: invalid code unit %#x at position %d", str[i], i)
		}
	}
	s.buf.SetZero()
	copy(s.buf, str)
	s.size = len(str)
	return nil
}
