// Copyright (c) 2025 Visvasity LLC

package staticvec

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the live elements as a JSON array.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.storage.Live())
}

// UnmarshalJSON replaces the vector's contents with the elements of a JSON
// array. Fails without modifying the vector if the array is longer than the
// vector's capacity.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var xs []T
	if err := json.Unmarshal(data, &xs); err != nil {
		return err
	}
	if len(xs) > v.Capacity() {
		return fmt.Errorf("staticvec: JSON array length %d exceeds capacity %d", len(xs), v.Capacity())
	}
	v.storage.ShrinkFromBack(0)
	for _, x := range xs {
		v.storage.EmplaceBack(x)
	}
	return nil
}
