// Copyright (c) 2025 Visvasity LLC

// Package semantic builds domain-restricted string types on top of the
// bounded string. A semantic string couples a staticstr.String with rules
// naming the characters and whole-string contents that the domain rejects;
// every constructor and mutator revalidates and rolls back on violation.
package semantic

import (
	"errors"
	"fmt"

	"github.com/visvasity/fixcap/staticstr"
)

var (
	ErrInvalidCharacter = errors.New("semantic: invalid character")
	ErrInvalidContent   = errors.New("semantic: invalid content")
	ErrExceedsCapacity  = errors.New("semantic: exceeds capacity")
)

// Rules names the characters and contents a semantic string type rejects.
type Rules struct {
	Name string

	// InvalidCharacter reports whether the domain rejects c anywhere in the
	// string. The bounded string's own code unit restriction applies first.
	InvalidCharacter func(c byte) bool

	// InvalidContent reports whether the domain rejects the string as a
	// whole, for contents built entirely from accepted characters.
	InvalidContent func(s *staticstr.String) bool
}

// String is a bounded string whose content always satisfies its rules.
type String struct {
	rules *Rules
	value *staticstr.String
}

// Create returns a semantic string holding content, or an error naming the
// violated rule.
func Create(rules *Rules, capacity int, content string) (*String, error) {
	if len(content) > capacity {
		return nil, fmt.Errorf("%w: %s %q needs %d of %d", ErrExceedsCapacity, rules.Name, content, len(content), capacity)
	}
	value := staticstr.New(capacity)
	for i := 0; i < len(content); i++ {
		if rules.InvalidCharacter(content[i]) || !value.TryPushBack(content[i]) {
			return nil, fmt.Errorf("%w: %s rejects %q at position %d", ErrInvalidCharacter, rules.Name, content[i], i)
		}
	}
	if rules.InvalidContent != nil && rules.InvalidContent(value) {
		return nil, fmt.Errorf("%w: %s rejects %q", ErrInvalidContent, rules.Name, content)
	}
	return &String{rules: rules, value: value}, nil
}

// Append extends the string with content, restoring the previous value on
// any violation.
func (s *String) Append(content string) error {
	oldSize := s.value.Size()
	for i := 0; i < len(content); i++ {
		if s.rules.InvalidCharacter(content[i]) || !s.value.TryPushBack(content[i]) {
			s.rollback(oldSize)
			if len(content)+oldSize > s.value.Capacity() {
				return fmt.Errorf("%w: %s append %q", ErrExceedsCapacity, s.rules.Name, content)
			}
			return fmt.Errorf("%w: %s rejects %q at position %d", ErrInvalidCharacter, s.rules.Name, content[i], i)
		}
	}
	if s.rules.InvalidContent != nil && s.rules.InvalidContent(s.value) {
		s.rollback(oldSize)
		return fmt.Errorf("%w: %s rejects appending %q", ErrInvalidContent, s.rules.Name, content)
	}
	return nil
}

// PopBack removes the last character, restoring it if the shortened content
// violates the rules.
func (s *String) PopBack() error {
	last, ok := s.value.CodeUnits().BackElement().Get()
	if !ok {
		return fmt.Errorf("%w: %s is empty", ErrInvalidContent, s.rules.Name)
	}
	s.value.TryPopBack()
	if s.rules.InvalidContent != nil && s.rules.InvalidContent(s.value) {
		s.value.TryPushBack(last)
		return fmt.Errorf("%w: %s cannot drop %q", ErrInvalidContent, s.rules.Name, last)
	}
	return nil
}

func (s *String) rollback(oldSize int) {
	s.value.UncheckedCodeUnits().TryEraseRange(oldSize, s.value.Size())
}

// Value returns the underlying bounded string. Mutating it directly can
// break the semantic invariant; treat it as read-only.
func (s *String) Value() *staticstr.String {
	return s.value
}

// Size returns the live character count.
func (s *String) Size() int {
	return s.value.Size()
}

// Capacity returns the maximum character count.
func (s *String) Capacity() int {
	return s.value.Capacity()
}

// String returns the content as a Go string.
func (s *String) String() string {
	return s.value.String()
}
