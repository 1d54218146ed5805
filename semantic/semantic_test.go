// Copyright (c) 2025 Visvasity LLC

package semantic

import (
	"errors"
	"testing"
)

func TestFileName(t *testing.T) {
	f, err := NewFileName(64, "data_01.bin")
	if err != nil {
		t.Fatal(err)
	}
	if f.String() != "data_01.bin" {
		t.Fatalf("unexpected content: %q", f.String())
	}

	for _, bad := range []string{"", ".", "..", "a/b", "a b", "tab\tname"} {
		if _, err := NewFileName(64, bad); err == nil {
			t.Fatalf("wanted error for %q", bad)
		}
	}
}

func TestFileNameErrorsAreTyped(t *testing.T) {
	if _, err := NewFileName(64, "a/b"); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("wanted ErrInvalidCharacter, got %v", err)
	}
	if _, err := NewFileName(64, ".."); !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("wanted ErrInvalidContent, got %v", err)
	}
	if _, err := NewFileName(3, "long-name"); !errors.Is(err, ErrExceedsCapacity) {
		t.Fatalf("wanted ErrExceedsCapacity, got %v", err)
	}
}

func TestPathName(t *testing.T) {
	for _, good := range []string{"a/b/c", "/a/b", "a/b/", "/", "a", "./a", "../a/b"} {
		if _, err := NewPathName(64, good); err != nil {
			t.Fatalf("wanted %q to be accepted: %v", good, err)
		}
	}
	for _, bad := range []string{"", "a//b", "a/b c", "a\x00b"} {
		if _, err := NewPathName(64, bad); err == nil {
			t.Fatalf("wanted error for %q", bad)
		}
	}
}

func TestAppendRollsBack(t *testing.T) {
	f, err := NewFileName(16, "base")
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Append(".txt"); err != nil {
		t.Fatal(err)
	}
	if f.String() != "base.txt" {
		t.Fatalf("unexpected content: %q", f.String())
	}

	if err := f.Append("/etc"); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("wanted ErrInvalidCharacter, got %v", err)
	}
	if f.String() != "base.txt" {
		t.Fatalf("failed append must roll back, got %q", f.String())
	}

	if err := f.Append("0123456789abcdef"); !errors.Is(err, ErrExceedsCapacity) {
		t.Fatalf("wanted ErrExceedsCapacity, got %v", err)
	}
	if f.String() != "base.txt" {
		t.Fatalf("failed append must roll back, got %q", f.String())
	}
}

func TestPopBackRollsBack(t *testing.T) {
	f, err := NewFileName(8, "ab")
	if err != nil {
		t.Fatal(err)
	}
	if err := f.PopBack(); err != nil {
		t.Fatal(err)
	}
	if f.String() != "a" {
		t.Fatalf("unexpected content: %q", f.String())
	}
	// Dropping the last character would leave an empty file name.
	if err := f.PopBack(); !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("wanted ErrInvalidContent, got %v", err)
	}
	if f.String() != "a" {
		t.Fatalf("failed pop must restore the character, got %q", f.String())
	}
}
