// Copyright (c) 2025 Visvasity LLC

package semantic

import (
	"strings"

	"github.com/visvasity/fixcap/staticstr"
)

func isPathEntryChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '.' || c == '_' || c == '-':
		return true
	}
	return false
}

func isRelativeComponent(entry string) bool {
	return entry == "." || entry == ".."
}

// FileNameRules rejects path separators and the relative components "." and
// ".."; a file name must not be empty.
var FileNameRules = &Rules{
	Name: "FileName",
	InvalidCharacter: func(c byte) bool {
		return !isPathEntryChar(c)
	},
	InvalidContent: func(s *staticstr.String) bool {
		return s.Empty() || isRelativeComponent(s.String())
	},
}

// PathNameRules accepts '/'-separated path entries made of file name
// characters plus the relative components "." and "..". Empty entries are
// only accepted at the ends, so "a//b" is rejected while "/a/b/" is not.
var PathNameRules = &Rules{
	Name: "PathName",
	InvalidCharacter: func(c byte) bool {
		return c != '/' && !isPathEntryChar(c)
	},
	InvalidContent: func(s *staticstr.String) bool {
		content := s.String()
		if content == "" {
			return true
		}
		entries := strings.Split(content, "/")
		for i, entry := range entries {
			if entry == "" {
				if i == 0 || i == len(entries)-1 {
					continue
				}
				return true
			}
		}
		return false
	},
}

// NewFileName returns a semantic string restricted to valid file names.
func NewFileName(capacity int, content string) (*String, error) {
	return Create(FileNameRules, capacity, content)
}

// NewPathName returns a semantic string restricted to valid paths.
func NewPathName(capacity int, content string) (*String, error) {
	return Create(PathNameRules, capacity, content)
}
