package mounts

import (
	"testing"
)

func TestNormPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"/", ""},
		{"/foo", "foo"},
		{"/foo/", "foo"},
		{"/foo/bar", "foo/bar"},
		{"foo/", "foo"},
		{"//multiple//slashes//", "multiple//slashes"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := normPath(tt.input)
			if result != tt.expected {
				t.Errorf("normPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestVirtualPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"/", ""},
		{".", ""},
		{"/sub/", "sub"},
		{"/sub//nested.txt", "sub/nested.txt"},
		{"/sub/./nested.txt", "sub/nested.txt"},
		{"/sub/x/../nested.txt", "sub/nested.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := virtualPath(tt.input)
			if result != tt.expected {
				t.Errorf("virtualPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestJoinPath(t *testing.T) {
	if got := joinPath("", "a.txt"); got != "a.txt" {
		t.Errorf("joinPath at root = %q, want a.txt", got)
	}
	if got := joinPath("sub", "a.txt"); got != "sub/a.txt" {
		t.Errorf("joinPath(sub) = %q, want sub/a.txt", got)
	}
}
