// Package manifest loads and checks the distribution manifest of a
// package: its identity, version and index metadata.
//
// A manifest is a YAML document whose keys follow the classic setup
// script fields:
//
//	name: result_py
//	packages: [result_py]
//	version: 0.1.0
//	description: A Result type much like Rust's.
//	author: Jane Doe
//	author_email: jane@example.org
//	url: https://example.org/result_py
//	download_url: https://example.org/result_py/archive/0.1.0.tar.gz
//	keywords: [rust, result, generics]
//	classifiers:
//	  - "Programming Language :: Python :: 3.7"
//
// Every stage returns a rop.Result so callers can chain loading and
// checking without intermediate error plumbing.
package manifest

import (
	"errors"
	"fmt"
)

// ErrInvalidManifest is wrapped by every failure that comes from the
// manifest content rather than from I/O.
var ErrInvalidManifest = errors.New("invalid manifest")

type Manifest struct {
	Name        string   `yaml:"name" json:"name"`
	Packages    []string `yaml:"packages" json:"packages"`
	Version     string   `yaml:"version" json:"version"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
	AuthorEmail string   `yaml:"author_email,omitempty" json:"author_email,omitempty"`
	URL         string   `yaml:"url,omitempty" json:"url,omitempty"`
	DownloadURL string   `yaml:"download_url,omitempty" json:"download_url,omitempty"`
	Keywords    []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Classifiers []string `yaml:"classifiers,omitempty" json:"classifiers,omitempty"`
}

// FieldError names the manifest field a rule rejected.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidManifest
}

func fieldErr(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
