// Package instructions builds the system instruction sent with every chat
// request from the Inavora JSON document on disk.
package instructions

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNotFound   = errors.New("instructions file not found")
	ErrMalformed  = errors.New("instructions file is malformed")
	ErrUnreadable = errors.New("instructions file is unreadable")
)

// LoadError carries one of the sentinel kinds above together with the
// underlying read or parse error.
type LoadError struct {
	Kind error
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Path() string {
	return l.path
}

// Document reads the file and returns it indented by two spaces. Key order and
// values are kept exactly as written.
func (l *Loader) Document() ([]byte, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Kind: ErrNotFound, Path: l.path}
		}
		return nil, &LoadError{Kind: ErrUnreadable, Path: l.path, Err: err}
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &LoadError{Kind: ErrMalformed, Path: l.path, Err: err}
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, &LoadError{Kind: ErrMalformed, Path: l.path, Err: err}
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

// Load returns the full system instruction. It never fails: when the document
// cannot be used a short fallback notice is returned instead, and the chat
// request carries on with it.
func (l *Loader) Load() string {
	doc, err := l.Document()
	if err != nil {
		log.WithError(err).Warn("Using fallback instruction")
		return fallback(filepath.Base(l.path), err)
	}
	return compose(doc)
}

func compose(doc []byte) string {
	var b strings.Builder
	b.Grow(len(policy) + len(doc) + len(documentBegin) + len(documentEnd) + 4)
	b.WriteString(policy)
	b.WriteString(documentBegin)
	b.WriteByte('\n')
	b.Write(doc)
	b.WriteByte('\n')
	b.WriteString(documentEnd)
	b.WriteByte('\n')
	return b.String()
}

func fallback(name string, err error) string {
	var le *LoadError
	if !errors.As(err, &le) {
		return fmt.Sprintf("SYSTEM ERROR: Unable to read %s (%v). Fallback to generic assistant behavior.", name, err)
	}

	switch {
	case errors.Is(le.Kind, ErrNotFound):
		return fmt.Sprintf("SYSTEM ERROR: %s not found. You must act as a generic helpful assistant.", name)
	case errors.Is(le.Kind, ErrMalformed):
		return fmt.Sprintf("SYSTEM ERROR: %s is malformed (%v). Fallback to generic assistant behavior.", name, le.Err)
	default:
		return fmt.Sprintf("SYSTEM ERROR: Unable to read %s (%v). Fallback to generic assistant behavior.", name, le.Err)
	}
}
