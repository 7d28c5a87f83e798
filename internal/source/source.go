// Package source loads a compilation unit from disk: reading the raw
// bytes, stripping a UTF-8 byte-order mark if present, and rejecting
// input that does not decode as valid UTF-8 (spec.md §7's I/O-boundary
// error, ahead of any lexical diagnostic). Grounded on the teacher's
// BOM-stripping opening move in internal/lexer.New, reimplemented here
// with the ecosystem's BOM-aware decoder (golang.org/x/text) rather than
// a hand-rolled prefix check, and moved to the source-load boundary so
// internal/lexer itself never has to think about encoding.
package source

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	blangerrors "github.com/FyVoid/blang/internal/errors"
	"github.com/FyVoid/blang/internal/token"
)

// Load reads path, strips a leading UTF-8/UTF-16 BOM if present
// (transcoding UTF-16 input to UTF-8 along the way), and returns the
// decoded text. A non-UTF-8-representable file is reported as a
// *errors.SourceError rather than being handed to the lexer.
func Load(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(raw, path)
}

// Decode strips a BOM and validates raw as UTF-8, attributing any
// decoding failure to file (used directly by tests and by Load).
func Decode(raw []byte, file string) (string, error) {
	decoder := unicode.BOMOverride(encoding.UTF8Validator)
	decoded, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", blangerrors.New(token.Position{Line: 1, Column: 1}, "source is not valid UTF-8: "+err.Error(), "", file)
	}
	if !utf8.Valid(decoded) {
		return "", blangerrors.New(token.Position{Line: 1, Column: 1}, "source is not valid UTF-8", "", file)
	}
	return string(decoded), nil
}

// ReadAll is a small convenience wrapper used by callers that already
// hold an io.Reader (e.g. stdin) instead of a file path.
func ReadAll(r io.Reader, file string) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file, err)
	}
	return Decode(raw, file)
}
