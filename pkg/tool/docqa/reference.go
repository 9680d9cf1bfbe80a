package docqa

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

const (
	MinBatchSize = 1
	MaxBatchSize = 10
)

var SupportedExtensions = []string{".pdf", ".jpg", ".jpeg", ".png"}

var ErrBatchSize = errors.New("batch must contain between 1 and 10 document references")

type Kind string

const (
	KindPDF   Kind = "pdf"
	KindImage Kind = "image"
)

type Origin string

const (
	OriginLocal  Origin = "local"
	OriginRemote Origin = "remote"
)

// Reference is a validated document reference, either a local filesystem path
// or an absolute http(s) url.
type Reference struct {
	Raw string

	Ext string

	Kind   Kind
	Origin Origin
}

func ParseReference(raw string) (Reference, error) {
	origin := OriginLocal
	ext := strings.ToLower(filepath.Ext(raw))

	if parsed, err := url.Parse(raw); err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		origin = OriginRemote
		ext = strings.ToLower(path.Ext(parsed.Path))
	}

	if !slices.Contains(SupportedExtensions, ext) {
		return Reference{}, &UnsupportedFileTypeError{Path: raw, Ext: ext}
	}

	kind := KindImage

	if ext == ".pdf" {
		kind = KindPDF
	}

	return Reference{
		Raw: raw,

		Ext: ext,

		Kind:   kind,
		Origin: origin,
	}, nil
}

// ParseBatch validates the batch bounds and every reference before any file
// read or network call happens. One invalid reference rejects the whole batch.
func ParseBatch(paths []string) ([]Reference, error) {
	if len(paths) < MinBatchSize || len(paths) > MaxBatchSize {
		return nil, fmt.Errorf("%w, got %d", ErrBatchSize, len(paths))
	}

	refs := make([]Reference, 0, len(paths))

	for _, p := range paths {
		ref, err := ParseReference(p)

		if err != nil {
			return nil, err
		}

		refs = append(refs, ref)
	}

	return refs, nil
}
