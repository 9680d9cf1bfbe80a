package docqa_test

import (
	"testing"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool/docqa"

	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name string
		raw  string

		kind   docqa.Kind
		origin docqa.Origin
	}{
		{
			name: "local pdf",
			raw:  "documents/payslip.pdf",

			kind:   docqa.KindPDF,
			origin: docqa.OriginLocal,
		},
		{
			name: "local image",
			raw:  "documents/passport.JPG",

			kind:   docqa.KindImage,
			origin: docqa.OriginLocal,
		},
		{
			name: "remote pdf",
			raw:  "https://example.com/statements/march.pdf",

			kind:   docqa.KindPDF,
			origin: docqa.OriginRemote,
		},
		{
			name: "remote image with query",
			raw:  "https://example.com/id.png?token=abc",

			kind:   docqa.KindImage,
			origin: docqa.OriginRemote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := docqa.ParseReference(tt.raw)
			require.NoError(t, err)

			require.Equal(t, tt.raw, ref.Raw)
			require.Equal(t, tt.kind, ref.Kind)
			require.Equal(t, tt.origin, ref.Origin)
		})
	}
}

func TestParseReferenceUnsupported(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "spreadsheet",
			raw:  "documents/income.xlsx",
		},
		{
			name: "no extension",
			raw:  "documents/README",
		},
		{
			name: "remote html",
			raw:  "https://example.com/listing.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := docqa.ParseReference(tt.raw)

			var unsupported *docqa.UnsupportedFileTypeError
			require.ErrorAs(t, err, &unsupported)
			require.Equal(t, tt.raw, unsupported.Path)
		})
	}
}

func TestParseReferenceErrorMessage(t *testing.T) {
	_, err := docqa.ParseReference("documents/data.xyz")
	require.Error(t, err)

	require.Contains(t, err.Error(), ".xyz")

	for _, ext := range docqa.SupportedExtensions {
		require.Contains(t, err.Error(), ext)
	}
}

func TestParseBatchBounds(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := docqa.ParseBatch(nil)
		require.ErrorIs(t, err, docqa.ErrBatchSize)
	})

	t.Run("too many", func(t *testing.T) {
		paths := make([]string, docqa.MaxBatchSize+1)

		for i := range paths {
			paths[i] = "documents/page.pdf"
		}

		_, err := docqa.ParseBatch(paths)
		require.ErrorIs(t, err, docqa.ErrBatchSize)
	})

	t.Run("max", func(t *testing.T) {
		paths := make([]string, docqa.MaxBatchSize)

		for i := range paths {
			paths[i] = "documents/page.pdf"
		}

		refs, err := docqa.ParseBatch(paths)
		require.NoError(t, err)
		require.Len(t, refs, docqa.MaxBatchSize)
	})
}

func TestParseBatchRejectsWhole(t *testing.T) {
	refs, err := docqa.ParseBatch([]string{
		"documents/passport.pdf",
		"documents/income.docx",
		"documents/statement.pdf",
	})

	var unsupported *docqa.UnsupportedFileTypeError
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, "documents/income.docx", unsupported.Path)
	require.Nil(t, refs)
}
