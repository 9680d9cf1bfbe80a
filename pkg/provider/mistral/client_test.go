package mistral_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider/mistral"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := mistral.New()
		require.Error(t, err)
	})

	t.Run("with token", func(t *testing.T) {
		_, err := mistral.New(mistral.WithToken("test-key"))
		require.NoError(t, err)
	})
}

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/files", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "ocr", r.FormValue("purpose"))

		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		require.Equal(t, "statement.pdf", header.Filename)

		json.NewEncoder(w).Encode(map[string]any{
			"id": "file-abc123",
		})
	}))

	defer server.Close()

	client, err := mistral.New(mistral.WithToken("test-key"), mistral.WithURL(server.URL))
	require.NoError(t, err)

	file := provider.File{
		Name: "statement.pdf",

		Content:     []byte("%PDF-1.4"),
		ContentType: "application/pdf",
	}

	id, err := client.Upload(context.Background(), file, mistral.PurposeOCR)
	require.NoError(t, err)
	require.Equal(t, "file-abc123", id)
}

func TestUploadMissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{})
	}))

	defer server.Close()

	client, err := mistral.New(mistral.WithToken("test-key"), mistral.WithURL(server.URL))
	require.NoError(t, err)

	_, err = client.Upload(context.Background(), provider.File{Name: "a.pdf"}, mistral.PurposeOCR)
	require.Error(t, err)
}

func TestSignedURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "GET", r.Method)
		require.Equal(t, "/files/file-abc123/url", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"url": "https://storage.example.com/file-abc123?sig=xyz",
		})
	}))

	defer server.Close()

	client, err := mistral.New(mistral.WithToken("test-key"), mistral.WithURL(server.URL))
	require.NoError(t, err)

	url, err := client.SignedURL(context.Background(), "file-abc123")
	require.NoError(t, err)
	require.Equal(t, "https://storage.example.com/file-abc123?sig=xyz", url)
}

func TestSignedURLError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "file not found", http.StatusNotFound)
	}))

	defer server.Close()

	client, err := mistral.New(mistral.WithToken("test-key"), mistral.WithURL(server.URL))
	require.NoError(t, err)

	_, err = client.SignedURL(context.Background(), "file-missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "file not found")
}
