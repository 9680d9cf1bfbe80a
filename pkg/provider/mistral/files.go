package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"
)

// PurposeOCR tags an upload for the provider's document OCR ingestion path.
const PurposeOCR = "ocr"

// Upload stores a file with the provider and returns its opaque identifier.
// The provider owns the asset's lifecycle; nothing is deleted here.
func (c *Client) Upload(ctx context.Context, file provider.File, purpose string) (string, error) {
	var body bytes.Buffer

	w := multipart.NewWriter(&body)

	if err := w.WriteField("purpose", purpose); err != nil {
		return "", err
	}

	part, err := w.CreateFormFile("file", file.Name)

	if err != nil {
		return "", err
	}

	if _, err := part.Write(file.Content); err != nil {
		return "", err
	}

	if err := w.Close(); err != nil {
		return "", err
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", c.url+"/files", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.do(req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	var response UploadResponse

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", err
	}

	if response.ID == "" {
		return "", errors.New("upload returned no file id")
	}

	return response.ID, nil
}

// SignedURL returns a time-limited HTTPS URL granting read access to an
// uploaded file without further authentication.
func (c *Client) SignedURL(ctx context.Context, fileID string) (string, error) {
	req, _ := http.NewRequestWithContext(ctx, "GET", c.url+"/files/"+fileID+"/url", nil)

	resp, err := c.do(req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	var response SignedURLResponse

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", err
	}

	if response.URL == "" {
		return "", errors.New("signed url response contained no url")
	}

	return response.URL, nil
}
