package mistral

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

type Client struct {
	client *http.Client

	url   string
	token string
}

func New(options ...Option) (*Client, error) {
	cfg := &Config{
		url: "https://api.mistral.ai/v1/",

		client: http.DefaultClient,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.token == "" {
		return nil, errors.New("missing mistral api key")
	}

	c := &Client{
		client: cfg.client,

		url:   strings.TrimRight(cfg.url, "/"),
		token: cfg.token,
	}

	return c, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, convertError(resp)
	}

	return resp, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
