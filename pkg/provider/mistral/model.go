package mistral

type UploadResponse struct {
	ID string `json:"id"`

	Filename string `json:"filename"`
	Purpose  string `json:"purpose"`

	Bytes int64 `json:"bytes"`
}

type SignedURLResponse struct {
	URL string `json:"url"`
}

type ChatRequest struct {
	Model string `json:"model"`

	Messages []ChatMessage `json:"messages"`

	MaxTokens   *int     `json:"max_tokens,omitempty"`
	Temperature *float32 `json:"temperature,omitempty"`

	Stop []string `json:"stop,omitempty"`

	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ChatMessage struct {
	Role string `json:"role"`

	// Content is either a plain string or an ordered list of ContentChunk.
	Content any `json:"content"`
}

type ContentChunk struct {
	Type string `json:"type"`

	Text string `json:"text,omitempty"`

	DocumentURL string `json:"document_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatResponse struct {
	ID    string `json:"id"`
	Model string `json:"model"`

	Choices []ChatChoice `json:"choices"`

	Usage *ChatUsage `json:"usage"`
}

type ChatChoice struct {
	Index int `json:"index"`

	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`

	FinishReason string `json:"finish_reason"`
}

type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
