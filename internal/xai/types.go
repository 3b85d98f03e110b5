package xai

// Fixed model identifiers and the system instruction sent on every chat call.
const (
	ChatModel    = "grok-2-latest"
	ImageModel   = "grok-2-image"
	systemPrompt = "You are Grok, respond to the user's prompt."
)

// Message is one role-tagged entry in a chat request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []Message `json:"messages"`
	Model    string    `json:"model"`
}

type imageRequest struct {
	Prompt         string `json:"prompt"`
	Model          string `json:"model"`
	ResponseFormat string `json:"response_format"`
	N              int    `json:"n"`
}

// Image is the result of a generation call. RevisedPrompt is the prompt the
// model actually rendered, when the API reports one.
type Image struct {
	URL           string
	RevisedPrompt string
}

func newChatRequest(prompt string) chatRequest {
	return chatRequest{
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Model: ChatModel,
	}
}

func newImageRequest(prompt string) imageRequest {
	return imageRequest{
		Prompt:         prompt,
		Model:          ImageModel,
		ResponseFormat: "url",
		N:              1,
	}
}
