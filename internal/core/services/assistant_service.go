package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"gu-notepro/internal/core/domain"
)

const (
	assistantEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	assistantModel    = "gemini-3-flash-preview"
)

// AssistantService is the boundary to the generative-text backend. Each
// capability is a single request/response completion; no session state
// is retained between calls. Any failure collapses to
// domain.ErrAssistantUnavailable.
type AssistantService struct {
	apiKey string
	client *http.Client
}

// NewAssistantService creates a new assistant service. The service is
// disabled (every call fails with ErrAssistantUnavailable) when no API
// key is configured.
func NewAssistantService() *AssistantService {
	return &AssistantService{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// IsEnabled checks if the assistant is configured
func (s *AssistantService) IsEnabled() bool {
	return s.apiKey != ""
}

type generatePart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *inlineDataPart `json:"inlineData,omitempty"`
}

type inlineDataPart struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate performs one text completion call
func (s *AssistantService) generate(ctx context.Context, parts []generatePart) (string, error) {
	if !s.IsEnabled() {
		return "", domain.ErrAssistantUnavailable
	}

	body, err := json.Marshal(generateRequest{Contents: []generateContent{{Parts: parts}}})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", assistantEndpoint, assistantModel, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: upstream status %d", domain.ErrAssistantUnavailable, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty completion", domain.ErrAssistantUnavailable)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// RefineContent rewrites a draft narrative in the formal institutional register
func (s *AssistantService) RefineContent(ctx context.Context, subject, content string) (string, error) {
	prompt := fmt.Sprintf(`As an administrative assistant at %s, refine the following note sheet content to be more formal, professional, and grammatically correct. Maintain the official university tone.
Subject: %s
Original Content: %s`, domain.UniversityName, subject, content)

	text, err := s.generate(ctx, []generatePart{{Text: prompt}})
	if err != nil {
		return "", err
	}
	return text, nil
}

// RemarkHint selects which remark template the assistant should draft
type RemarkHint string

const (
	HintForward RemarkHint = "forward"
	HintReturn  RemarkHint = "return"
)

// SuggestRemark drafts a short remark for a forward or return action
func (s *AssistantService) SuggestRemark(ctx context.Context, noteContent string, hint RemarkHint) (string, error) {
	var prompt string
	switch hint {
	case HintReturn:
		prompt = "Suggest a constructive and professional remark for returning this note sheet for review/corrections."
	case HintForward:
		prompt = "Suggest a brief, professional administrative remark for forwarding this note sheet for further approval."
	default:
		return "", fmt.Errorf("%w: hint %q", domain.ErrValidation, hint)
	}

	if len(noteContent) > 500 {
		noteContent = noteContent[:500]
	}
	return s.generate(ctx, []generatePart{{Text: prompt + "\nContext: " + noteContent}})
}

// ChatMessage is one turn of the support chat
type ChatMessage struct {
	Role string `json:"role"` // "user" or "ai"
	Text string `json:"text"`
}

// Chat answers a support query with optional chat history and an
// optional inline image (data URL).
func (s *AssistantService) Chat(ctx context.Context, query string, history []ChatMessage, imageData string) (string, error) {
	var sb strings.Builder
	for _, m := range history {
		if m.Role == "user" {
			sb.WriteString("Staff: ")
		} else {
			sb.WriteString("Assistant: ")
		}
		sb.WriteString(m.Text)
		sb.WriteString("\n")
	}

	system := fmt.Sprintf(`You are the Gondwana NotePro Digital Assistant for %s.
Help university staff with the note sheet registry, explain the "Green Sheet" administrative workflows, and assist in drafting official dispatches.
If the user provides an image, analyze it for statutory relevance or provide feedback on administrative forms/drafts visible in the image.
Be professional, formal, and scholarly, and maintain the dignity of the university.

Current Chat History:
%s`, domain.UniversityName, sb.String())

	parts := []generatePart{{Text: system + "\n\nStaff Query: " + query}}
	if imageData != "" {
		mime, data, ok := splitDataURL(imageData)
		if !ok {
			return "", fmt.Errorf("%w: malformed image payload", domain.ErrValidation)
		}
		parts = append(parts, generatePart{InlineData: &inlineDataPart{MimeType: mime, Data: data}})
	}
	return s.generate(ctx, parts)
}

// splitDataURL splits "data:<mime>;base64,<payload>" into mime and payload
func splitDataURL(dataURL string) (mime, payload string, ok bool) {
	head, payload, found := strings.Cut(dataURL, ",")
	if !found {
		return "", "", false
	}
	head = strings.TrimPrefix(head, "data:")
	mime, _, _ = strings.Cut(head, ";")
	if mime == "" || payload == "" {
		return "", "", false
	}
	return mime, payload, true
}
