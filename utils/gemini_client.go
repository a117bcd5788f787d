package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/raushankrgupta/trymeup/session"
	"google.golang.org/api/option"
)

const tryOnPrompt = `
Dress the person in the first image in the outfit shown in the second image.
Keep the person's face, body shape, pose and background exactly as they are.
Fit the garment naturally, with realistic folds, lighting and shadows.
Return only the edited photo.
`

const feedbackPrompt = `
The first image is a person and the second is an outfit they are trying on.
Give one short, upbeat styling comment (at most two sentences) about how the
outfit suits them. Plain text only.
`

var ErrNoImageGenerated = errors.New("model returned no image")

// contentModel is the part of *genai.GenerativeModel the client uses.
type contentModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClient implements the try-on generation and feedback services.
type GeminiClient struct {
	client     *genai.Client
	imageModel contentModel
	textModel  contentModel
}

// NewGeminiClient creates a client for the given image and text models.
func NewGeminiClient(ctx context.Context, apiKey, imageModel, textModel string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	text := client.GenerativeModel(textModel)
	text.SetTemperature(0.7)

	return &GeminiClient{
		client:     client,
		imageModel: client.GenerativeModel(imageModel),
		textModel:  text,
	}, nil
}

func (g *GeminiClient) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Generate produces the try-on image for a self photo and an outfit photo.
func (g *GeminiClient) Generate(ctx context.Context, self, outfit session.EncodedImage) (session.EncodedImage, error) {
	parts, err := promptParts(tryOnPrompt, self, outfit)
	if err != nil {
		return "", err
	}

	resp, err := g.imageModel.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	for _, part := range responseParts(resp) {
		if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
			mimeType := blob.MIMEType
			if mimeType == "" {
				mimeType = "image/png"
			}
			return EncodeDataURL(mimeType, blob.Data), nil
		}
	}
	return "", ErrNoImageGenerated
}

// Feedback returns a short styling comment for the pair.
func (g *GeminiClient) Feedback(ctx context.Context, self, outfit session.EncodedImage) (string, error) {
	parts, err := promptParts(feedbackPrompt, self, outfit)
	if err != nil {
		return "", err
	}

	resp, err := g.textModel.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate feedback: %w", err)
	}

	var sb strings.Builder
	for _, part := range responseParts(resp) {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	feedback := strings.TrimSpace(sb.String())
	if feedback == "" {
		return "", errors.New("no feedback generated")
	}
	return feedback, nil
}

func promptParts(prompt string, images ...session.EncodedImage) ([]genai.Part, error) {
	parts := []genai.Part{genai.Text(prompt)}
	for _, img := range images {
		mimeType, data, err := ParseDataURL(img)
		if err != nil {
			return nil, err
		}
		parts = append(parts, genai.ImageData(strings.TrimPrefix(mimeType, "image/"), data))
	}
	return parts, nil
}

func responseParts(resp *genai.GenerateContentResponse) []genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

var (
	_ session.Generator        = (*GeminiClient)(nil)
	_ session.FeedbackProvider = (*GeminiClient)(nil)
)
