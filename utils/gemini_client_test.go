package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/raushankrgupta/trymeup/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	parts []genai.Part
	resp  *genai.GenerateContentResponse
	err   error
}

func (f *fakeModel) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.parts = parts
	return f.resp, f.err
}

func respondWith(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

var (
	selfImage   = EncodeDataURL("image/jpeg", []byte("self"))
	outfitImage = EncodeDataURL("image/webp", []byte("outfit"))
)

func TestGeminiClient_Generate(t *testing.T) {
	model := &fakeModel{resp: respondWith(genai.Text("here you go"), genai.Blob{MIMEType: "image/png", Data: []byte("result")})}
	client := &GeminiClient{imageModel: model}

	img, err := client.Generate(context.Background(), selfImage, outfitImage)
	require.NoError(t, err)
	assert.Equal(t, EncodeDataURL("image/png", []byte("result")), img)

	require.Len(t, model.parts, 3)
	assert.Equal(t, genai.Text(tryOnPrompt), model.parts[0])
	assert.Equal(t, genai.ImageData("jpeg", []byte("self")), model.parts[1])
	assert.Equal(t, genai.ImageData("webp", []byte("outfit")), model.parts[2])
}

func TestGeminiClient_GenerateErrors(t *testing.T) {
	client := &GeminiClient{imageModel: &fakeModel{resp: respondWith(genai.Text("sorry, text only"))}}
	_, err := client.Generate(context.Background(), selfImage, outfitImage)
	assert.ErrorIs(t, err, ErrNoImageGenerated)

	client = &GeminiClient{imageModel: &fakeModel{resp: &genai.GenerateContentResponse{}}}
	_, err = client.Generate(context.Background(), selfImage, outfitImage)
	assert.ErrorIs(t, err, ErrNoImageGenerated)

	upstream := errors.New("googleapi: Error 429")
	client = &GeminiClient{imageModel: &fakeModel{err: upstream}}
	_, err = client.Generate(context.Background(), selfImage, outfitImage)
	assert.ErrorIs(t, err, upstream)

	_, err = client.Generate(context.Background(), session.EncodedImage("nope"), outfitImage)
	assert.ErrorIs(t, err, ErrInvalidDataURL)
}

func TestGeminiClient_Feedback(t *testing.T) {
	model := &fakeModel{resp: respondWith(genai.Text(" Great fit! "), genai.Text("The color suits you."))}
	client := &GeminiClient{textModel: model}

	text, err := client.Feedback(context.Background(), selfImage, outfitImage)
	require.NoError(t, err)
	assert.Equal(t, "Great fit! The color suits you.", text)
	assert.Equal(t, genai.Text(feedbackPrompt), model.parts[0])

	client = &GeminiClient{textModel: &fakeModel{resp: respondWith()}}
	_, err = client.Feedback(context.Background(), selfImage, outfitImage)
	assert.Error(t, err)
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "image", "text")
	assert.Error(t, err)
}
