package ai

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{
			"nil content is skipped",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: nil},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("hello")}}},
			}},
			"hello",
		},
		{
			"text from several candidates is joined",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("one "), genai.Text("two ")}}},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("three")}}},
			}},
			"one two three",
		},
		{
			"non-text parts are ignored",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{
					genai.Blob{MIMEType: "image/png", Data: []byte{0x89}},
					genai.Text("caption"),
				}}},
			}},
			"caption",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, extractText(tc.resp))
		})
	}
}
