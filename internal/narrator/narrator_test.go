package narrator

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/detective-quest/internal/logging"
)

func TestRenderPrompt(t *testing.T) {
	prompt, err := renderPrompt(Scene{
		CaseTitle:   "The Manor",
		Room:        "Library",
		Description: "Shelves to the ceiling.",
		Clue:        "The murder weapon is a bronze candlestick.",
	})
	require.NoError(t, err)
	require.Contains(t, prompt, `set in "The Manor"`)
	require.Contains(t, prompt, "entered the Library.")
	require.Contains(t, prompt, "What is known about the room: Shelves to the ceiling.")
	require.Contains(t, prompt, "bronze candlestick")

	prompt, err = renderPrompt(Scene{CaseTitle: "The Manor", Room: "Closet"})
	require.NoError(t, err)
	require.NotContains(t, prompt, "What is known about the room")
	require.NotContains(t, prompt, "will find this clue")
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr bool
	}{
		{name: "nil response", resp: nil, wantErr: true},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, wantErr: true},
		{
			name: "no content",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			wantErr: true,
		},
		{
			name: "joins text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text("  Dust hangs "), genai.Text("in the air.\n")}},
			}}},
			want: "Dust hangs in the air.",
		},
		{
			name: "blank text",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text("   ")}},
			}}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := responseText(tt.resp)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrEmptyResponse)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNew_WithoutKeyIsStatic(t *testing.T) {
	n, closeFn, err := New(context.Background(), "", logging.Discard())
	require.NoError(t, err)
	require.IsType(t, Static{}, n)
	require.NoError(t, closeFn())

	text, err := n.DescribeRoom(context.Background(), Scene{Room: "Kitchen", Description: "Copper pans."})
	require.NoError(t, err)
	require.Equal(t, "Copper pans.", text)
}
