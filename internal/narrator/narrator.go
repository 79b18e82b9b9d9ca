// Package narrator produces flavour text for rooms. Narration is decoration only: it never changes what a room
// contains or what the detective has collected.
package narrator

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/detective-quest/internal/errors"
	"google.golang.org/api/option"
)

//go:embed prompts/describe_room.txt
var describeRoomPrompt string

var describeRoomTemplate = template.Must(template.New("describe_room").Parse(describeRoomPrompt))

var ErrEmptyResponse = errors.NewSentinel("no content returned from Gemini")

// Scene is what the narrator knows about the room being entered.
type Scene struct {
	CaseTitle   string
	Room        string
	Description string
	Clue        string
}

type Narrator interface {
	DescribeRoom(ctx context.Context, scene Scene) (string, error)
}

// Static narrates with the room description from the case file.
type Static struct{}

func (Static) DescribeRoom(_ context.Context, scene Scene) (string, error) {
	return scene.Description, nil
}

// Gemini asks a Gemini model to describe rooms.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *slog.Logger
}

func NewGemini(ctx context.Context, apiKey string, logger *slog.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}

	model := client.GenerativeModel("gemini-2.5-flash")
	return &Gemini{
		client: client,
		model:  model,
		logger: logger.With("source", "GeminiNarrator"),
	}, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

func (g *Gemini) DescribeRoom(ctx context.Context, scene Scene) (string, error) {
	prompt, err := renderPrompt(scene)
	if err != nil {
		return "", err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.Wrap(err, "generate room description", slog.String("room", scene.Room))
	}
	text, err := responseText(resp)
	if err != nil {
		return "", errors.Wrap(err, "read room description", slog.String("room", scene.Room))
	}
	g.logger.DebugContext(ctx, "room described", slog.String("room", scene.Room), slog.Int("chars", len(text)))
	return text, nil
}

func renderPrompt(scene Scene) (string, error) {
	var buf bytes.Buffer
	if err := describeRoomTemplate.Execute(&buf, scene); err != nil {
		return "", errors.Wrap(err, "render describe_room prompt")
	}
	return buf.String(), nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}

// New returns a Gemini narrator when apiKey is set and a Static one otherwise. The returned close function
// releases the client and is never nil.
func New(ctx context.Context, apiKey string, logger *slog.Logger) (Narrator, func() error, error) {
	if apiKey == "" {
		logger.Info("narration from case file", slog.String("reason", "no Gemini API key"))
		return Static{}, func() error { return nil }, nil
	}
	g, err := NewGemini(ctx, apiKey, logger)
	if err != nil {
		return nil, nil, err
	}
	return g, g.Close, nil
}
