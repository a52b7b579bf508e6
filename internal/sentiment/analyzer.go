package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/llm"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type Emotion string

const (
	EmotionSatisfied  Emotion = "satisfied"
	EmotionNeutral    Emotion = "neutral"
	EmotionConcerned  Emotion = "concerned"
	EmotionFrustrated Emotion = "frustrated"
	EmotionAngry      Emotion = "angry"
)

// Reading is one emotional assessment of a single user utterance. It is
// immutable once produced; the session appends it to its sentiment history.
type Reading struct {
	Timestamp        time.Time `json:"timestamp"`
	Sentiment        Sentiment `json:"sentiment"`
	Emotion          Emotion   `json:"emotion"`
	FrustrationScore int       `json:"frustration_score"`
	KeyConcerns      []string  `json:"key_concerns"`
	EscalationNeeded bool      `json:"escalation_needed"`
}

// readingPayload is the wire shape the model is asked to produce.
type readingPayload struct {
	Sentiment        string   `json:"sentiment" jsonschema:"enum=positive,enum=neutral,enum=negative"`
	Emotion          string   `json:"emotion" jsonschema:"enum=satisfied,enum=neutral,enum=concerned,enum=frustrated,enum=angry"`
	FrustrationScore int      `json:"frustration_score"`
	KeyConcerns      []string `json:"key_concerns"`
	EscalationNeeded bool     `json:"escalation_needed"`
}

const systemPrompt = `You are an emotional intelligence AI specialized in analyzing customer sentiment in automotive service contexts.
Analyze the user's message and respond ONLY with a JSON object containing:
{
    "sentiment": "positive" | "neutral" | "negative",
    "emotion": "satisfied" | "neutral" | "concerned" | "frustrated" | "angry",
    "frustration_score": 0-100,
    "key_concerns": ["list", "of", "concerns"],
    "escalation_needed": true/false
}`

// Fallback is the defined reading for "classifier unavailable". It is not an
// error path: the orchestrator substitutes it whenever Analyze fails.
func Fallback(now time.Time) Reading {
	return Reading{
		Timestamp:        now,
		Sentiment:        SentimentNeutral,
		Emotion:          EmotionNeutral,
		FrustrationScore: 0,
		KeyConcerns:      []string{},
		EscalationNeeded: false,
	}
}

type Analyzer struct {
	client llm.Client
	schema []byte
	now    func() time.Time
}

func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{
		client: client,
		schema: llm.SchemaFor[readingPayload](),
		now:    time.Now,
	}
}

// Analyze maps free text to a structured emotional reading. The error is the
// two-outcome boundary of the client call; callers decide on Fallback.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Reading, error) {
	msgs := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: text},
	}

	var (
		resp llm.Response
		err  error
	)
	if sg, ok := a.client.(llm.StructuredGenerator); ok {
		resp, err = sg.GenerateJSON(ctx, msgs, "sentiment_reading", a.schema)
	} else {
		resp, err = a.client.Generate(ctx, msgs)
	}
	if err != nil {
		return Reading{}, fmt.Errorf("sentiment call failed: %w", err)
	}

	var p readingPayload
	if err := json.Unmarshal([]byte(resp.Content), &p); err != nil {
		return Reading{}, fmt.Errorf("sentiment response is not valid JSON: %w", err)
	}
	r, err := p.toReading(a.now())
	if err != nil {
		return Reading{}, err
	}
	return r, nil
}

func (p readingPayload) toReading(now time.Time) (Reading, error) {
	switch Sentiment(p.Sentiment) {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
	default:
		return Reading{}, fmt.Errorf("sentiment response has invalid sentiment %q", p.Sentiment)
	}
	switch Emotion(p.Emotion) {
	case EmotionSatisfied, EmotionNeutral, EmotionConcerned, EmotionFrustrated, EmotionAngry:
	default:
		return Reading{}, fmt.Errorf("sentiment response has invalid emotion %q", p.Emotion)
	}
	score := p.FrustrationScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	concerns := p.KeyConcerns
	if concerns == nil {
		concerns = []string{}
	}
	return Reading{
		Timestamp:        now,
		Sentiment:        Sentiment(p.Sentiment),
		Emotion:          Emotion(p.Emotion),
		FrustrationScore: score,
		KeyConcerns:      concerns,
		EscalationNeeded: p.EscalationNeeded,
	}, nil
}
