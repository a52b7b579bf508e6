package respond

import (
	"context"
	"fmt"

	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/llm"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/twin"
)

// HistoryWindow is how many recent turns ground the generation call.
const HistoryWindow = 6

// Apology is returned in place of a generated reply when the generation call
// fails. Unlike the sentiment/triage fallbacks it is user-visible by design:
// the customer must see that a degraded response occurred.
const Apology = "I apologize, but I'm experiencing technical difficulties. Please try again or contact our support team."

const systemPromptFormat = `You are VW NexaServe AI, an intelligent after-sales assistant for Volkswagen India.

CUSTOMER CONTEXT:
- Vehicle: %s (%d)
- Vehicle ID: %s
- Mileage: %d km
- Health Score: %d/100
- Last Service: %s
- Next Service Due: %s

YOUR CAPABILITIES:
1. Diagnose vehicle issues using digital twin data
2. Provide instant solutions for common problems
3. Schedule service appointments
4. Explain technical issues in simple language
5. Offer AR remote assistance when needed
6. Access verified service history

RESPONSE GUIDELINES:
- Be empathetic and professional
- Provide specific, actionable solutions
- Reference the vehicle's actual data when relevant
- Offer to escalate to human expert if issue is complex
- Suggest AR guidance for visual problems
- Always prioritize customer safety

Respond conversationally and helpfully to the customer's query.`

type Responder struct {
	client llm.Client
}

func NewResponder(client llm.Client) *Responder {
	return &Responder{client: client}
}

// Generate obtains a grounded natural-language reply. history must already be
// trimmed to the last HistoryWindow turns by the caller; it is sent verbatim
// between the grounding system prompt and the new utterance.
func (r *Responder) Generate(ctx context.Context, utterance string, history []llm.Message, state twin.VehicleState) (string, error) {
	msgs := make([]llm.Message, 0, len(history)+2)
	msgs = append(msgs, llm.Message{Role: "system", Content: SystemPrompt(state)})
	msgs = append(msgs, history...)
	msgs = append(msgs, llm.Message{Role: "user", Content: utterance})

	resp, err := r.client.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("response generation failed: %w", err)
	}
	if resp.Content == "" {
		return "", fmt.Errorf("response generation returned empty text")
	}
	return resp.Content, nil
}

func SystemPrompt(state twin.VehicleState) string {
	return fmt.Sprintf(systemPromptFormat,
		state.Model, state.Year,
		state.VehicleID,
		state.Mileage,
		state.HealthScore,
		state.LastService.Format("2006-01-02"),
		state.NextServiceDue.Format("2006-01-02"),
	)
}

// TrimHistory returns the last HistoryWindow messages.
func TrimHistory(history []llm.Message) []llm.Message {
	if len(history) <= HistoryWindow {
		return history
	}
	return history[len(history)-HistoryWindow:]
}
