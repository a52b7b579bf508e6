package triage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/llm"
)

type Category string

const (
	CategoryMechanical     Category = "mechanical"
	CategoryElectrical     Category = "electrical"
	CategoryMaintenance    Category = "maintenance"
	CategoryWarranty       Category = "warranty"
	CategoryGeneralInquiry Category = "general_inquiry"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type Action string

const (
	ActionAIResolution  Action = "ai_resolution"
	ActionARAssistance  Action = "ar_assistance"
	ActionServiceCenter Action = "service_center"
	ActionEmergency     Action = "emergency"
)

// Classification is the structured service triage of one user utterance.
// The session keeps only the latest one; there is no classification history.
type Classification struct {
	Category                   Category `json:"category"`
	Severity                   Severity `json:"severity"`
	RequiresPhysicalInspection bool     `json:"requires_physical_inspection"`
	SuggestedAction            Action   `json:"suggested_action"`
	EstimatedResolutionTime    string   `json:"estimated_resolution_time"`
}

type classificationPayload struct {
	Category                   string `json:"category" jsonschema:"enum=mechanical,enum=electrical,enum=maintenance,enum=warranty,enum=general_inquiry"`
	Severity                   string `json:"severity" jsonschema:"enum=low,enum=medium,enum=high,enum=critical"`
	RequiresPhysicalInspection bool   `json:"requires_physical_inspection"`
	SuggestedAction            string `json:"suggested_action" jsonschema:"enum=ai_resolution,enum=ar_assistance,enum=service_center,enum=emergency"`
	EstimatedResolutionTime    string `json:"estimated_resolution_time"`
}

const systemPrompt = `Classify the automotive service issue into one of these categories.
Respond ONLY with a JSON object:
{
    "category": "mechanical" | "electrical" | "maintenance" | "warranty" | "general_inquiry",
    "severity": "low" | "medium" | "high" | "critical",
    "requires_physical_inspection": true/false,
    "suggested_action": "ai_resolution" | "ar_assistance" | "service_center" | "emergency",
    "estimated_resolution_time": "minutes/hours/days"
}`

// Fallback is the defined classification for "classifier unavailable".
func Fallback() Classification {
	return Classification{
		Category:                   CategoryGeneralInquiry,
		Severity:                   SeverityLow,
		RequiresPhysicalInspection: false,
		SuggestedAction:            ActionAIResolution,
		EstimatedResolutionTime:    "minutes",
	}
}

type Classifier struct {
	client llm.Client
	schema []byte
}

func NewClassifier(client llm.Client) *Classifier {
	return &Classifier{
		client: client,
		schema: llm.SchemaFor[classificationPayload](),
	}
}

// Classify maps free text to a service classification. Independent of the
// sentiment analyzer; the orchestrator may run both concurrently over the
// same utterance.
func (c *Classifier) Classify(ctx context.Context, text string) (Classification, error) {
	msgs := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: text},
	}

	var (
		resp llm.Response
		err  error
	)
	if sg, ok := c.client.(llm.StructuredGenerator); ok {
		resp, err = sg.GenerateJSON(ctx, msgs, "issue_classification", c.schema)
	} else {
		resp, err = c.client.Generate(ctx, msgs)
	}
	if err != nil {
		return Classification{}, fmt.Errorf("triage call failed: %w", err)
	}

	var p classificationPayload
	if err := json.Unmarshal([]byte(resp.Content), &p); err != nil {
		return Classification{}, fmt.Errorf("triage response is not valid JSON: %w", err)
	}
	return p.toClassification()
}

func (p classificationPayload) toClassification() (Classification, error) {
	switch Category(p.Category) {
	case CategoryMechanical, CategoryElectrical, CategoryMaintenance, CategoryWarranty, CategoryGeneralInquiry:
	default:
		return Classification{}, fmt.Errorf("triage response has invalid category %q", p.Category)
	}
	switch Severity(p.Severity) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
	default:
		return Classification{}, fmt.Errorf("triage response has invalid severity %q", p.Severity)
	}
	switch Action(p.SuggestedAction) {
	case ActionAIResolution, ActionARAssistance, ActionServiceCenter, ActionEmergency:
	default:
		return Classification{}, fmt.Errorf("triage response has invalid action %q", p.SuggestedAction)
	}
	resolution := p.EstimatedResolutionTime
	if resolution == "" {
		resolution = "minutes"
	}
	return Classification{
		Category:                   Category(p.Category),
		Severity:                   Severity(p.Severity),
		RequiresPhysicalInspection: p.RequiresPhysicalInspection,
		SuggestedAction:            Action(p.SuggestedAction),
		EstimatedResolutionTime:    resolution,
	}, nil
}
