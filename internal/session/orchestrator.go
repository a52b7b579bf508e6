package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/llm"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/respond"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/sentiment"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/storage"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/triage"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/twin"
)

type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (sentiment.Reading, error)
}

type IssueClassifier interface {
	Classify(ctx context.Context, text string) (triage.Classification, error)
}

type ResponseGenerator interface {
	Generate(ctx context.Context, utterance string, history []llm.Message, state twin.VehicleState) (string, error)
}

// TurnResult is what one processed utterance produced.
type TurnResult struct {
	Reply          string
	Reading        sentiment.Reading
	Classification triage.Classification
	Escalated      bool
}

// Orchestrator runs the per-turn pipeline: sentiment and triage concurrently,
// escalation policy, grounded response generation, suffix annotation, then
// the session-state appends. External-call failures never surface to the
// caller: sentiment and triage degrade to their fixed fallbacks silently,
// generation degrades to the user-visible apology.
type Orchestrator struct {
	analyzer    SentimentAnalyzer
	classifier  IssueClassifier
	responder   ResponseGenerator
	recorder    storage.Recorder
	callTimeout time.Duration
	now         func() time.Time
}

func NewOrchestrator(analyzer SentimentAnalyzer, classifier IssueClassifier, responder ResponseGenerator, callTimeout time.Duration) *Orchestrator {
	return &Orchestrator{
		analyzer:    analyzer,
		classifier:  classifier,
		responder:   responder,
		callTimeout: callTimeout,
		now:         time.Now,
	}
}

// SetRecorder enables the optional interaction audit log.
func (o *Orchestrator) SetRecorder(r storage.Recorder) {
	o.recorder = r
}

// Process handles one user utterance. Exactly one user turn, one sentiment
// reading, one classification (latest wins) and one assistant turn are
// appended; the escalation flag can only go false to true.
func (o *Orchestrator) Process(ctx context.Context, sess *Session, utterance string) (TurnResult, error) {
	if !sess.Authenticated() {
		return TurnResult{}, ErrNotAuthenticated
	}

	// Sentiment and triage have no data dependency on each other.
	uctx, cancel := context.WithTimeout(ctx, o.callTimeout)
	var (
		wg      sync.WaitGroup
		reading sentiment.Reading
		readErr error
		cls     triage.Classification
		clsErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		reading, readErr = o.analyzer.Analyze(uctx, utterance)
	}()
	go func() {
		defer wg.Done()
		cls, clsErr = o.classifier.Classify(uctx, utterance)
	}()
	wg.Wait()
	cancel()

	if readErr != nil {
		log.Printf("session %s: sentiment unavailable, using fallback: %v", sess.ID, readErr)
		reading = sentiment.Fallback(o.now())
	}
	if clsErr != nil {
		log.Printf("session %s: triage unavailable, using fallback: %v", sess.ID, clsErr)
		cls = triage.Fallback()
	}

	history := respond.TrimHistory(sess.historyMessages())
	gctx, gcancel := context.WithTimeout(ctx, o.callTimeout)
	reply, genErr := o.responder.Generate(gctx, utterance, history, sess.Vehicle)
	gcancel()
	if genErr != nil {
		log.Printf("session %s: generation failed, sending apology: %v", sess.ID, genErr)
		reply = respond.Apology
	}
	reply = respond.Annotate(reply, cls, reading)

	sess.Turns = append(sess.Turns, Turn{Role: RoleUser, Content: utterance, Timestamp: reading.Timestamp})
	sess.SentimentHistory = append(sess.SentimentHistory, reading)
	sess.CurrentIssue = &cls
	if ShouldEscalate(reading) {
		sess.Escalated = true
	}
	sess.Turns = append(sess.Turns, Turn{Role: RoleAssistant, Content: reply, Timestamp: o.now()})

	if o.recorder != nil {
		if err := o.recorder.AppendInteraction(storage.Event{
			Timestamp:         reading.Timestamp,
			SessionID:         sess.ID,
			VehicleID:         sess.Vehicle.VehicleID,
			UserMessage:       utterance,
			AssistantResponse: reply,
			FrustrationScore:  reading.FrustrationScore,
			Escalated:         sess.Escalated,
		}); err != nil {
			log.Printf("session %s: failed to record interaction: %v", sess.ID, err)
		}
	}

	return TurnResult{
		Reply:          reply,
		Reading:        reading,
		Classification: cls,
		Escalated:      sess.Escalated,
	}, nil
}
