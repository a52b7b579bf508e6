package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/analytics"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/arassist"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/booking"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/config"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/customers"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/ledger"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/llm"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/respond"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/scheduler"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/sentiment"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/session"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/storage"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/triage"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/twin"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	factory := &llm.Factory{
		OpenaiAPIKey:       cfg.OpenAIAPIKey,
		OpenaiBaseURL:      cfg.OpenAIBaseURL,
		OpenRouterReferrer: cfg.OpenRouterReferrer,
		OpenRouterTitle:    cfg.OpenRouterTitle,
		YandexOAuthToken:   cfg.YandexOAuthToken,
		YandexFolderID:     cfg.YandexFolderID,
	}
	client, err := factory.CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	var rec storage.Recorder
	if cfg.LogFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.LogFilePath)
		if err != nil {
			log.Printf("failed to init file recorder: %v", err)
		} else {
			rec = fr
		}
	}

	var custRepo customers.Repository
	if cfg.CustomersFilePath != "" {
		cr, err := customers.NewFileRepository(cfg.CustomersFilePath)
		if err != nil {
			log.Printf("failed to init customers repo: %v", err)
		} else {
			custRepo = cr
		}
	}
	custSvc, err := customers.NewWithRepo(custRepo)
	if err != nil {
		log.Fatalf("failed to init customers: %v", err)
	}

	seed := cfg.TwinSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	serviceLedger := ledger.New()
	planner := booking.NewPlanner(serviceLedger, rng)

	orch := session.NewOrchestrator(
		sentiment.NewAnalyzer(client),
		triage.NewClassifier(client),
		respond.NewResponder(client),
		cfg.LLMTimeout,
	)
	if rec != nil {
		orch.SetRecorder(rec)
	}

	sessions := session.NewManager()

	sched := scheduler.New()
	if rec != nil {
		sched.SetReportFunction(func(ctx context.Context) error {
			events, err := rec.LoadInteractions()
			if err != nil {
				return err
			}
			stats := analytics.AnalyzeDailyLogs(events, time.Now().UTC())
			log.Print(stats.GenerateReportSummary())
			return nil
		})
	}
	sched.SetSweepFunction(func() int { return sessions.SweepIdle(cfg.SessionMaxIdle) })
	if err := sched.Start(); err != nil {
		log.Printf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	runConsole(orch, sessions, custSvc, serviceLedger, planner, rng)
}

// runConsole is the thinnest possible front: a line-oriented chat that logs
// the customer in, feeds utterances to the orchestrator and exposes the side
// views (alerts, ledger, booking, AR) as slash commands.
func runConsole(orch *session.Orchestrator, sessions *session.Manager, custSvc *customers.Service, serviceLedger *ledger.Ledger, planner *booking.Planner, rng *rand.Rand) {
	in := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	fmt.Println("🚗 VW NexaServe AI — after-sales assistant")
	sess := login(in, sessions, custSvc, rng)
	if sess == nil {
		return
	}
	fmt.Println("Type a message, or /alerts /history /book <service> /ar /logout /quit")

	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		sessions.Touch(sess.ID)

		switch {
		case line == "/quit":
			return

		case line == "/logout":
			if err := custSvc.Upsert(customers.Customer{VehicleReg: sess.VehicleReg, Name: sess.CustomerName, LastSeen: time.Now()}); err != nil {
				log.Printf("failed to persist customer: %v", err)
			}
			sess.Logout()
			sessions.Remove(sess.ID)
			fmt.Println("Logged out.")
			sess = login(in, sessions, custSvc, rng)
			if sess == nil {
				return
			}

		case line == "/alerts":
			alerts := twin.Alerts(sess.Vehicle, time.Now())
			if len(alerts) == 0 {
				fmt.Println("✅ No immediate maintenance required.")
			}
			for _, a := range alerts {
				fmt.Printf("⚠️  [%s] %s: %s (predicted %s)\n", a.Severity, a.Component, a.Message, a.PredictedDate.Format("2006-01-02"))
			}

		case line == "/history":
			recs := serviceLedger.Records()
			if len(recs) == 0 {
				fmt.Println("No service records yet.")
			}
			for _, r := range recs {
				fmt.Printf("📋 %s | %s | %s | hash %s\n", r.Timestamp.Format("2006-01-02 15:04"), r.ServiceType, r.Technician, r.IntegrityHash)
			}

		case strings.HasPrefix(line, "/book"):
			serviceType := strings.TrimSpace(strings.TrimPrefix(line, "/book"))
			if serviceType == "" {
				serviceType = "Regular Maintenance"
			}
			slot := planner.Schedule(sess.Vehicle.VehicleID, time.Now().AddDate(0, 0, 3), serviceType)
			fmt.Printf("✅ Booked %s: %s on %s at %s, est. ₹%d\n",
				slot.BookingID, serviceType, slot.Date.Format("2006-01-02"), slot.Time, slot.EstimatedCostINR)

		case line == "/ar":
			ar := arassist.Start()
			fmt.Printf("🎥 AR session %s with %s (%s)\n", ar.ID, ar.Expert, ar.ConnectionQuality)
			rec := arassist.End(ar, serviceLedger, sess.Vehicle.VehicleID)
			fmt.Printf("AR session ended, diagnosis recorded (%s).\n", rec.IntegrityHash)

		default:
			res, err := orch.Process(ctx, sess, line)
			if err != nil {
				log.Printf("turn failed: %v", err)
				continue
			}
			fmt.Printf("🤖 %s\n", res.Reply)
			if res.Escalated {
				fmt.Println("🚨 A senior service advisor has been notified.")
			}
		}
	}
}

func login(in *bufio.Scanner, sessions *session.Manager, custSvc *customers.Service, rng *rand.Rand) *session.Session {
	for {
		fmt.Print("Name: ")
		if !in.Scan() {
			return nil
		}
		name := strings.TrimSpace(in.Text())
		fmt.Print("Vehicle Reg. No.: ")
		if !in.Scan() {
			return nil
		}
		reg := strings.TrimSpace(in.Text())

		sess := sessions.Create()
		if err := sess.Login(name, reg, twin.Generate(rng, time.Now())); err != nil {
			sessions.Remove(sess.ID)
			fmt.Printf("Login failed: %v\n", err)
			continue
		}
		if custSvc.IsKnown(reg) {
			fmt.Printf("Welcome back, %s! Vehicle %s (health %d/100)\n", name, sess.Vehicle.VehicleID, sess.Vehicle.HealthScore)
		} else {
			fmt.Printf("Welcome, %s!\n", name)
		}
		if err := custSvc.Upsert(customers.Customer{VehicleReg: reg, Name: name, LastSeen: time.Now()}); err != nil {
			log.Printf("failed to persist customer: %v", err)
		}
		return sess
	}
}
