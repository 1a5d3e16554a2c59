package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Harpita-P/Kiro-InteractionKit/internal/app"
	"github.com/Harpita-P/Kiro-InteractionKit/internal/config"
	"github.com/Harpita-P/Kiro-InteractionKit/internal/log"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/actions"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/events"
)

func main() {
	fmt.Println("Kiro InteractionKit - gesture input demo")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log.Init(cfg.LogLevel)

	a, err := app.New(cfg)
	if err != nil {
		log.Error("failed to build pipeline", "error", err)
		os.Exit(1)
	}

	// With no rules configured, fall back to the bundled demo mappings so
	// the console shows action events out of the box.
	rules := cfg.Rules
	if len(rules) == 0 {
		rules = append(cursorDemoRules(), keyboardDemoRules()...)
		if _, err := a.Mapper().Apply(rules); err != nil {
			log.Error("failed to apply demo mappings", "error", err)
			os.Exit(1)
		}
	}

	logEvents(a.Bus(), rules)

	if err := a.Start(); err != nil {
		log.Error("failed to start pipeline", "error", err)
		os.Exit(1)
	}
	a.SetEnabled(true)
	log.Info("pipeline running",
		"device", cfg.Camera.DeviceID,
		"active_fps", cfg.Pipeline.ActiveFPS,
		"idle_fps", cfg.Pipeline.IdleFPS)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	fmt.Println("Shutting down")
	a.Stop()
}

// logEvents subscribes a console logger to every gesture topic and to each
// distinct action the rule set can publish.
func logEvents(bus *events.Bus, rules []actions.Rule) {
	for _, topic := range events.GestureTopics() {
		bus.Subscribe(topic, func(data events.Payload) {
			if hand, ok := data["hand"].(string); ok {
				log.Info("gesture", "topic", topic, "hand", hand)
				return
			}
			log.Info("gesture", "topic", topic)
		})
	}

	seen := make(map[string]bool)
	for _, r := range rules {
		if seen[r.Action] {
			continue
		}
		seen[r.Action] = true
		bus.Subscribe(r.Action, func(events.Payload) {
			log.Info("action", "topic", r.Action)
		})
	}
}
