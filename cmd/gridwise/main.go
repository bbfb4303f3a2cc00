// Command gridwise is a playground for the widget-intent parser. It
// reads prompts from its arguments or stdin and runs them through the
// same two-stage fallback a dashboard frontend would: utility parser
// first, data-widget parser on a soft miss. Clarification questions are
// asked inline and answered via HandleClarification.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gridwise-ai/gridwise/pkg/intent"
	"github.com/gridwise-ai/gridwise/pkg/widget"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	askStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Italic(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptMark  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> ")
)

func main() {
	logLevel := flag.String("log-level", "warn", "debug, info, warn or error")
	jsonOut := flag.Bool("json", false, "print raw JSON instead of styled output")
	flag.Parse()

	logger := newLogger(*logLevel)
	defer func() { _ = logger.Sync() }()

	in := bufio.NewScanner(os.Stdin)

	if args := flag.Args(); len(args) > 0 {
		parseOne(strings.Join(args, " "), in, logger, *jsonOut)
		return
	}

	fmt.Print(promptMark)
	for in.Scan() {
		if prompt := strings.TrimSpace(in.Text()); prompt != "" {
			parseOne(prompt, in, logger, *jsonOut)
		}
		fmt.Print(promptMark)
	}
}

func parseOne(prompt string, in *bufio.Scanner, logger *zap.Logger, jsonOut bool) {
	start := time.Now()

	ur := intent.ParseUtilityIntent(prompt)
	switch {
	case ur.Success:
		logger.Info("utility intent parsed",
			zap.String("utilityType", string(ur.Definition.UtilityType)),
			zap.Duration("took", time.Since(start)),
		)
		render("utility widget", ur.Definition, jsonOut)
		return
	case ur.Clarification != "":
		def := askClarification(prompt, ur.Clarification, in)
		if def == nil {
			fmt.Println(errStyle.Render("could not resolve the clarification, giving up"))
			return
		}
		render("utility widget", def, jsonOut)
		return
	}

	// Soft miss: fall through to the data-widget parser.
	wr := intent.ParseWidgetIntent(prompt)
	if !wr.Success {
		logger.Warn("widget parse failed", zap.String("error", wr.Error))
		fmt.Println(errStyle.Render(wr.Error))
		return
	}
	logger.Info("data widget parsed",
		zap.String("source", string(wr.Definition.Source)),
		zap.String("viz", string(wr.Definition.Viz)),
		zap.Duration("took", time.Since(start)),
	)
	render("data widget", wr.Definition, jsonOut)
}

func askClarification(prompt, question string, in *bufio.Scanner) *widget.UtilityDefinition {
	fmt.Println(askStyle.Render(question))
	fmt.Print(promptMark)
	if !in.Scan() {
		return nil
	}
	return intent.HandleClarification(prompt, question, strings.TrimSpace(in.Text()))
}

func render(kind string, def any, jsonOut bool) {
	body, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		fmt.Println(errStyle.Render(err.Error()))
		return
	}
	if jsonOut {
		fmt.Println(string(body))
		return
	}
	fmt.Println(headerStyle.Render(kind))
	fmt.Println(string(body))
}

func newLogger(level string) *zap.Logger {
	lvl := zapcore.WarnLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "info":
		lvl = zapcore.InfoLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	return logger
}
