// Command genlogs emits random JSON log lines for demos and manual testing:
//
//	genlogs -count 200 | prettylog
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

var messages = []string{
	"Application started",
	"Processing request",
	"Database query executed",
	"Cache miss",
	"Cache hit",
	"Request completed",
	"Connection established",
	"Authentication successful",
	"File processed",
	"Task completed",
}

var levels = []string{"INFO", "WARN", "ERROR", "DEBUG"}

type logLine struct {
	Timestamp  int64           `json:"timestamp"`
	Level      string          `json:"level"`
	Message    string          `json:"message"`
	RequestID  string          `json:"request_id"`
	DurationMS int             `json:"duration_ms,omitempty"`
	UserID     string          `json:"user_id,omitempty"`
	Context    *requestContext `json:"context,omitempty"`
	Stacktrace string          `json:"stacktrace,omitempty"`
}

type requestContext struct {
	Region  string `json:"region"`
	Attempt int    `json:"attempt"`
}

func main() {
	count := flag.Int("count", 1000, "number of log lines to emit")
	flag.Parse()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for i := 0; i < *count; i++ {
		message := messages[rng.Intn(len(messages))]

		// Occasionally interleave plain text, like a real mixed stream.
		if rng.Intn(20) == 0 {
			fmt.Fprintf(out, "Plain text log message: %s\n", message)
			continue
		}

		line := logLine{
			Timestamp: time.Now().UnixMilli(),
			Level:     levels[rng.Intn(len(levels))],
			Message:   message,
			RequestID: fmt.Sprintf("req-%d", 1000+rng.Intn(9000)),
		}
		if rng.Intn(2) == 0 {
			line.DurationMS = 1 + rng.Intn(999)
		}
		if rng.Intn(3) == 0 {
			line.UserID = fmt.Sprintf("user-%d", 1+rng.Intn(99))
		}
		if rng.Intn(5) == 0 {
			line.Context = &requestContext{
				Region:  []string{"us-east-1", "eu-west-1", "ap-south-1"}[rng.Intn(3)],
				Attempt: 1 + rng.Intn(3),
			}
		}
		if line.Level == "ERROR" && rng.Intn(2) == 0 {
			line.Stacktrace = "main.handleRequest\n\tserver.go:42\nmain.main\n\tmain.go:17"
		}

		encoded, err := json.Marshal(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "genlogs: %v\n", err)
			os.Exit(1)
		}
		out.Write(encoded)
		out.WriteByte('\n')
	}
}
