package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"prettylog/internal/classify"
	"prettylog/internal/render"
	"prettylog/internal/style"
)

func testRenderer() *render.Renderer {
	return render.New(render.Options{
		Lists:           classify.DefaultLists(),
		TimestampFormat: render.TimestampSeconds,
	})
}

func runTransform(t *testing.T, input string) string {
	t.Helper()
	var buf bytes.Buffer
	out := bufio.NewWriterSize(&buf, 32*1024)
	err := transform(context.Background(), strings.NewReader(input), out, testRenderer(), style.NewPolicy(style.ModeOff), zap.NewNop())
	if err != nil {
		t.Fatalf("transform returned error: %v", err)
	}
	return buf.String()
}

func TestTransform_MultipleJSONLines(t *testing.T) {
	input := `{"timestamp":1627494000,"level":"info","msg":"Test message 1"}
{"timestamp":1627494001,"level":"error","msg":"Test message 2"}
{"timestamp":1627494002,"level":"debug","msg":"Test message 3"}`

	want := "2021-07-28T17:40:00Z INFO  Test message 1\n" +
		"2021-07-28T17:40:01Z ERROR Test message 2\n" +
		"2021-07-28T17:40:02Z DEBUG Test message 3\n"

	if got := runTransform(t, input); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestTransform_NonJSONPassthrough(t *testing.T) {
	input := "This is not JSON\nNeither is this line\n{also not json}\n"
	if got := runTransform(t, input); got != input {
		t.Fatalf("output = %q, want exact passthrough %q", got, input)
	}
}

func TestTransform_MixedStream(t *testing.T) {
	input := "plain line\n" +
		`{"level":"warn","msg":"careful"}` + "\n" +
		"[1,2]\n"

	want := "plain line\n" +
		"WARN  careful\n" +
		"[1,2]\n"

	if got := runTransform(t, input); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestTransform_MultiLineBlockOutput(t *testing.T) {
	input := `{"level":"error","msg":"boom","stacktrace":"foo\nbar"}` + "\n"

	want := "ERROR boom\n" +
		"  stacktrace:\n" +
		"    foo\n" +
		"    bar\n"

	if got := runTransform(t, input); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestTransform_EmptyLinesPreserved(t *testing.T) {
	input := "\n\n"
	if got := runTransform(t, input); got != "\n\n" {
		t.Fatalf("output = %q, want two empty lines", got)
	}
}

func TestTransform_HugeLineKeepsStreamFlowing(t *testing.T) {
	big := strings.Repeat("a", 17*1024*1024)
	input := big + "\n" + `{"level":"warn","msg":"careful"}` + "\n"
	want := big + "\n" + "WARN  careful\n"

	if got := runTransform(t, input); got != want {
		t.Fatalf("output mismatch: got %d bytes, want %d bytes", len(got), len(want))
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestTransform_WriteErrorIsFatal(t *testing.T) {
	out := bufio.NewWriterSize(failWriter{}, 32*1024)
	err := transform(context.Background(), strings.NewReader("hello\n"), out, testRenderer(), style.NewPolicy(style.ModeOff), zap.NewNop())
	if err == nil {
		t.Fatalf("transform returned nil error, want write failure")
	}
	if !strings.Contains(err.Error(), "broken pipe") {
		t.Fatalf("transform error = %q, want it to wrap the write failure", err.Error())
	}
}

func TestTransform_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	out := bufio.NewWriterSize(&buf, 32*1024)
	err := transform(ctx, strings.NewReader("line one\nline two\n"), out, testRenderer(), style.NewPolicy(style.ModeOff), zap.NewNop())
	if err != nil {
		t.Fatalf("transform returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("output = %q, want nothing after cancellation", buf.String())
	}
}
