package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
)

func TestLoggerErrorIncludesContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	ctx := context.Background()
	ctx = log.WithRequestID(ctx, "req-123")
	ctx = log.WithRoute(ctx, "/accounts/{id}")

	log.Error(ctx, "boom", errors.New("boom"))

	if !bytes.Contains(buf.Bytes(), []byte("\"request_id\":\"req-123\"")) {
		t.Fatalf("expected request_id to be preserved; entry=%s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("\"route\"")) {
		t.Fatalf("expected route field; entry=%s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("\"stack\"")) {
		t.Fatalf("expected stack trace on error; entry=%s", buf.String())
	}
}

func TestLoggerWarnStackToggle(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf, WarnStack: true})
	log.Warn(context.Background(), "warny")
	if !bytes.Contains(buf.Bytes(), []byte("\"stack\"")) {
		t.Fatalf("expected stack when warn stack enabled")
	}

	buf.Reset()
	quiet := New(Options{ServiceName: "test", Output: buf})
	quiet.Warn(context.Background(), "warny")
	if bytes.Contains(buf.Bytes(), []byte("\"stack\"")) {
		t.Fatalf("did not expect stack when warn stack disabled")
	}
}

func TestParseLevelDefaults(t *testing.T) {
	if lvl := ParseLevel(""); lvl != zerolog.InfoLevel {
		t.Fatalf("expected default info level, got %v", lvl)
	}
	if lvl := ParseLevel("invalid"); lvl != zerolog.InfoLevel {
		t.Fatalf("invalid level should fallback to info, got %v", lvl)
	}
	if lvl := ParseLevel(" WARN "); lvl != zerolog.WarnLevel {
		t.Fatalf("expected warn, got %v", lvl)
	}
}

func TestNopDropsOutput(t *testing.T) {
	log := Nop()
	log.Info(context.Background(), "ignored")
	log.Error(context.Background(), "ignored", errors.New("x"))
}

func TestLoggerStampsEnvAndErrorCode(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "api", Env: "dev", Output: buf, Format: FormatJSON})

	ctx := log.WithOperator(context.Background(), "admin-123")
	log.Error(ctx, "order.update_failed", pkgerrors.New(pkgerrors.CodeStateConflict, "Order is already delivered"))

	out := buf.String()
	for _, want := range []string{`"env":"dev"`, `"operator_id":"admin-123"`, `"error_code":"STATE_CONFLICT"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in entry=%s", want, out)
		}
	}
}

func TestLoggerConsoleFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "smoke", Output: buf, Format: FormatConsole})
	log.Info(context.Background(), "smoke run passed")
	if bytes.HasPrefix(bytes.TrimSpace(buf.Bytes()), []byte("{")) {
		t.Fatalf("expected console output, got %s", buf.String())
	}
}
