package prompt_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tagfinder/internal/domain"
	"tagfinder/internal/i18n"
	"tagfinder/internal/prompt"
)

func TestTerminalAnswers(t *testing.T) {
	i18n.Init("en")
	ctx := context.Background()
	out := new(bytes.Buffer)
	p := prompt.NewTerminal(strings.NewReader("a@example.com\nhunter2\n1\n 424242 \n"), out)

	email, password, err := p.Credentials(ctx)
	if err != nil {
		t.Fatalf("credentials: %v", err)
	}
	if email != "a@example.com" || password != "hunter2" {
		t.Fatalf("got %q / %q", email, password)
	}

	methods := []domain.AuthChallenge{
		{ID: "a", Kind: domain.MethodTrustedDevice},
		{ID: "b", Kind: domain.MethodSMS, Phone: "+1 ••• 42"},
	}
	i, err := p.ChooseMethod(ctx, methods)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if i != 1 {
		t.Fatalf("index = %d, want 1", i)
	}
	if !strings.Contains(out.String(), "1 - SMS to +1 ••• 42") || !strings.Contains(out.String(), "0 - Trusted Device") {
		t.Fatalf("method list missing:\n%s", out.String())
	}

	code, err := p.Code(ctx, methods[1])
	if err != nil {
		t.Fatalf("code: %v", err)
	}
	if code != "424242" {
		t.Fatalf("code = %q", code)
	}
	if !strings.Contains(out.String(), "SMS sent!") {
		t.Fatalf("sms notice missing")
	}
}

func TestTerminalRejectsNonNumericChoice(t *testing.T) {
	p := prompt.NewTerminal(strings.NewReader("sms\n"), new(bytes.Buffer))
	_, err := p.ChooseMethod(context.Background(), []domain.AuthChallenge{{ID: "a", Kind: domain.MethodSMS}})
	if !domain.IsAuthError(err) {
		t.Fatalf("want AuthError, got %v", err)
	}
}

func TestTerminalEOF(t *testing.T) {
	p := prompt.NewTerminal(strings.NewReader(""), new(bytes.Buffer))
	if _, _, err := p.Credentials(context.Background()); err == nil {
		t.Fatalf("want error on empty input")
	}
}
