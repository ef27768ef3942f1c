// Package prompt answers login challenges from an interactive terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"tagfinder/internal/domain"
	"tagfinder/internal/i18n"
	"tagfinder/internal/services/auth"
)

// Terminal reads answers line by line from in and writes prompts to out.
// Passwords are read without echo when in is a terminal.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// NewTerminal returns a Terminal over in and out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.fd = int(f.Fd())
		t.tty = true
	}
	return t
}

// Credentials asks for email and password.
func (t *Terminal) Credentials(ctx context.Context) (string, string, error) {
	email, err := t.ask(ctx, i18n.T("prompt.email"))
	if err != nil {
		return "", "", err
	}
	password, err := t.secret(ctx, i18n.T("prompt.password"))
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

// ChooseMethod lists methods in the order given and reads an index.
func (t *Terminal) ChooseMethod(ctx context.Context, methods []domain.AuthChallenge) (int, error) {
	fmt.Fprintln(t.out, i18n.T("prompt.methods_header"))
	for i, m := range methods {
		switch m.Kind {
		case domain.MethodSMS:
			fmt.Fprintln(t.out, i18n.T("prompt.method_sms", i, m.Phone))
		default:
			fmt.Fprintln(t.out, i18n.T("prompt.method_trusted_device", i))
		}
	}
	answer, err := t.ask(ctx, i18n.T("prompt.select_method"))
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(answer)
	if err != nil {
		return 0, &domain.AuthError{Reason: fmt.Sprintf("method selection %q is not a number", answer)}
	}
	return i, nil
}

// Code reads the verification code for method.
func (t *Terminal) Code(ctx context.Context, method domain.AuthChallenge) (string, error) {
	if method.NeedsRequest() {
		fmt.Fprintln(t.out, i18n.T("prompt.sms_sent"))
	}
	return t.ask(ctx, i18n.T("prompt.code"))
}

func (t *Terminal) ask(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(t.out, label)
	line, err := t.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (t *Terminal) secret(ctx context.Context, label string) (string, error) {
	if !t.tty {
		return t.ask(ctx, label)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(t.out, label)
	b, err := term.ReadPassword(t.fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(b), nil
}

var _ auth.ChallengeResponder = (*Terminal)(nil)
