package remote_test

import (
	"testing"
	"time"

	"tagfinder/internal/domain"
	"tagfinder/internal/remote"
)

var timeZero = time.Unix(0, 0)

func TestMethodWireForm(t *testing.T) {
	in := domain.AuthChallenge{ID: "3", Kind: domain.MethodSMS, Phone: "+44 •••• ••12"}
	w := remote.EncodeMethod(in)
	if w.Type != "sms" {
		t.Fatalf("type = %q", w.Type)
	}
	out, err := remote.DecodeMethod(w)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}

	if _, err := remote.DecodeMethod(remote.Method{ID: "x", Type: "carrier_pigeon"}); err == nil {
		t.Fatalf("unknown type should fail")
	}
	if remote.SubmitCodePath("7") != "/v1/auth/2fa/7/submit" {
		t.Fatalf("submit path = %q", remote.SubmitCodePath("7"))
	}
}
