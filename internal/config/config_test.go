package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"

	"tagfinder/internal/config"
)

// isolate points the user config dir at a temp dir and runs from it, so
// no real config or .env leaks into the test.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))
	t.Setenv("HOME", filepath.Join(tmp, "home"))
	chdir(t, tmp)
	homedir.DisableCache = true
	return tmp
}

func TestLoad_Defaults(t *testing.T) {
	tmp := isolate(t)

	c, err := config.Load(nil, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Port != 8080 {
		t.Fatalf("port: got %d", c.Port)
	}
	if c.FetchTimeout != 30*time.Second || c.HTTPTimeout != 45*time.Second {
		t.Fatalf("timeouts: %v %v", c.FetchTimeout, c.HTTPTimeout)
	}
	wantHome := filepath.Join(tmp, "home", ".tagfinder")
	if c.Home != wantHome {
		t.Fatalf("home: got %q want %q", c.Home, wantHome)
	}
	if c.KeyFile != filepath.Join(wantHome, "private_key.pem") {
		t.Fatalf("key file: got %q", c.KeyFile)
	}
}

func TestLoad_Precedence(t *testing.T) {
	tmp := isolate(t)

	path := filepath.Join(tmp, "custom.yaml")
	if err := os.WriteFile(path, []byte("port: 9000\ngateway: http://file\nfetch_timeout: 5s\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TAGFINDER_GATEWAY", "http://env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 8080, "")
	flags.String("key-file", "", "")
	if err := flags.Parse([]string{"--port", "9100", "--key-file", "~/k.pem"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	c, err := config.Load(flags, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Port != 9100 {
		t.Fatalf("flag should win: port %d", c.Port)
	}
	if c.Gateway != "http://env" {
		t.Fatalf("env should beat file: gateway %q", c.Gateway)
	}
	if c.FetchTimeout != 5*time.Second {
		t.Fatalf("file should beat default: fetch_timeout %v", c.FetchTimeout)
	}
	if c.KeyFile != filepath.Join(tmp, "home", "k.pem") {
		t.Fatalf("key file not expanded: %q", c.KeyFile)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	tmp := isolate(t)
	if _, err := config.Load(nil, filepath.Join(tmp, "absent.yaml")); err == nil {
		t.Fatal("expected error for explicit missing config")
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	tmp := isolate(t)

	c, err := config.Load(nil, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c.Port = 9200
	c.SessionPassphrase = "secret"

	path := filepath.Join(tmp, "out", "tagfinder.yaml")
	if err := config.WriteFile(c, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(raw), "secret") {
		t.Fatal("passphrase written to config file")
	}

	back, err := config.Load(nil, path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if back.Port != 9200 || back.FetchTimeout != c.FetchTimeout {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

// chdir changes the working directory to dir for the duration of the test,
// restoring the previous one on cleanup (equivalent of testing.T.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
