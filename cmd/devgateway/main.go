package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tagfinder/internal/domain"
	"tagfinder/internal/logging"
	"tagfinder/internal/remote/remotetest"
)

var (
	addr      string
	email     string
	password  string
	factor    string
	code      string
	latitude  float64
	longitude float64
	timestamp string
	found     bool
	rotate    bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "devgateway",
		Short:        "Serve a scripted location gateway",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildFake()
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           remotetest.NewHandler(f),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			logging.Infof("gateway listening on %s (2FA: %s, report: %v)", addr, factor, found)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:6969", "listen address")
	cmd.Flags().StringVar(&email, "email", "dev@example.com", "accepted account email")
	cmd.Flags().StringVar(&password, "password", "dev", "accepted account password")
	cmd.Flags().StringVar(&factor, "2fa", "none", "second factor: none, sms or trusted")
	cmd.Flags().StringVar(&code, "code", "123456", "accepted 2FA code")
	cmd.Flags().BoolVar(&found, "found", true, "serve a location report")
	cmd.Flags().Float64Var(&latitude, "lat", 37.7749, "report latitude")
	cmd.Flags().Float64Var(&longitude, "lon", -122.4194, "report longitude")
	cmd.Flags().StringVar(&timestamp, "timestamp", "2024-01-01T00:00:00Z", "report timestamp")
	cmd.Flags().BoolVar(&rotate, "rotate", false, "rotate session tokens on every fetch")
	return cmd
}

func buildFake() (*remotetest.Fake, error) {
	f := remotetest.NewFake(email, password)
	f.Code = code
	f.Rotate = rotate
	switch factor {
	case "none":
	case "sms":
		f.Methods = []domain.AuthChallenge{{ID: "1", Kind: domain.MethodSMS, Phone: "+1 (•••) •••-••00"}}
	case "trusted":
		f.Methods = []domain.AuthChallenge{{ID: "0", Kind: domain.MethodTrustedDevice}}
	default:
		return nil, fmt.Errorf("unknown --2fa %q (want none, sms or trusted)", factor)
	}
	if found {
		f.Report = &domain.LocationReport{Latitude: latitude, Longitude: longitude, Timestamp: timestamp}
	}
	return f, nil
}
