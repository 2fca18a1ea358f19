// Command token mints a bearer token for calling a FinFusion server that has
// AUTH_SECRET set.
//
//	AUTH_SECRET=... go run ./cmd/token -subject reporting-job -ttl 24h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/marilyndevx/FinFusion-V1/internal/auth"
	"github.com/marilyndevx/FinFusion-V1/internal/config"
	"github.com/marilyndevx/FinFusion-V1/pkg/logging"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	subject := flag.String("subject", "", "caller name recorded in the token (required)")
	ttl := flag.Duration("ttl", cfg.AuthTokenTTL, "token lifetime")
	flag.Parse()

	if !cfg.AuthEnabled() {
		slog.Error("AUTH_SECRET is not set")
		os.Exit(1)
	}
	if *subject == "" {
		flag.Usage()
		os.Exit(2)
	}

	token, err := auth.NewTokenManager(cfg.AuthSecret, *ttl).Generate(*subject)
	if err != nil {
		slog.Error("Failed to mint token", "error", err)
		os.Exit(1)
	}

	slog.Info("Token minted", "subject", *subject, "expires", time.Now().Add(*ttl).Format(time.RFC3339))
	fmt.Println(token)
}
