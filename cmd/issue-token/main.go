// Command issue-token prints a signed access token for the given actor. The
// CMS integration presents it as a Bearer token on publish events.
//
// Usage:
//
//	issue-token -actor <username> [-ttl 720h]
//
// Uses the auth section of the regular configuration; -ttl overrides
// auth.access_token_ttl. The configuration loader still requires DATABASE_DSN.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/heartmarshall/approveit/internal/auth"
	"github.com/heartmarshall/approveit/internal/config"
)

func main() {
	actor := flag.String("actor", "", "username recorded as the author of changes (required)")
	ttl := flag.Duration("ttl", 0, "token lifetime; defaults to auth.access_token_ttl")
	flag.Parse()

	if strings.TrimSpace(*actor) == "" {
		log.Fatal("-actor is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime)
	token, err := tokens.GenerateAccessToken(*actor)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
	log.Printf("token for %q expires at %s", *actor, time.Now().Add(lifetime).UTC().Format(time.RFC3339))
}
