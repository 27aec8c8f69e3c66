// Command token mints a bearer token for an existing actor. Login is handled
// outside this service; the tool covers local runs and smoke tests.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"parcel-registry/internal/pkg/config"
	"parcel-registry/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	actor := flag.String("actor", "", "actor id (uuid) the token is issued for")
	ttl := flag.Duration("ttl", 0, "token lifetime; defaults to JWT_DURATION")
	flag.Parse()

	if err := run(*actor, *ttl); err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		os.Exit(1)
	}
}

func run(actor string, ttl time.Duration) error {
	actorID, err := uuid.Parse(actor)
	if err != nil {
		return fmt.Errorf("invalid -actor: %w", err)
	}

	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}
	if ttl == 0 {
		if ttl, err = time.ParseDuration(cfg.Duration); err != nil {
			return fmt.Errorf("invalid JWT_DURATION: %w", err)
		}
	}

	token, err := jwt.NewService(cfg.Secret, cfg.Issuer, ttl).GenerateToken(actorID)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
