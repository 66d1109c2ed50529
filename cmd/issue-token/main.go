// Command issue-token makes sure a user exists and prints a bearer token for
// them. It stands in for the external identity provider in development.
//
// Usage:
//
//	issue-token --email=user@example.com --username=user
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Timurc390/Boardly/internal/adapter/postgres"
	userrepo "github.com/Timurc390/Boardly/internal/adapter/postgres/user"
	"github.com/Timurc390/Boardly/internal/app"
	"github.com/Timurc390/Boardly/internal/auth"
	"github.com/Timurc390/Boardly/internal/config"
	authsvc "github.com/Timurc390/Boardly/internal/service/auth"
)

func main() {
	email := flag.String("email", "", "email of the user to issue a token for")
	username := flag.String("username", "", "username, used when the user is created")
	flag.Parse()

	if *email == "" || *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --email=user@example.com --username=user")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	svc := authsvc.NewService(logger, userrepo.New(pool), jwtManager)

	issued, err := svc.IssueToken(ctx, authsvc.IssueTokenInput{Email: *email, Username: *username})
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user %s (%s), valid for %s\n", issued.User.ID, issued.User.Email, cfg.Auth.AccessTokenTTL)
	fmt.Println(issued.AccessToken)
}
