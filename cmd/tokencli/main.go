package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-oauth-client/client"
	"github.com/jrsteele09/go-oauth-client/credentials"
	"github.com/jrsteele09/go-oauth-client/internal/config"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/request"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error fetching token: %s\n", err)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	tokenClient, err := client.New(
		credentials.New(c.GetClientID(), c.GetClientSecret()),
		request.Endpoint{TokenHost: c.GetTokenHost(), TokenPath: c.GetTokenPath()},
		client.WithAuthMethod(oauth2.AuthMethod(c.GetAuthMethod())),
		client.WithBodyFormat(oauth2.BodyFormat(c.GetBodyFormat())),
		client.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.GetRequestTimeout())
	defer cancel()

	grant := request.GrantRequest{Params: request.Params{}}
	if scopes := c.GetScopes(); len(scopes) > 0 {
		grant.Params["scope"] = scopes
	}

	tok, err := tokenClient.GetToken(ctx, grant)
	if err != nil {
		return err
	}

	out := map[string]any{
		"access_token": tok.AccessToken,
		"token_type":   tok.Type(),
	}
	if !tok.Expiry.IsZero() {
		out["expires_at"] = tok.Expiry.Format(time.RFC3339)
	}
	if tok.RefreshToken != "" {
		out["refresh_token"] = tok.RefreshToken
	}
	for key, value := range tok.ExtraFields() {
		out[key] = value
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
