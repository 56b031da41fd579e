package googleauth

import (
	"context"
	"errors"

	"parkhub-backend/pkg/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var errInvalidIDToken = errors.New("invalid google id token")

// Profile is the verified identity extracted from a Google sign-in.
type Profile struct {
	Email     string
	FirstName string
	LastName  string
}

// Verifier exchanges authorization codes and verifies the resulting Google
// id tokens.
type Verifier struct {
	oauth    *oauth2.Config
	clientID string
}

func NewVerifier(cfg *config.Config) *Verifier {
	return &Verifier{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		clientID: cfg.GoogleClientID,
	}
}

// ExchangeAndVerify trades the authorization code for tokens, validates the
// id token against our client id and returns the verified profile.
func (v *Verifier) ExchangeAndVerify(ctx context.Context, code string) (*Profile, error) {
	tok, err := v.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}
	idToken, _ := tok.Extra("id_token").(string)
	if idToken == "" {
		return nil, errInvalidIDToken
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(v.oauth.TokenSource(ctx, tok)))
	if err != nil {
		return nil, err
	}

	info, err := svc.Tokeninfo().IdToken(idToken).Do()
	if err != nil {
		return nil, errInvalidIDToken
	}
	if info.Audience != v.clientID || !info.VerifiedEmail {
		return nil, errInvalidIDToken
	}

	profile := &Profile{Email: info.Email}
	if ui, err := svc.Userinfo.Get().Do(); err == nil {
		profile.FirstName = ui.GivenName
		profile.LastName = ui.FamilyName
	}
	return profile, nil
}
