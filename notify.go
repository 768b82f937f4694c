package main

import (
	"context"
	"net/url"
	"strings"

	"github.com/diamondburned/arikawa/v3/api/webhook"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/httputil"
	"github.com/pkg/errors"
)

// webhookHTTP is the HTTP client webhook deliveries go through.
var webhookHTTP = httputil.NewClient()

// parseWebhook extracts the id and token from a Discord webhook URL of the
// form https://discord.com/api/webhooks/<id>/<token>.
func parseWebhook(rawURL string) (discord.WebhookID, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, "", errors.Wrap(err, "invalid webhook url")
	}

	_, rest, ok := strings.Cut(u.Path, "/webhooks/")
	if !ok {
		return 0, "", errors.Errorf("invalid webhook url %q: no /webhooks/ segment", rawURL)
	}
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 || parts[1] == "" {
		return 0, "", errors.Errorf("invalid webhook url %q: want /webhooks/<id>/<token>", rawURL)
	}

	id, err := discord.ParseSnowflake(parts[0])
	if err != nil || !id.IsValid() {
		return 0, "", errors.Errorf("invalid webhook id %q", parts[0])
	}
	return discord.WebhookID(id), parts[1], nil
}

// notify posts embed to the Discord webhook at rawURL.
func notify(ctx context.Context, rawURL string, embed discord.Embed) error {
	id, token, err := parseWebhook(rawURL)
	if err != nil {
		return err
	}

	client := webhook.NewCustom(id, token, webhookHTTP)
	err = client.WithContext(ctx).Execute(webhook.ExecuteData{
		Username: "stackdown",
		Embeds:   []discord.Embed{embed},
	})
	return errors.Wrap(err, "could not send webhook")
}
