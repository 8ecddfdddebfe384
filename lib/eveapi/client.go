// Package eveapi is a client for the EVE Online XML API. Each public
// method performs one synchronous fetch-parse-normalize pass and
// returns a typed structure keyed by entity id; nothing is cached and
// no state is shared between calls, so a Client is safe for concurrent
// use. Freshness hints arrive in every result's Meta and honoring them
// is the caller's business.
package eveapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"evexml/lib/restyutil"
	"evexml/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.eveonline.com"

// Fetcher performs the GET for one feed and returns the raw response
// body. Retry, backoff and rate limiting policies live behind this
// interface; the library issues exactly one Fetch per operation.
type Fetcher interface {
	Fetch(ctx context.Context, path string, query url.Values) ([]byte, error)
}

type ClientOptions struct {
	// BaseURL overrides the production API host.
	BaseURL string
	// Key is the credential pair injected into authenticated feeds.
	// Anonymous feeds work without one.
	Key *Key
	// CharacterID is the fallback identifier for character scoped
	// feeds whose call site does not pass one explicitly.
	CharacterID string
	// Fetcher overrides the transport. Leave nil for the resty backed
	// default.
	Fetcher Fetcher
	// ExchangeOutput, when set, receives raw request/response dumps
	// from the default fetcher. Ignored when Fetcher is set.
	ExchangeOutput restyutil.InstrumentOutput
}

// Client talks to one API host with one credential pair.
type Client struct {
	opts    ClientOptions
	fetcher Fetcher
}

func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = newRestyFetcher(opts.BaseURL, opts.ExchangeOutput)
	}
	return &Client{opts: opts, fetcher: fetcher}
}

type restyFetcher struct {
	http *resty.Client
}

func newRestyFetcher(baseURL string, exchanges restyutil.InstrumentOutput) *restyFetcher {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("user-agent", "evexml")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "eveapi/http")
	restyutil.InstrumentClient(client, exchanges)

	return &restyFetcher{http: client}
}

func (f *restyFetcher) Fetch(ctx context.Context, path string, query url.Values) ([]byte, error) {
	res, err := f.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(path)
	if err != nil {
		return nil, err
	}
	// the API encodes domain errors as XML envelopes under 4xx
	// statuses, those bodies must reach the parser
	if res.StatusCode() >= http.StatusInternalServerError {
		return nil, fmt.Errorf("http status %s", res.Status())
	}
	return res.Body(), nil
}

// fetch runs the shared pipeline for one feed: build the query, issue
// the GET, decode the envelope and apply the version/error gate.
func (c *Client) fetch(ctx context.Context, ep endpoint, params map[string]string) (*envelope, error) {
	var key *Key
	if ep.auth {
		key = c.opts.Key
	}

	raw, err := c.fetcher.Fetch(ctx, ep.path, buildQuery(key, params))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ep.path, err)
	}

	env, err := ep.decoder.decode(raw)
	if err != nil {
		return nil, &ParseError{Path: ep.path, Err: err}
	}
	if err := env.gate(); err != nil {
		return nil, err
	}
	return env, nil
}

// characterID resolves the identifier for character scoped feeds,
// explicit argument first, then the configured default. Runs before
// any network traffic.
func (c *Client) characterID(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if c.opts.CharacterID != "" {
		return c.opts.CharacterID, nil
	}
	return "", &MissingIdentifierError{Param: "characterID"}
}

func required(param, value string) (string, error) {
	if value == "" {
		return "", &MissingIdentifierError{Param: param}
	}
	return value, nil
}
