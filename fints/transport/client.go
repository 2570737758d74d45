// Package transport moves encoded FinTS messages to the bank access point
// and back. FinTS PIN/TAN servers accept the base64-encoded message as an
// HTTP POST body and answer the same way.
//
// The transport performs exactly one exchange per call: retries, backoff
// and timeouts beyond the supplied context belong to the orchestrator.
package transport

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/openhbci/go-fints-client/fints/util"
)

var logger = log.WithField("component", "fints.transport")

// Client exchanges one encoded message with the bank.
type Client interface {
	Exchange(ctx context.Context, payload []byte) ([]byte, error)
}

type client struct {
	rest *resty.Client
	url  string
}

// Option configures the transport.
type Option func(*client)

// WithRestyClient replaces the underlying resty client, e.g. to set
// timeouts or a proxy.
func WithRestyClient(rc *resty.Client) Option {
	return func(c *client) { c.rest = rc }
}

// New creates a transport for the given bank access point URL.
func New(url string, opts ...Option) Client {
	c := &client{rest: resty.New(), url: url}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) Exchange(ctx context.Context, payload []byte) ([]byte, error) {
	body := base64.StdEncoding.EncodeToString(payload)

	r := c.rest.R().SetContext(ctx)
	if util.HTTPTraceEnabled() {
		r.EnableTrace()
	}

	resp, err := r.
		SetBody(body).
		SetHeader("Content-Type", "text/plain").
		Post(c.url)

	printTraceInfo(c.url, err, resp)

	if err := checkError(resp, err); err != nil {
		return nil, err
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(resp.String()))
	if err != nil {
		return nil, errors.Wrap(err, "decode response body")
	}
	return decoded, nil
}

func checkError(resp *resty.Response, err error) error {
	if err != nil {
		return &RequestError{Err: err}
	}
	if resp.IsError() {
		return &RequestError{
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}
	return nil
}

func printTraceInfo(url string, err error, resp *resty.Response) {
	if !util.HTTPTraceEnabled() || resp == nil {
		return
	}

	ti := resp.Request.TraceInfo()
	logger.Debugf("POST %s: status=%d err=%v", url, resp.StatusCode(), err)
	logger.Debugf("  DNSLookup: %s ConnTime: %s TLSHandshake: %s ServerTime: %s TotalTime: %s",
		ti.DNSLookup, ti.ConnTime, ti.TLSHandshake, ti.ServerTime, ti.TotalTime)
}
