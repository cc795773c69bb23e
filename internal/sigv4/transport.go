// Package sigv4 provides an http.RoundTripper that signs outgoing requests
// with AWS Signature Version 4. The MCP streamable HTTP client takes a plain
// *http.Client, so signing is applied here rather than in the protocol layer.
package sigv4

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
)

// emptyPayloadHash is the SHA-256 of a zero-length body, used for requests
// without one (the transport's SSE GET, session DELETE).
const emptyPayloadHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

// Transport signs every request with SigV4 before handing it to Base.
// Credentials are resolved per request from the provider, so rotation by the
// ambient credential chain is picked up without rebuilding the client.
type Transport struct {
	// Base performs the signed request. http.DefaultTransport when nil.
	Base http.RoundTripper

	// Credentials supplies the signing identity.
	Credentials aws.CredentialsProvider

	// Service and Region form the credential scope.
	Service string
	Region  string

	signer *v4.Signer
	now    func() time.Time
}

// New returns a Transport signing for the given service and region.
func New(creds aws.CredentialsProvider, service, region string) *Transport {
	return &Transport{
		Credentials: creds,
		Service:     service,
		Region:      region,
		signer:      v4.NewSigner(),
		now:         time.Now,
	}
}

// Client wraps the transport in an *http.Client with the given timeout.
func Client(t *Transport, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: t,
		Timeout:   timeout,
	}
}

// RoundTrip implements http.RoundTripper. The incoming request is cloned
// before any header is written, so the caller's request is never mutated.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	signed := req.Clone(ctx)
	payloadHash := emptyPayloadHash
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		sum := sha256.Sum256(body)
		payloadHash = hex.EncodeToString(sum[:])

		signed.Body = io.NopCloser(bytes.NewReader(body))
		signed.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		signed.ContentLength = int64(len(body))
	}

	creds, err := t.Credentials.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve AWS credentials: %w", err)
	}

	if err := t.signer.SignHTTP(ctx, creds, signed, payloadHash, t.Service, t.Region, t.now()); err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(signed)
}
