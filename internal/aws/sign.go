// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"

	"github.com/idxctl/idxctl/internal/log"
)

// DefaultService is the signing name of Amazon OpenSearch Service domains.
// Serverless collections sign as "aoss".
const DefaultService = "es"

// ErrNoRegion is returned when neither the flags nor the AWS config chain
// yield a region to sign for.
var ErrNoRegion = errors.New("no AWS region to sign requests for")

// SigningTransport is an http.RoundTripper that signs each request with SigV4
// before handing it to Base.
type SigningTransport struct {
	Base        http.RoundTripper
	Credentials awsv2.CredentialsProvider
	Region      string
	Service     string

	signer *v4.Signer
	now    func() time.Time
}

// NewSigningTransport wraps base with SigV4 signing using the credentials and
// region of cfg. An empty service signs for DefaultService.
func NewSigningTransport(cfg awsv2.Config, base http.RoundTripper, service string) (*SigningTransport, error) {
	if cfg.Region == "" {
		return nil, ErrNoRegion
	}
	if cfg.Credentials == nil {
		return nil, errors.New("no AWS credentials provider configured")
	}
	if base == nil {
		base = http.DefaultTransport
	}
	if service == "" {
		service = DefaultService
	}

	return &SigningTransport{
		Base:        base,
		Credentials: cfg.Credentials,
		Region:      cfg.Region,
		Service:     service,
		signer:      v4.NewSigner(),
		now:         time.Now,
	}, nil
}

// RoundTrip implements http.RoundTripper. The request is cloned so the
// caller's copy is never modified.
func (t *SigningTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	signed := req.Clone(ctx)

	var body []byte
	if req.Body != nil && req.Body != http.NoBody {
		var err error
		if body, err = io.ReadAll(req.Body); err != nil {
			return nil, fmt.Errorf("failed to read request body for signing: %w", err)
		}
		_ = req.Body.Close()
		signed.Body = io.NopCloser(bytes.NewReader(body))
		signed.ContentLength = int64(len(body))
	}
	sum := sha256.Sum256(body)

	creds, err := t.Credentials.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve AWS credentials: %w", err)
	}

	if err := t.signer.SignHTTP(ctx, creds, signed, hex.EncodeToString(sum[:]), t.Service, t.Region, t.now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}
	log.Tracef("signed %s %s for %s/%s", signed.Method, signed.URL.Path, t.Service, t.Region)

	return t.Base.RoundTrip(signed)
}
