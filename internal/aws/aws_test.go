// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticCreds(token string) awsv2.CredentialsProvider {
	return awsv2.CredentialsProviderFunc(func(context.Context) (awsv2.Credentials, error) {
		return awsv2.Credentials{
			AccessKeyID:     "AKIDEXAMPLE",
			SecretAccessKey: "secret",
			SessionToken:    token,
			Source:          "test",
		}, nil
	})
}

func TestOptions(t *testing.T) {
	var opts options
	WithProfile("ops")(&opts)
	WithRegion("eu-west-1")(&opts)
	WithRegion("eu-central-1")(&opts)

	assert.Equal(t, "ops", opts.profile)
	assert.Equal(t, "eu-central-1", opts.region)
}

func TestLoadAWSConfig_WithRegion(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-west-2"))
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
}

func TestNewSigningTransport_Errors(t *testing.T) {
	_, err := NewSigningTransport(awsv2.Config{Credentials: staticCreds("")}, nil, "")
	assert.ErrorIs(t, err, ErrNoRegion)

	_, err = NewSigningTransport(awsv2.Config{Region: "us-east-1"}, nil, "")
	assert.Error(t, err)
}

func TestSigningTransport_SignsRequests(t *testing.T) {
	var got *http.Request
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr, err := NewSigningTransport(awsv2.Config{Region: "us-east-1", Credentials: staticCreds("session")}, nil, "")
	require.NoError(t, err)
	tr.now = func() time.Time { return time.Date(2020, time.July, 1, 12, 0, 0, 0, time.UTC) }

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/_search", strings.NewReader(`{"size":0}`))
	require.NoError(t, err)

	resp, err := (&http.Client{Transport: tr}).Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NotNil(t, got)
	auth := got.Header.Get("Authorization")
	assert.True(t, strings.HasPrefix(auth, "AWS4-HMAC-SHA256 Credential=AKIDEXAMPLE/20200701/us-east-1/es/aws4_request"), auth)
	assert.Equal(t, "20200701T120000Z", got.Header.Get("X-Amz-Date"))
	assert.Equal(t, "session", got.Header.Get("X-Amz-Security-Token"))
	assert.Equal(t, `{"size":0}`, gotBody)
	assert.Empty(t, req.Header.Get("Authorization"), "caller request must stay unsigned")
}

func TestSigningTransport_CredentialError(t *testing.T) {
	failing := awsv2.CredentialsProviderFunc(func(context.Context) (awsv2.Credentials, error) {
		return awsv2.Credentials{}, errors.New("expired")
	})
	tr, err := NewSigningTransport(awsv2.Config{Region: "us-east-1", Credentials: failing}, nil, "aoss")
	require.NoError(t, err)
	assert.Equal(t, "aoss", tr.Service)

	req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:1/", nil)
	require.NoError(t, err)
	_, err = tr.RoundTrip(req)
	assert.ErrorContains(t, err, "expired")
}
