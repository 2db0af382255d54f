// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package cluster is the index-listing provider. It talks to an
// Elasticsearch or OpenSearch cluster over HTTP and returns the names of all
// open and closed indices.
//
// Requests go through hashicorp/go-retryablehttp, so transient failures are
// retried by the transport according to the configured retry budget. Any
// failure that survives the retries is reported as ErrProviderUnavailable
// with a message naming the endpoint and the operation.
//
// Authentication is either HTTP basic auth or, for Amazon OpenSearch Service,
// SigV4 request signing (see the aws package).
package cluster
