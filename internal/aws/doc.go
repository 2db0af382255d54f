// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws loads AWS SDK v2 configuration and signs cluster requests with
// SigV4 so that idxctl can talk to Amazon OpenSearch Service domains that
// use IAM authentication.
package aws
