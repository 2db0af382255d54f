// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/idxctl/idxctl/internal/aws"
	"github.com/idxctl/idxctl/internal/cluster"
	"github.com/idxctl/idxctl/internal/log"
)

// InitClusterClient builds the index-listing provider from the connection
// flags. Setting --aws-region or --aws-profile turns on SigV4 signing.
func InitClusterClient(ctx context.Context, cmd *cli.Command) (*cluster.Client, error) {
	opts := []cluster.Option{
		cluster.WithHost(cmd.String("host")),
		cluster.WithPort(cmd.Int("port")),
		cluster.WithURLPrefix(cmd.String("url-prefix")),
		cluster.WithSSL(cmd.Bool("use-ssl"), cmd.Bool("ssl-no-validate")),
		cluster.WithBasicAuth(cmd.String("http-auth")),
		cluster.WithTimeout(cmd.Duration("timeout")),
		cluster.WithRetries(cmd.Int("retries")),
	}

	region, profile := cmd.String("aws-region"), cmd.String("aws-profile")
	if region != "" || profile != "" {
		awsCfg, err := aws.LoadAWSConfig(ctx, aws.WithRegion(region), aws.WithProfile(profile))
		if err != nil {
			return nil, fmt.Errorf("%w: loading AWS config: %w", cluster.ErrProviderUnavailable, err)
		}
		opts = append(opts, cluster.WithTransport(func(base http.RoundTripper) (http.RoundTripper, error) {
			return aws.NewSigningTransport(awsCfg, base, "")
		}))
	}

	client, err := cluster.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	log.Debugf("client: %s", client.Endpoint())

	return client, nil
}
