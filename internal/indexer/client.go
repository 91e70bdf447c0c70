package indexer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hasura/go-graphql-client"
	"go.uber.org/zap"

	"github.com/movemint/launchpad-sync/internal/adapter"
	"github.com/movemint/launchpad-sync/internal/domain"
	"github.com/movemint/launchpad-sync/internal/logger"
)

// timestampLayouts covers the formats the indexer emits for timestamptz
// columns, with and without a zone suffix.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// Config holds the indexer client settings
type Config struct {
	// GraphQLURL is the indexer's GraphQL endpoint
	GraphQLURL string
	// Timeout bounds a single query
	Timeout time.Duration
	// CatchupMaxWait bounds WaitForVersion
	CatchupMaxWait time.Duration
	// CatchupPollInterval is the WaitForVersion polling period
	CatchupPollInterval time.Duration
}

// Client queries the chain's GraphQL indexer. It implements Indexer.
type Client struct {
	gql   *graphql.Client
	clock adapter.Clock
	cfg   Config
}

// NewClient creates an indexer client against the configured GraphQL endpoint
func NewClient(cfg Config, clock adapter.Clock) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	return &Client{
		gql:   graphql.NewClient(cfg.GraphQLURL, httpClient),
		clock: clock,
		cfg:   cfg,
	}
}

// GetCollectionMetadata returns indexer metadata for a collection, nil when
// the indexer has not seen it yet
func (c *Client) GetCollectionMetadata(ctx context.Context, collectionID string) (*CollectionMetadata, error) {
	var q struct {
		CurrentCollectionsV2 []struct {
			CollectionName           string `graphql:"collection_name"`
			CreatorAddress           string `graphql:"creator_address"`
			Description              string `graphql:"description"`
			URI                      string `graphql:"uri"`
			LastTransactionTimestamp string `graphql:"last_transaction_timestamp"`
		} `graphql:"current_collections_v2(where: {collection_id: {_eq: $collection_id}}, limit: 1)"`
	}

	vars := map[string]any{
		"collection_id": graphql.String(domain.HexAddress(collectionID)),
	}
	if err := c.gql.Query(ctx, &q, vars); err != nil {
		return nil, fmt.Errorf("failed to query collection metadata: %w", err)
	}
	if len(q.CurrentCollectionsV2) == 0 {
		return nil, nil
	}

	row := q.CurrentCollectionsV2[0]
	creator, err := domain.NormalizeAddress(row.CreatorAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid creator address from indexer: %w", err)
	}

	meta := &CollectionMetadata{
		CollectionName: row.CollectionName,
		CreatorAddress: creator,
		Description:    row.Description,
		URI:            row.URI,
	}
	if ts := parseTimestamp(row.LastTransactionTimestamp); ts != nil {
		meta.LastTransactionTime = ts
	}
	return meta, nil
}

// GetOwnerCount returns the distinct-owner count for a collection
func (c *Client) GetOwnerCount(ctx context.Context, collectionID string) (uint64, error) {
	var q struct {
		CurrentCollectionOwnershipV2ViewAggregate struct {
			Aggregate *struct {
				Count int `graphql:"count(distinct: true, columns: owner_address)"`
			}
		} `graphql:"current_collection_ownership_v2_view_aggregate(where: {collection_id: {_eq: $collection_id}})"`
	}

	vars := map[string]any{
		"collection_id": graphql.String(domain.HexAddress(collectionID)),
	}
	if err := c.gql.Query(ctx, &q, vars); err != nil {
		return 0, fmt.Errorf("failed to query owner count: %w", err)
	}

	agg := q.CurrentCollectionOwnershipV2ViewAggregate.Aggregate
	if agg == nil {
		return 0, nil
	}
	return uint64(agg.Count), nil
}

// GetTokenOwner returns the canonical owner address of a token, nil when
// the indexer has not caught up with the mint
func (c *Client) GetTokenOwner(ctx context.Context, nftTokenID string) (*string, error) {
	var q struct {
		CurrentTokenOwnershipsV2 []struct {
			OwnerAddress string `graphql:"owner_address"`
		} `graphql:"current_token_ownerships_v2(where: {token_data_id: {_eq: $token_id}, amount: {_gt: \"0\"}}, limit: 1)"`
	}

	vars := map[string]any{
		"token_id": graphql.String(nftTokenID),
	}
	if err := c.gql.Query(ctx, &q, vars); err != nil {
		return nil, fmt.Errorf("failed to query token owner: %w", err)
	}
	if len(q.CurrentTokenOwnershipsV2) == 0 {
		return nil, nil
	}

	owner, err := domain.NormalizeAddress(q.CurrentTokenOwnershipsV2[0].OwnerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid owner address from indexer: %w", err)
	}
	return &owner, nil
}

// GetLastVersion returns the last transaction version the indexer has processed
func (c *Client) GetLastVersion(ctx context.Context) (uint64, error) {
	var q struct {
		ProcessorStatus []struct {
			LastSuccessVersion uint64 `graphql:"last_success_version"`
		} `graphql:"processor_status(where: {processor: {_eq: $processor}})"`
	}

	vars := map[string]any{
		"processor": graphql.String("default_processor"),
	}
	if err := c.gql.Query(ctx, &q, vars); err != nil {
		return 0, fmt.Errorf("failed to query processor status: %w", err)
	}
	if len(q.ProcessorStatus) == 0 {
		return 0, fmt.Errorf("processor status not available")
	}
	return q.ProcessorStatus[0].LastSuccessVersion, nil
}

// WaitForVersion polls until the indexer reaches the given version or the
// bounded wait elapses
func (c *Client) WaitForVersion(ctx context.Context, version uint64) error {
	deadline := c.clock.Now().Add(c.cfg.CatchupMaxWait)
	for {
		last, err := c.GetLastVersion(ctx)
		if err != nil {
			logger.WarnCtx(ctx, "failed to read indexer version during catch-up", zap.Error(err))
		} else if last >= version {
			return nil
		}

		if c.clock.Now().Add(c.cfg.CatchupPollInterval).After(deadline) {
			return fmt.Errorf("indexer still behind version %d: %w", version, domain.ErrIndexerLagging)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.clock.After(c.cfg.CatchupPollInterval):
		}
	}
}

func parseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			utc := ts.UTC()
			return &utc
		}
	}
	return nil
}
