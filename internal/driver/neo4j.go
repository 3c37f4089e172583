package driver

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"
)

type Neo4jDriver struct {
	Driver neo4j.DriverWithContext
	log    zerolog.Logger
}

func NewNeo4jDriver(uri, username, password string, log zerolog.Logger) (*Neo4jDriver, error) {
	d, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := d.VerifyConnectivity(context.Background()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	log.Info().Str("uri", uri).Msg("connected to graph store")
	return &Neo4jDriver{Driver: d, log: log}, nil
}

func (d *Neo4jDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *Neo4jDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, &QueryError{Query: query, Err: err}
	}
	return *result, nil
}

func (d *Neo4jDriver) EnsureIndexes(ctx context.Context) error {
	// The code index backs the unique-by-code check on course creation.
	queries := []string{
		"CREATE INDEX resource_code IF NOT EXISTS FOR (n:Resource) ON (n.code)",
	}

	for _, q := range queries {
		if _, err := d.ExecuteQuery(ctx, q, nil); err != nil {
			// Index may already exist, or the store may not support the
			// syntax. Not fatal either way.
			d.log.Warn().Err(err).Str("query", q).Msg("failed to create index")
		}
	}

	return nil
}
