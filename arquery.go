package arquery

import (
	"context"
	"net/http"

	"github.com/everFinance/arquery/argraphql"
)

// Query hands out data fetchers and metadata builders bound to one gateway.
type Query struct {
	gateway Gateway
	handler ResponseHandler
}

// New returns a Query for gateway, DefaultGateway() when nil. handler may be
// nil, in which case metadata queries return the raw *schema.Response.
func New(gateway *Gateway, handler ResponseHandler) *Query {
	gw := DefaultGateway()
	if gateway != nil {
		gw = *gateway
	}
	return &Query{
		gateway: gw,
		handler: handler,
	}
}

func (q *Query) Gateway() Gateway {
	return q.gateway
}

// Metadata returns a fresh builder; builders never share filter state.
func (q *Query) Metadata() *MetadataQuery {
	return newMetadataQuery(q.gateway, q.handler)
}

func (q *Query) Data() *DataQuery {
	return newDataQuery(q.gateway)
}

// Transaction looks up a single transaction by id through the typed GraphQL
// client. ErrNotFound is returned when the gateway does not index id.
func (q *Query) Transaction(ctx context.Context, id string) (*argraphql.GetTransactionTransaction, error) {
	gq := argraphql.NewARGraphQL(q.gateway.GraphQLEndpoint(), http.Client{})
	res, err := gq.QueryTransaction(ctx, id)
	if err != nil {
		return nil, &RequestError{Body: err.Error(), Err: err}
	}
	if res.Transaction == nil {
		return nil, ErrNotFound
	}
	return res.Transaction, nil
}
