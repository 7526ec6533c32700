package argraphql

import (
	"context"
	"net/http"

	"github.com/Khan/genqlient/graphql"
	"github.com/inconshreveable/log15"
)

var log = log15.New("module", "argraphql")

type ARGraphQL struct {
	Client graphql.Client
}

func NewARGraphQL(endpoint string, httpClient http.Client) *ARGraphQL {
	return &ARGraphQL{
		Client: graphql.NewClient(endpoint, &httpClient),
	}
}

func (g *ARGraphQL) QueryTransaction(ctx context.Context, id string) (res *GetTransactionResponse, err error) {
	txResp, err := GetTransaction(ctx, g.Client, id)
	if err != nil {
		log.Error("ARGraphQL get transaction error", "id", id, "err", err)
	}
	return txResp, err
}
