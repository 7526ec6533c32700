package argraphql

import (
	"context"

	"github.com/Khan/genqlient/graphql"
)

const GetTransactionOperation = `
query GetTransaction ($id: ID!) {
	transaction(id: $id) {
		id
		anchor
		signature
		recipient
		owner {
			address
			key
		}
		fee {
			winston
			ar
		}
		quantity {
			winston
			ar
		}
		data {
			size
			type
		}
		tags {
			name
			value
		}
		block {
			id
			timestamp
			height
			previous
		}
		bundledIn {
			id
		}
	}
}
`

type GetTransactionResponse struct {
	// Transaction is nil when the gateway does not know the id.
	Transaction *GetTransactionTransaction `json:"transaction"`
}

type GetTransactionTransaction struct {
	Id        string                                    `json:"id"`
	Anchor    string                                    `json:"anchor"`
	Signature string                                    `json:"signature"`
	Recipient string                                    `json:"recipient"`
	Owner     GetTransactionTransactionOwner            `json:"owner"`
	Fee       GetTransactionTransactionFeeAmount        `json:"fee"`
	Quantity  GetTransactionTransactionQuantityAmount   `json:"quantity"`
	Data      GetTransactionTransactionDataMetaData     `json:"data"`
	Tags      []GetTransactionTransactionTagsTag        `json:"tags"`
	Block     *GetTransactionTransactionBlock           `json:"block"`
	BundledIn *GetTransactionTransactionBundledInBundle `json:"bundledIn"`
}

type GetTransactionTransactionOwner struct {
	Address string `json:"address"`
	Key     string `json:"key"`
}

type GetTransactionTransactionFeeAmount struct {
	Winston string `json:"winston"`
	Ar      string `json:"ar"`
}

type GetTransactionTransactionQuantityAmount struct {
	Winston string `json:"winston"`
	Ar      string `json:"ar"`
}

type GetTransactionTransactionDataMetaData struct {
	Size string `json:"size"`
	Type string `json:"type"`
}

type GetTransactionTransactionTagsTag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type GetTransactionTransactionBlock struct {
	Id        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Height    int64  `json:"height"`
	Previous  string `json:"previous"`
}

type GetTransactionTransactionBundledInBundle struct {
	Id string `json:"id"`
}

type getTransactionInput struct {
	Id string `json:"id"`
}

func GetTransaction(ctx context.Context, client graphql.Client, id string) (*GetTransactionResponse, error) {
	req := &graphql.Request{
		OpName: "GetTransaction",
		Query:  GetTransactionOperation,
		Variables: &getTransactionInput{
			Id: id,
		},
	}
	var err error

	var data GetTransactionResponse
	resp := &graphql.Response{Data: &data}

	err = client.MakeRequest(
		ctx,
		req,
		resp,
	)

	return &data, err
}
