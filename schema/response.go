package schema

// Response is the gateway answer to a transactions query.
type Response struct {
	Data ResponseData `json:"data"`
}

type ResponseData struct {
	Transactions Transactions `json:"transactions"`
}

type Transactions struct {
	PageInfo PageInfo `json:"pageInfo"`
	Edges    []Edge   `json:"edges"`
}

type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	Typename    string `json:"__typename"`
}

type Edge struct {
	Typename string `json:"__typename"`
	Cursor   string `json:"cursor"`
	Node     Node   `json:"node"`
}

type Node struct {
	Id        string   `json:"id"`
	Anchor    string   `json:"anchor"`
	Signature string   `json:"signature"`
	Recipient string   `json:"recipient"`
	Owner     Owner    `json:"owner"`
	Fee       Amount   `json:"fee"`
	Quantity  Amount   `json:"quantity"`
	Data      MetaData `json:"data"`
	BundledIn *Bundle  `json:"bundledIn"` // null when the tx is not a bundle item
	Tags      []Tag    `json:"tags"`
	Block     *Block   `json:"block"` // null while pending
	Typename  string   `json:"__typename"`
}

type Owner struct {
	Address  string `json:"address"`
	Key      string `json:"key"`
	Typename string `json:"__typename"`
}

type Amount struct {
	Winston  string `json:"winston"`
	Ar       string `json:"ar"`
	Typename string `json:"__typename"`
}

type MetaData struct {
	Size     string `json:"size"`
	Type     string `json:"type"`
	Typename string `json:"__typename"`
}

type Bundle struct {
	Id       string `json:"id"`
	Typename string `json:"__typename"`
}

type Tag struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Typename string `json:"__typename"`
}

type Block struct {
	Id        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Height    int64  `json:"height"`
	Previous  string `json:"previous"`
	Typename  string `json:"__typename"`
}

// HasNextPage reports whether the gateway holds more results after the last edge.
func (r *Response) HasNextPage() bool {
	return r.Data.Transactions.PageInfo.HasNextPage
}

// LastCursor returns the cursor of the last edge, or "" when there are none.
func (r *Response) LastCursor() string {
	edges := r.Data.Transactions.Edges
	if len(edges) == 0 {
		return ""
	}
	return edges[len(edges)-1].Cursor
}
