package arquery

import (
	"github.com/everFinance/arquery/schema"
	"github.com/everFinance/goar/types"
)

// ResponseHandler turns a raw gateway response into the value returned by
// MetadataQuery.Get.
type ResponseHandler interface {
	Handle(resp *schema.Response) (interface{}, error)
}

// BasicResponseHandler flattens every edge into a schema.BasicData.
type BasicResponseHandler struct{}

func (BasicResponseHandler) Handle(resp *schema.Response) (interface{}, error) {
	return Normalize(resp), nil
}

// Normalize maps each edge to one record, keeping edge order.
func Normalize(resp *schema.Response) []schema.BasicData {
	if resp == nil {
		return []schema.BasicData{}
	}
	edges := resp.Data.Transactions.Edges
	res := make([]schema.BasicData, 0, len(edges))
	for _, edge := range edges {
		tags := make([]types.Tag, 0, len(edge.Node.Tags))
		for _, tag := range edge.Node.Tags {
			tags = append(tags, types.Tag{Name: tag.Name, Value: tag.Value})
		}
		res = append(res, schema.BasicData{
			Id:        edge.Node.Id,
			Owner:     edge.Node.Owner.Address,
			Recipient: edge.Node.Recipient,
			Fee:       edge.Node.Fee.Winston,
			Tags:      tags,
			Cursor:    edge.Cursor,
		})
	}
	return res
}
