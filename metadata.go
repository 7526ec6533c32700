package arquery

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/everFinance/arquery/schema"
	"github.com/tidwall/gjson"
	"gopkg.in/h2non/gentleman.v2"
)

const DefaultLimit = 20

const transactionsSelection = `{
    pageInfo { hasNextPage __typename }
    edges {
      __typename
      cursor
      node {
        id
        anchor
        signature
        recipient
        owner { address key __typename }
        fee { winston ar __typename }
        quantity { winston ar __typename }
        data { size type __typename }
        bundledIn { id __typename }
        tags { name value __typename }
        block {
          id
          timestamp
          height
          previous
          __typename
        }
        __typename
      }
    }
  }`

// MetadataQuery accumulates transaction filters and runs them as a single
// gateway GraphQL query. A MetadataQuery is meant for one logical query and is
// not safe for concurrent use.
type MetadataQuery struct {
	cli     *gentleman.Client
	handler ResponseHandler

	ids        stringSet
	owners     stringSet
	recipients stringSet
	bundles    stringSet
	tags       tagSet
	minBlock   *int64
	maxBlock   *int64
	sort       schema.Sort
	limit      int
	after      string
}

func newMetadataQuery(gateway Gateway, handler ResponseHandler) *MetadataQuery {
	return &MetadataQuery{
		cli:     newClient(gateway),
		handler: handler,
		sort:    schema.SortDesc,
		limit:   DefaultLimit,
	}
}

func (m *MetadataQuery) Id(ids ...string) *MetadataQuery {
	m.ids.add(ids...)
	return m
}

// From filters by owner address.
func (m *MetadataQuery) From(addresses ...string) *MetadataQuery {
	m.owners.add(addresses...)
	return m
}

// To filters by recipient address.
func (m *MetadataQuery) To(addresses ...string) *MetadataQuery {
	m.recipients.add(addresses...)
	return m
}

func (m *MetadataQuery) BundleIn(ids ...string) *MetadataQuery {
	m.bundles.add(ids...)
	return m
}

// Tag accepts transactions carrying name with any of values. Calls with the
// same name widen the accepted values. A call without values is ignored.
func (m *MetadataQuery) Tag(name string, values ...string) *MetadataQuery {
	if len(values) == 0 {
		return m
	}
	m.tags.add(name, values...)
	return m
}

func (m *MetadataQuery) First() *MetadataQuery {
	return m.Limit(1)
}

func (m *MetadataQuery) Limit(n int) *MetadataQuery {
	m.limit = n
	return m
}

func (m *MetadataQuery) OrderBy(sort schema.Sort) *MetadataQuery {
	m.sort = sort
	return m
}

// Min sets the lowest block height, inclusive. Zero is a valid bound.
func (m *MetadataQuery) Min(height int64) *MetadataQuery {
	m.minBlock = &height
	return m
}

// Max sets the highest block height, inclusive. Zero is a valid bound.
func (m *MetadataQuery) Max(height int64) *MetadataQuery {
	m.maxBlock = &height
	return m
}

// Cursor resumes after the edge that carried cursor.
func (m *MetadataQuery) Cursor(cursor string) *MetadataQuery {
	m.after = cursor
	return m
}

// Document renders the accumulated filters as a GraphQL query document.
func (m *MetadataQuery) Document() string {
	clauses := make([]string, 0, 9)

	if block := m.blockClause(); block != "" {
		clauses = append(clauses, block)
	}
	if m.after != "" {
		clauses = append(clauses, "after:"+quote(m.after))
	}
	if m.ids.len() > 0 {
		clauses = append(clauses, "ids:"+quoteList(m.ids.list()))
	}
	if m.owners.len() > 0 {
		clauses = append(clauses, "owners:"+quoteList(m.owners.list()))
	}
	if m.recipients.len() > 0 {
		clauses = append(clauses, "recipients:"+quoteList(m.recipients.list()))
	}
	if m.bundles.len() > 0 {
		clauses = append(clauses, "bundledIn:"+quoteList(m.bundles.list()))
	}
	if m.tags.len() > 0 {
		tags := make([]string, 0, m.tags.len())
		m.tags.each(func(name string, values []string) {
			tags = append(tags, fmt.Sprintf("{name:%s,values:%s}", quote(name), quoteList(values)))
		})
		clauses = append(clauses, "tags:["+strings.Join(tags, ",")+"]")
	}
	clauses = append(clauses, fmt.Sprintf("first:%d", m.limit))
	clauses = append(clauses, "sort:"+m.sort.Token())

	return fmt.Sprintf("{\n  transactions(\n    %s\n  ) %s\n}", strings.Join(clauses, ",\n    "), transactionsSelection)
}

func (m *MetadataQuery) blockClause() string {
	switch {
	case m.minBlock != nil && m.maxBlock != nil:
		return fmt.Sprintf("block:{min:%d,max:%d}", *m.minBlock, *m.maxBlock)
	case m.minBlock != nil:
		return fmt.Sprintf("block:{min:%d}", *m.minBlock)
	case m.maxBlock != nil:
		return fmt.Sprintf("block:{max:%d}", *m.maxBlock)
	}
	return ""
}

// Fetch runs the query and returns the gateway response as is.
func (m *MetadataQuery) Fetch() (*schema.Response, error) {
	doc := m.Document()
	log.Debug("query transactions", "query", doc)

	req := m.cli.Post()
	req.AddPath("/graphql")
	req.JSON(map[string]string{"query": doc})
	code, body, err := send(endpointGraphQL, req)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) {
		return nil, &ParseError{Err: fmt.Errorf("invalid json body: %s", body)}
	}
	if errs := gjson.GetBytes(body, "errors"); errs.Exists() && errs.Type != gjson.Null {
		log.Error("graphql query failed", "status", code, "errors", errs.Raw)
		return nil, &RequestError{StatusCode: code, Body: string(body)}
	}

	resp := &schema.Response{}
	if err = json.Unmarshal(body, resp); err != nil {
		return nil, &ParseError{Err: err}
	}
	return resp, nil
}

// Get runs the query. Without a handler the result is the *schema.Response,
// otherwise whatever the handler makes of it.
func (m *MetadataQuery) Get() (interface{}, error) {
	resp, err := m.Fetch()
	if err != nil {
		return nil, err
	}
	if m.handler == nil {
		return resp, nil
	}
	return m.handler.Handle(resp)
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func quoteList(vals []string) string {
	quoted := make([]string, 0, len(vals))
	for _, v := range vals {
		quoted = append(quoted, quote(v))
	}
	return "[" + strings.Join(quoted, ",") + "]"
}
