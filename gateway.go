package arquery

import "fmt"

// Gateway identifies an Arweave HTTP+GraphQL endpoint.
type Gateway struct {
	Protocol string
	Host     string
	Port     int
}

// DefaultGateway returns a fresh copy of the public arweave.net gateway.
func DefaultGateway() Gateway {
	return Gateway{
		Protocol: "https",
		Host:     "arweave.net",
		Port:     443,
	}
}

func (g Gateway) String() string {
	return fmt.Sprintf("%s://%s:%d", g.Protocol, g.Host, g.Port)
}

func (g Gateway) GraphQLEndpoint() string {
	return g.String() + "/graphql"
}
