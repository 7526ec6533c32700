package schema

import (
	"github.com/everFinance/goar/types"
	"github.com/shopspring/decimal"
)

const WinstonPerAR = 12 // 1 AR = 10^12 winston

// BasicData is the flat projection of one transactions edge.
type BasicData struct {
	Id        string      `json:"id"`
	Owner     string      `json:"owner"`
	Recipient string      `json:"recipient"`
	Fee       string      `json:"fee"` // winston
	Tags      []types.Tag `json:"tags"`
	Cursor    string      `json:"cursor"`
}

func (b BasicData) FeeAR() (decimal.Decimal, error) {
	winston, err := decimal.NewFromString(b.Fee)
	if err != nil {
		return decimal.Zero, err
	}
	return winston.Div(decimal.New(1, WinstonPerAR)), nil
}

func (b BasicData) TagValue(name string) string {
	for _, tag := range b.Tags {
		if tag.Name == name {
			return tag.Value
		}
	}
	return ""
}
