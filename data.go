package arquery

import (
	"encoding/json"

	"gopkg.in/h2non/gentleman.v2"
)

// DataQuery reads raw transaction payloads from {gateway}/{id}.
type DataQuery struct {
	cli *gentleman.Client
}

func newDataQuery(gateway Gateway) *DataQuery {
	return &DataQuery{cli: newClient(gateway)}
}

func (d *DataQuery) Buffer(id string) ([]byte, error) {
	return d.fetch(id)
}

func (d *DataQuery) Text(id string) (string, error) {
	data, err := d.fetch(id)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// JSON decodes the payload into v.
func (d *DataQuery) JSON(id string, v interface{}) error {
	data, err := d.fetch(id)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, v); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

func (d *DataQuery) fetch(id string) ([]byte, error) {
	req := d.cli.Get()
	req.AddPath("/" + id)
	_, data, err := send(endpointData, req)
	return data, err
}
