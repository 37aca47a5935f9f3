package models

import "encoding/json"

// Datasource is a datasource descriptor fetched from the source Grafana.
// Datasources are collected alongside dashboards so later migration steps
// can resolve datasource references inside dashboard panels.
type Datasource struct {
	ID       int64           `json:"id"`
	UID      string          `json:"uid"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	TypeName string          `json:"typeName,omitempty"`
	JSONData json.RawMessage `json:"jsonData,omitempty"`
}
