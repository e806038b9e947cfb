// Package items defines the tradeable item rows shown in the grid and the
// client that fetches them from the API.
package items

import "encoding/json"

// Item is one tradeable item as served by the API. Prices are in coins and
// times are unix seconds, 0 when unknown.
type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Members  *bool  `json:"members"`
	Limit    int64  `json:"limit"`
	High     int64  `json:"high"`
	Low      int64  `json:"low"`
	HighTime int64  `json:"highTime"`
	LowTime  int64  `json:"lowTime"`
	Margin   int64  `json:"margin"`
	Volume   int64  `json:"volume"`
}

// UnmarshalJSON decodes an item, leaving Members nil when the API sends
// anything other than a JSON boolean for it. One odd row must not reject
// the whole list.
func (it *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	aux := struct {
		*plain
		Members json.RawMessage `json:"members"`
	}{plain: (*plain)(it)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	it.Members = nil
	switch string(aux.Members) {
	case "true":
		b := true
		it.Members = &b
	case "false":
		b := false
		it.Members = &b
	}
	return nil
}
