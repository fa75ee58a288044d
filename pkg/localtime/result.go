package localtime

import "encoding/json"

// ZoneName returns the resolved zone's name, or "" if unresolved
func (r Result) ZoneName() string {
	if r.Location == nil {
		return ""
	}
	return r.Location.String()
}

// MarshalJSON adds the resolved zone name to the JSON form
func (r Result) MarshalJSON() ([]byte, error) {
	type Alias Result
	return json.Marshal(&struct {
		Zone string `json:"zone"`
		Alias
	}{
		Zone:  r.ZoneName(),
		Alias: Alias(r),
	})
}

