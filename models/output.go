package models

// WaybarOutput is the JSON envelope the bar consumes. These two fields
// are the program's entire external surface.
type WaybarOutput struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
}
