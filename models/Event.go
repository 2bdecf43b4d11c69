package models

// EventListing is a promoted station event with its flyer artwork. The DJ
// reference is informational only and is not enforced against the roster.
type EventListing struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	DJID     string `json:"djId"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Flyer    string `json:"flyer"`
}
