package models

// FarmSettings is the persisted shape of the settings singleton.
type FarmSettings struct {
	FarmName string `json:"farmName"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Theme    string `json:"theme"`
}
