package entities

// Unit is one measurement unit from the external catalog.
type Unit struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Abbreviation string `json:"abbreviation"`
}
