package response

import "buildquote/internal/domain/entities"

type UnitResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Abbreviation string `json:"abbreviation"`
}

func FromUnits(units []entities.Unit) []UnitResponse {
	out := make([]UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, UnitResponse{
			ID:           u.ID,
			Name:         u.Name,
			Symbol:       u.Symbol,
			Abbreviation: u.Abbreviation,
		})
	}
	return out
}
