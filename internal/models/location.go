package models

import "strings"

// Location is a resolved coordinate pair together with the display address the upstream provider returned for it.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Place is a single row of the local PostGIS address table, containing its decomposed Japanese address components and its precise geographic coordinates.
type Place struct {
	ID           int64   `json:"id"`
	Prefecture   string  `json:"prefecture"`
	Municipality string  `json:"municipality"`
	Address1     string  `json:"address1"`
	Address2     string  `json:"address2"`
	BlockLot     string  `json:"block_lot"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// DisplayName joins the non-empty address components from the widest to the narrowest.
func (p Place) DisplayName() string {
	var b strings.Builder
	for _, part := range []string{p.Prefecture, p.Municipality, p.Address1, p.Address2, p.BlockLot} {
		b.WriteString(strings.TrimSpace(part))
	}
	return b.String()
}
