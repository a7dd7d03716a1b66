package model

// Pallet is one pallet of a shipment. Dimensions are informational only;
// the weight math uses the pallet count and the per-pallet weight.
//
// @Description Pallet with 1-based sequence number and dimensions in centimetres
type Pallet struct {
	Number   int     `json:"number" example:"1"`
	WidthCm  float64 `json:"width_cm" example:"80"`
	LengthCm float64 `json:"length_cm" example:"120"`
	HeightCm float64 `json:"height_cm" example:"150"`
}

// ShipmentInfo describes the pallets of a shipment and the weight applied to each of them.
//
// @Description Pallets and the uniform weight of a single pallet in kilograms
type ShipmentInfo struct {
	Pallets           []Pallet `json:"pallets"`
	WeightPerPalletKg float64  `json:"weight_per_pallet_kg" example:"20"`
}

// PalletCount returns the number of pallets.
func (s ShipmentInfo) PalletCount() int {
	return len(s.Pallets)
}

// TotalPalletWeightKg returns pallet count times weight per pallet.
func (s ShipmentInfo) TotalPalletWeightKg() float64 {
	return float64(len(s.Pallets)) * s.WeightPerPalletKg
}

// ClonePallets returns a copy of the pallet list, never nil.
func (s ShipmentInfo) ClonePallets() []Pallet {
	out := make([]Pallet, len(s.Pallets))
	copy(out, s.Pallets)
	return out
}
