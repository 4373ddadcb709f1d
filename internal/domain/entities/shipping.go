package entities

// DefaultShippingCost applies when no region matches the delivery address.
const DefaultShippingCost = 800

// ShippingRate maps a region name to a flat delivery cost in DZD.
type ShippingRate struct {
	Region string  `json:"region"`
	Cost   float64 `json:"cost"`
}

// ShippingRates is tried in order and the first region contained in the address wins.
// Latin names are matched case-insensitively.
var ShippingRates = []ShippingRate{
	{Region: "الجزائر العاصمة", Cost: 500},
	{Region: "الجزائر", Cost: 500},
	{Region: "وهران", Cost: 700},
	{Region: "قسنطينة", Cost: 800},
	{Region: "تلمسان", Cost: 750},
	{Region: "الشلف", Cost: 600},
	{Region: "الأغواط", Cost: 900},
	{Region: "تيارت", Cost: 700},
	{Region: "تيزي وزو", Cost: 650},
	{Region: "الجزائر الوسطى", Cost: 700},
	{Region: "الجزائر الشرقية", Cost: 900},
	{Region: "الجزائر الغربية", Cost: 800},
	{Region: "الجنوب", Cost: 1200},
	{Region: "alger", Cost: 500},
	{Region: "algiers", Cost: 500},
	{Region: "oran", Cost: 700},
	{Region: "constantine", Cost: 800},
	{Region: "tlemcen", Cost: 750},
	{Region: "chlef", Cost: 600},
	{Region: "laghouat", Cost: 900},
	{Region: "tiaret", Cost: 700},
	{Region: "tizi ouzou", Cost: 650},
}
