package entity

// Breed mirrors the upstream cat API's breed document. The shape is
// owned by the remote service; it is carried through unmodified.
type Breed struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Weight           BreedWeight `json:"weight"`
	CFAURL           string      `json:"cfa_url,omitempty"`
	VetstreetURL     string      `json:"vetstreet_url,omitempty"`
	VCAHospitalsURL  string      `json:"vcahospitals_url,omitempty"`
	Temperament      string      `json:"temperament"`
	Origin           string      `json:"origin"`
	CountryCodes     string      `json:"country_codes"`
	CountryCode      string      `json:"country_code"`
	Description      string      `json:"description"`
	LifeSpan         string      `json:"life_span"`
	Indoor           int         `json:"indoor"`
	AltNames         string      `json:"alt_names,omitempty"`
	Adaptability     int         `json:"adaptability"`
	AffectionLevel   int         `json:"affection_level"`
	ChildFriendly    int         `json:"child_friendly"`
	DogFriendly      int         `json:"dog_friendly"`
	EnergyLevel      int         `json:"energy_level"`
	Grooming         int         `json:"grooming"`
	HealthIssues     int         `json:"health_issues"`
	Intelligence     int         `json:"intelligence"`
	SheddingLevel    int         `json:"shedding_level"`
	SocialNeeds      int         `json:"social_needs"`
	StrangerFriendly int         `json:"stranger_friendly"`
	Vocalisation     int         `json:"vocalisation"`
	Experimental     int         `json:"experimental"`
	Hairless         int         `json:"hairless"`
	Natural          int         `json:"natural"`
	Rare             int         `json:"rare"`
	Rex              int         `json:"rex"`
	SuppressedTail   int         `json:"suppressed_tail"`
	ShortLegs        int         `json:"short_legs"`
	WikipediaURL     string      `json:"wikipedia_url,omitempty"`
	Hypoallergenic   int         `json:"hypoallergenic"`
	ReferenceImageID string      `json:"reference_image_id,omitempty"`
	Image            *CatImage   `json:"image,omitempty"`
}

type BreedWeight struct {
	Imperial string `json:"imperial"`
	Metric   string `json:"metric"`
}

// CatImage is an upstream breed photo. Breeds is populated by the
// images endpoints, not by breed documents.
type CatImage struct {
	ID     string  `json:"id"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	URL    string  `json:"url"`
	Breeds []Breed `json:"breeds,omitempty"`
}
