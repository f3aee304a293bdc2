package entity

// Product is one parsed grid cell. Field order is the CSV column order.
type Product struct {
	Title        string  `json:"title" csv:"title"`
	Description  string  `json:"description" csv:"description"`
	Price        float64 `json:"price" csv:"price"`
	Rating       int     `json:"rating" csv:"rating"`
	NumOfReviews int     `json:"num_of_reviews" csv:"num_of_reviews"`
}

// RawProduct is a product element as read from the page. A nil field means
// the sub-element was not found.
type RawProduct struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Stars       int     `json:"stars"`
	ReviewCount *string `json:"reviewCount"`
}

type CategoryExport struct {
	Category string `json:"category"`
	File     string `json:"file"`
	Products int    `json:"products"`
	Clicks   int    `json:"load_more_clicks"`
}

type CategoryFailure struct {
	Category string `json:"category"`
	Error    string `json:"error"`
}
