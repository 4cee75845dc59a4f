package types

// ImageSet holds the per-viewport variants of a product image.
type ImageSet struct {
	Mobile  string `json:"mobile"`
	Tablet  string `json:"tablet"`
	Desktop string `json:"desktop"`
}

// Gallery holds the three detail-page gallery shots.
type Gallery struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Third  string `json:"third"`
}

// IncludedItem is one "in the box" accessory line.
type IncludedItem struct {
	Quantity int    `json:"quantity"`
	Item     string `json:"item"`
}
