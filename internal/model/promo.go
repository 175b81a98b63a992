package model

// PromoCode is a discount rule. Percentage and cap are stored as strings for
// the same reason order prices are; the promotion service parses and
// validates them on every use.
type PromoCode struct {
	Code               string `gorm:"primaryKey" json:"code"`
	DiscountPercentage string `json:"discountPercentage"`
	MaxPriceCut        string `json:"maxPriceCut"`
}

func (PromoCode) TableName() string { return "promo_codes" }
