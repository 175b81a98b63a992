package model

import "strings"

type Provider string

const ProviderEsimAccess Provider = "ESIM_ACCESS"

// ParseProvider normalizes a raw provider attribute for routing decisions.
func ParseProvider(raw string) Provider {
	return Provider(strings.ToUpper(strings.TrimSpace(raw)))
}

// ProductMapping maps a sellable product code to the provider that fulfills
// it. The provider routing columns never leave this service; the public
// listing strips them.
type ProductMapping struct {
	Code                string `gorm:"primaryKey" json:"code"`
	Name                string `json:"name"`
	Price               string `json:"price"`
	RegionCode          string `json:"regionCode"`
	DataAmount          string `json:"dataAmount"`
	ValidityDays        int    `json:"validityDays"`
	Provider            string `json:"provider"`
	MayaProductID       string `json:"mayaProductId"`
	EsimAccessProductID string `json:"esimAccessProductId"`
}

func (ProductMapping) TableName() string { return "product_mappings" }
