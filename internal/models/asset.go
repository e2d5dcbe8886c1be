package models

import "time"

// AssetType represents what an asset is used for
type AssetType string

const (
	AssetTypePoster    AssetType = "poster"
	AssetTypeThumbnail AssetType = "thumbnail"
)

// AssetVariant represents the shape of an asset image
type AssetVariant string

const (
	AssetVariantPortrait  AssetVariant = "portrait"
	AssetVariantLandscape AssetVariant = "landscape"
	AssetVariantSquare    AssetVariant = "square"
	AssetVariantBanner    AssetVariant = "banner"
)

// ValidAssetVariants lists all accepted asset variants
var ValidAssetVariants = []AssetVariant{
	AssetVariantPortrait,
	AssetVariantLandscape,
	AssetVariantSquare,
	AssetVariantBanner,
}

// Asset represents an image attached to a program (poster) or lesson (thumbnail)
type Asset struct {
	ID        string       `json:"id"`
	OwnerID   string       `json:"ownerId"`
	Language  string       `json:"language"`
	Variant   AssetVariant `json:"variant"`
	AssetType AssetType    `json:"assetType"`
	URL       string       `json:"url"`
	CreatedAt time.Time    `json:"createdAt"`
}

// CreateAssetRequest represents a request to attach an asset
type CreateAssetRequest struct {
	OwnerID  string       `json:"ownerId"`
	Language string       `json:"language"`
	Variant  AssetVariant `json:"variant"`
	URL      string       `json:"url"`
}

// AssetMap is the public catalog shape for assets: language -> variant -> url
type AssetMap map[string]map[string]string

// BuildAssetMap reshapes flat asset rows of one type into language -> variant -> url
func BuildAssetMap(assets []Asset, assetType AssetType) AssetMap {
	result := AssetMap{}
	for _, asset := range assets {
		if asset.AssetType != assetType {
			continue
		}
		if _, ok := result[asset.Language]; !ok {
			result[asset.Language] = map[string]string{}
		}
		result[asset.Language][string(asset.Variant)] = asset.URL
	}
	return result
}
