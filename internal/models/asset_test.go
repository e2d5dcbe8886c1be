package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAssetMap(t *testing.T) {
	assets := []Asset{
		{Language: "en", Variant: AssetVariantPortrait, AssetType: AssetTypePoster, URL: "https://cdn/en-portrait.jpg"},
		{Language: "en", Variant: AssetVariantLandscape, AssetType: AssetTypePoster, URL: "https://cdn/en-landscape.jpg"},
		{Language: "ja", Variant: AssetVariantPortrait, AssetType: AssetTypePoster, URL: "https://cdn/ja-portrait.jpg"},
		// Wrong type, must be filtered out
		{Language: "en", Variant: AssetVariantSquare, AssetType: AssetTypeThumbnail, URL: "https://cdn/en-square.jpg"},
	}

	posters := BuildAssetMap(assets, AssetTypePoster)

	assert.Len(t, posters, 2)
	assert.Equal(t, "https://cdn/en-portrait.jpg", posters["en"]["portrait"])
	assert.Equal(t, "https://cdn/en-landscape.jpg", posters["en"]["landscape"])
	assert.Equal(t, "https://cdn/ja-portrait.jpg", posters["ja"]["portrait"])
	assert.NotContains(t, posters["en"], "square")
}

func TestBuildAssetMap_Empty(t *testing.T) {
	assert.Empty(t, BuildAssetMap(nil, AssetTypePoster))
}
