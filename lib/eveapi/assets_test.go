package eveapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAssetList(t *testing.T) {
	client, _ := testClient(t, "assetlist.xml", ClientOptions{
		Key:         &Key{KeyID: "12345", VCode: "abcdef"},
		CharacterID: "1365215823",
	})

	got, err := client.AssetList(context.Background(), "")
	require.NoError(t, err)

	station := "60002959"
	want := map[string]AssetNode{
		"100": {
			ItemID:     "100",
			LocationID: &station,
			TypeID:     "17366",
			Quantity:   1,
			Flag:       4,
			Singleton:  true,
			Contents: map[string]AssetNode{
				"200": {
					ItemID:   "200",
					TypeID:   "34",
					Quantity: 5000,
					Flag:     27,
				},
			},
		},
		"300": {
			ItemID:      "300",
			LocationID:  &station,
			TypeID:      "638",
			Quantity:    1,
			RawQuantity: -1,
			Flag:        4,
			Singleton:   true,
		},
	}
	require.Empty(t, cmp.Diff(want, got.Items))
}

func TestAssetSparseLocationPreserved(t *testing.T) {
	client, _ := testClient(t, "assetlist.xml", ClientOptions{
		CharacterID: "1365215823",
	})

	got, err := client.AssetList(context.Background(), "")
	require.NoError(t, err)

	// contained items inherit their container's location, the feed
	// omits the attribute and the node must omit the field
	inner := got.Items["100"].Contents["200"]
	require.Nil(t, inner.LocationID)
	require.NotNil(t, got.Items["100"].LocationID)
}
