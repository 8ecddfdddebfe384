package eveapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCorporationSheet(t *testing.T) {
	client, f := testClient(t, "corporationsheet.xml", ClientOptions{
		Key: &Key{KeyID: "12345", VCode: "abcdef"},
	})

	got, err := client.CorporationSheet(context.Background(), "")
	require.NoError(t, err)
	// without an explicit id the API answers for the key owner's corp
	require.False(t, f.query.Has("corporationID"))

	require.Equal(t, "238510404", got.CorporationID)
	require.Equal(t, "PUPPY", got.Ticker)
	require.Equal(t, "Alexis Prey", got.CEOName)
	require.Equal(t, 5.0, got.TaxRate)
	require.Equal(t, int64(42), got.MemberCount)
	require.Equal(t, int64(1000), got.Shares)

	require.Empty(t, cmp.Diff(map[string]Division{
		"1000": {Description: "Hangar 1"},
		"1001": {Description: "Salvage"},
	}, got.Divisions))
	require.Equal(t, "Master Wallet", got.WalletDivisions["1000"].Description)

	require.Equal(t, CorporationLogo{
		GraphicID: "0",
		Shape1:    448,
		Shape3:    418,
		Color1:    681,
		Color2:    676,
	}, got.Logo)
}
