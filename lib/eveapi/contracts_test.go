package eveapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestContracts(t *testing.T) {
	client, f := testClient(t, "contracts.xml", ClientOptions{
		Key:         &Key{KeyID: "12345", VCode: "abcdef"},
		CharacterID: "1365215823",
	})

	got, err := client.Contracts(context.Background(), "", "")
	require.NoError(t, err)
	require.False(t, f.query.Has("contractID"))

	want := Contract{
		IssuerID:       "1365215823",
		IssuerCorpID:   "238510404",
		AssigneeID:     "0",
		AcceptorID:     "0",
		StartStationID: "60011866",
		EndStationID:   "60008494",
		Type:           "Courier",
		Status:         "Outstanding",
		Title:          "Quick run to Amarr",
		Availability:   "Public",
		DateIssued:     "2013-12-30 17:20:00",
		DateExpired:    "2014-01-13 17:20:00",
		NumDays:        3,
		Reward:         5000000.00,
		Collateral:     100000000.00,
		Volume:         12500.5,
	}
	require.Empty(t, cmp.Diff(want, got.Items["72716865"]))
}

func TestContractItems(t *testing.T) {
	client, f := testClient(t, "contractitems.xml", ClientOptions{
		Key:         &Key{KeyID: "12345", VCode: "abcdef"},
		CharacterID: "1365215823",
	})

	got, err := client.ContractItems(context.Background(), "", "72716865")
	require.NoError(t, err)
	require.Equal(t, "72716865", f.query.Get("contractID"))

	want := map[string]ContractItem{
		"779576593": {TypeID: "17317", Quantity: 1, Included: true},
		"779576594": {TypeID: "645", Quantity: 1, RawQuantity: -1, Singleton: true, Included: true},
	}
	require.Empty(t, cmp.Diff(want, got.Items))
}
