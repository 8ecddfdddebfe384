package eveapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestWalletJournal(t *testing.T) {
	client, f := testClient(t, "walletjournal.xml", ClientOptions{
		Key:         &Key{KeyID: "12345", VCode: "abcdef"},
		CharacterID: "1365215823",
	})

	got, err := client.WalletJournal(context.Background(), WalletOptions{
		FromID:   "7890123460",
		RowCount: "50",
	})
	require.NoError(t, err)
	require.Equal(t, "7890123460", f.query.Get("fromID"))
	require.Equal(t, "50", f.query.Get("rowCount"))
	require.False(t, f.query.Has("accountKey"))

	require.Len(t, got.Items, 2)
	want := JournalEntry{
		Date:       "2014-01-01 10:37:00",
		RefTypeID:  "85",
		OwnerName1: "CONCORD",
		OwnerID1:   "1000125",
		OwnerName2: "Alexis Prey",
		OwnerID2:   "1365215823",
		ArgName1:   "9-980U",
		ArgID1:     "30004470",
		Amount:     105264.46,
		Balance:    563974777.91,
		Reason:     "24156:1,24174:2",
	}
	require.Empty(t, cmp.Diff(want, got.Items["7890123456"]))
	require.Equal(t, -50000000.00, got.Items["7890123450"].Amount)
}

func TestWalletTransactions(t *testing.T) {
	client, _ := testClient(t, "wallettransactions.xml", ClientOptions{
		Key:         &Key{KeyID: "12345", VCode: "abcdef"},
		CharacterID: "1365215823",
	})

	got, err := client.WalletTransactions(context.Background(), WalletOptions{})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	want := WalletTransaction{
		DateTime:             "2014-01-01 10:15:00",
		Quantity:             5000,
		TypeName:             "Tritanium",
		TypeID:               "34",
		Price:                5.27,
		ClientID:             "196379789",
		ClientName:           "Chribba",
		StationID:            "60011866",
		StationName:          "Dodixie IX - Moon 20 - Federation Navy Assembly Plant",
		TransactionType:      "sell",
		TransactionFor:       "personal",
		JournalTransactionID: "7890123455",
	}
	require.Empty(t, cmp.Diff(want, got.Items["1224003100"]))
}
