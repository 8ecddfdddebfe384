package eveapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCharacters(t *testing.T) {
	client, _ := testClient(t, "characters.xml", ClientOptions{
		Key: &Key{KeyID: "12345", VCode: "abcdef"},
	})

	got, err := client.Characters(context.Background())
	require.NoError(t, err)

	want := map[string]Character{
		"1365215823": {
			Name:            "Alexis Prey",
			CorporationID:   "238510404",
			CorporationName: "Puppies To the Rescue",
		},
		"150337897": {
			Name:            "Hirento Raikkanen",
			CorporationID:   "1000169",
			CorporationName: "Center for Advanced Studies",
		},
	}
	require.Empty(t, cmp.Diff(want, got.Items))
}

func TestAPIKeyInfo(t *testing.T) {
	client, _ := testClient(t, "apikeyinfo.xml", ClientOptions{
		Key: &Key{KeyID: "12345", VCode: "abcdef"},
	})

	got, err := client.APIKeyInfo(context.Background())
	require.NoError(t, err)

	require.Equal(t, int64(268435455), got.AccessMask)
	require.Equal(t, "Account", got.Type)
	require.Equal(t, "2015-01-01 00:00:00", got.Expires)
	require.Empty(t, cmp.Diff(map[string]KeyCharacter{
		"1365215823": {
			Name:            "Alexis Prey",
			CorporationID:   "238510404",
			CorporationName: "Puppies To the Rescue",
		},
	}, got.Characters))
}

func TestAccountStatus(t *testing.T) {
	client, _ := testClient(t, "accountstatus.xml", ClientOptions{
		Key: &Key{KeyID: "12345", VCode: "abcdef"},
	})

	got, err := client.AccountStatus(context.Background())
	require.NoError(t, err)

	require.Equal(t, "2014-06-01 00:00:00", got.PaidUntil)
	require.Equal(t, "2006-05-28 15:12:00", got.CreateDate)
	require.Equal(t, int64(3278), got.LogonCount)
	require.Equal(t, int64(281502), got.LogonMinutes)
}
