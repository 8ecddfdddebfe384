package eveapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRefTypes(t *testing.T) {
	client, _ := testClient(t, "reftypes.xml", ClientOptions{})

	got, err := client.RefTypes(context.Background())
	require.NoError(t, err)

	want := Result[string]{
		Meta: Meta{
			CurrentTime: "2013-12-31 22:00:00",
			CachedUntil: "2014-01-01 00:00:00",
		},
		Items: map[string]string{
			"1": "Bounty Prizes",
			"2": "Insurance",
		},
	}
	require.Empty(t, cmp.Diff(want, got))
}

func TestCharacterIDs(t *testing.T) {
	client, f := testClient(t, "characterid.xml", ClientOptions{})

	got, err := client.CharacterIDs(context.Background(), []string{"Chribba", "No Such Pilot"})
	require.NoError(t, err)
	require.Equal(t, "eve/CharacterID.xml.aspx", f.path)
	require.Equal(t, "Chribba,No Such Pilot", f.query.Get("names"))

	require.Equal(t, map[string]string{
		"Chribba":       "196379789",
		"No Such Pilot": "0",
	}, got.Items)
}

func TestCharacterNames(t *testing.T) {
	client, f := testClient(t, "charactername.xml", ClientOptions{})

	got, err := client.CharacterNames(context.Background(), []string{"196379789", "154503426"})
	require.NoError(t, err)
	require.Equal(t, "196379789,154503426", f.query.Get("ids"))

	require.Equal(t, map[string]string{
		"196379789": "Chribba",
		"154503426": "Entity",
	}, got.Items)
}

func TestStationList(t *testing.T) {
	client, _ := testClient(t, "stationlist.xml", ClientOptions{})

	got, err := client.StationList(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	want := Station{
		Name:            "DB1R-4 II - duperTum Corp Minmatar Service Outpost",
		TypeID:          "21646",
		SolarSystemID:   "30004470",
		CorporationID:   "150020944",
		CorporationName: "duperTum Corp",
	}
	require.Empty(t, cmp.Diff(want, got.Items["61000001"]))
}
