package eveapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestStarbaseList(t *testing.T) {
	client, _ := testClient(t, "starbaselist.xml", ClientOptions{
		Key: &Key{KeyID: "12345", VCode: "abcdef"},
	})

	got, err := client.StarbaseList(context.Background())
	require.NoError(t, err)

	want := map[string]Starbase{
		"100449451": {
			TypeID:          "27538",
			LocationID:      "30004470",
			MoonID:          "40283563",
			State:           4,
			StateTimestamp:  "2014-01-01 15:30:00",
			OnlineTimestamp: "2013-04-26 16:12:00",
			StandingOwnerID: "1727758877",
		},
	}
	require.Empty(t, cmp.Diff(want, got.Items))
}

func TestStarbaseDetail(t *testing.T) {
	client, f := testClient(t, "starbasedetail.xml", ClientOptions{
		Key: &Key{KeyID: "12345", VCode: "abcdef"},
	})

	got, err := client.StarbaseDetail(context.Background(), "100449451")
	require.NoError(t, err)
	require.Equal(t, "100449451", f.query.Get("itemID"))

	require.Equal(t, int64(4), got.State)
	require.Equal(t, StarbaseGeneralSettings{
		UsageFlags:              3,
		AllowCorporationMembers: true,
		AllowAllianceMembers:    true,
	}, got.GeneralSettings)
	require.Equal(t, StarbaseCombatSettings{
		UseStandingsFromOwnerID: "1727758877",
		OnStatusDropEnabled:     true,
		OnStatusDropStanding:    5,
		OnAggression:            true,
		OnCorporationWar:        true,
	}, got.CombatSettings)
	require.Empty(t, cmp.Diff(map[string]int64{
		"4247":  3683,
		"16275": 2500,
	}, got.Fuel))
}
