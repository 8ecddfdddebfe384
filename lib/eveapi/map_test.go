package eveapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSovereignty(t *testing.T) {
	client, _ := testClient(t, "sovereignty.xml", ClientOptions{})

	got, err := client.Sovereignty(context.Background())
	require.NoError(t, err)

	want := Meta{
		CurrentTime: "2014-01-01 12:05:00",
		CachedUntil: "2014-01-01 13:05:00",
		DataTime:    "2014-01-01 11:50:00",
	}
	require.Empty(t, cmp.Diff(want, got.Meta))

	require.Len(t, got.Items, 2)
	require.Equal(t, SolarSystem{
		Name:          "DB1R-4",
		AllianceID:    "1727758877",
		FactionID:     "0",
		CorporationID: "150020944",
	}, got.Items["30004470"])
	// NPC systems report faction sovereignty with zeroed holders
	require.Equal(t, "500007", got.Items["30000001"].FactionID)
	require.Equal(t, "0", got.Items["30000001"].AllianceID)
}
