package eveapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServerStatus(t *testing.T) {
	client, f := testClient(t, "serverstatus.xml", ClientOptions{})

	got, err := client.ServerStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, "server/ServerStatus.xml.aspx", f.path)

	require.True(t, got.Open)
	require.Equal(t, int64(31458), got.OnlinePlayers)
	require.Equal(t, "2014-01-01 12:03:00", got.Meta.CachedUntil)
}
