package eveapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMailMessages(t *testing.T) {
	client, _ := testClient(t, "mailmessages.xml", ClientOptions{
		Key:         &Key{KeyID: "12345", VCode: "abcdef"},
		CharacterID: "1365215823",
	})

	got, err := client.MailMessages(context.Background(), "")
	require.NoError(t, err)

	want := map[string]MailMessage{
		"331477595": {
			SenderID:       "196379789",
			SenderName:     "Chribba",
			SentDate:       "2013-12-30 16:30:00",
			Title:          "Veldspar delivery",
			ToCharacterIDs: []string{"1365215823"},
		},
		"331477610": {
			SenderID:   "150337897",
			SenderName: "Hirento Raikkanen",
			SentDate:   "2013-12-31 09:10:00",
			Title:      "Fleet ops tonight",
			ToListID:   "145156607",
		},
	}
	require.Empty(t, cmp.Diff(want, got.Items))
}

func TestMailBodies(t *testing.T) {
	client, f := testClient(t, "mailbodies.xml", ClientOptions{
		Key:         &Key{KeyID: "12345", VCode: "abcdef"},
		CharacterID: "1365215823",
	})

	got, err := client.MailBodies(context.Background(), "", []string{"331477595", "331477610", "331477611"})
	require.NoError(t, err)
	require.Equal(t, "331477595,331477610,331477611", f.query.Get("ids"))

	require.Equal(t, map[string]string{
		"331477595": "Your veldspar is ready for pickup at Dodixie. Fly safe o7",
	}, got.Items)
	require.Equal(t, []string{"331477610", "331477611"}, got.MissingMessageIDs)
}

func TestMailingLists(t *testing.T) {
	client, _ := testClient(t, "mailinglists.xml", ClientOptions{
		Key:         &Key{KeyID: "12345", VCode: "abcdef"},
		CharacterID: "1365215823",
	})

	got, err := client.MailingLists(context.Background(), "")
	require.NoError(t, err)

	require.Equal(t, map[string]string{
		"145156607": "Fleet Pings",
		"145156608": "Market Chat",
	}, got.Items)
}
