package eveapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCharacterSheet(t *testing.T) {
	client, _ := testClient(t, "charactersheet.xml", ClientOptions{
		Key: &Key{KeyID: "12345", VCode: "abcdef"},
	})

	got, err := client.CharacterSheet(context.Background(), "1365215823")
	require.NoError(t, err)

	require.Equal(t, "1365215823", got.CharacterID)
	require.Equal(t, "Alexis Prey", got.Name)
	require.Equal(t, "2006-05-28 15:42:00", got.DateOfBirth)
	require.Equal(t, "Intaki", got.BloodLine)
	require.Equal(t, "Clone Grade Pi", got.CloneName)
	require.Equal(t, int64(54600000), got.CloneSkillPoints)
	require.Equal(t, 563974777.91, got.Balance)

	require.Equal(t, Attributes{
		Intelligence: 20,
		Memory:       20,
		Charisma:     19,
		Perception:   20,
		Willpower:    20,
	}, got.Attributes)

	// enhancer element names carry the attribute with a Bonus suffix,
	// the map must be keyed by the recovered base attribute
	require.Empty(t, cmp.Diff(map[string]AttributeEnhancer{
		"memory":     {Name: "Memory Augmentation - Basic", Value: 3},
		"perception": {Name: "Ocular Filter - Basic", Value: 3},
	}, got.AttributeEnhancers))

	require.Empty(t, cmp.Diff(map[string]CharacterSkill{
		"3431":  {SkillPoints: 8000, Level: 3, Published: true},
		"3413":  {SkillPoints: 512000, Level: 5, Published: true},
		"21059": {SkillPoints: 500, Level: 1, Published: false},
	}, got.Skills))

	// numeric order, not lexicographic: 10 sorts after 5
	require.Equal(t, []string{"1", "5", "10"}, got.Certificates)
	require.Equal(t, map[string]string{"1": "roleDirector"}, got.CorporationRoles)
	require.Equal(t, map[string]string{"1": "Member"}, got.CorporationTitles)
}

func TestSkillInTraining(t *testing.T) {
	client, _ := testClient(t, "skillintraining.xml", ClientOptions{
		CharacterID: "1365215823",
	})

	got, err := client.SkillInTraining(context.Background(), "")
	require.NoError(t, err)

	require.True(t, got.InTraining)
	require.Equal(t, "3305", got.TypeID)
	require.Equal(t, "2013-12-29 11:32:45", got.StartTime)
	require.Equal(t, "2014-01-03 16:01:24", got.EndTime)
	require.Equal(t, int64(24000), got.StartSP)
	require.Equal(t, int64(135765), got.DestinationSP)
	require.Equal(t, int64(4), got.ToLevel)
}

func TestSkillInTrainingIdleQueue(t *testing.T) {
	client, _ := testClient(t, "skillintraining_idle.xml", ClientOptions{
		CharacterID: "1365215823",
	})

	got, err := client.SkillInTraining(context.Background(), "")
	require.NoError(t, err)

	// an idle queue is a normal result, not an error
	require.False(t, got.InTraining)
	require.Empty(t, got.TypeID)
	require.Zero(t, got.ToLevel)
	require.Equal(t, "2014-01-01 12:45:00", got.Meta.CachedUntil)
}
