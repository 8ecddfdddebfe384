package eveapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSkillTree(t *testing.T) {
	client, _ := testClient(t, "skilltree.xml", ClientOptions{})

	got, err := client.SkillTree(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Groups, 2)

	// the feed splits large groups across several group rows sharing
	// one groupID, their skills must merge
	drones := got.Groups["273"]
	require.Equal(t, "Drones", drones.Name)
	require.Len(t, drones.Skills, 3)

	want := Skill{
		Name:               "Heavy Drone Operation",
		Description:        "Skill at controlling heavy combat drones.",
		Rank:               5,
		Published:          true,
		PrimaryAttribute:   "memory",
		SecondaryAttribute: "perception",
		Bonuses:            map[string]float64{"damageMultiplierBonus": 5},
		RequiredSkills:     map[string]int64{"3436": 5, "3437": 4},
	}
	require.Empty(t, cmp.Diff(want, drones.Skills["3441"]))

	// a skill with no prerequisites keeps an empty, non-nil map
	require.NotNil(t, drones.Skills["3436"].RequiredSkills)
	require.Empty(t, drones.Skills["3436"].RequiredSkills)
	require.Equal(t, map[string]float64{"droneControlDistanceBonus": 5000}, drones.Skills["3436"].Bonuses)

	gunnery := got.Groups["255"]
	require.Equal(t, "Gunnery", gunnery.Name)
	require.Equal(t, "perception", gunnery.Skills["3300"].PrimaryAttribute)
	require.Equal(t, map[string]float64{"turretSpeeBonus": -2}, gunnery.Skills["3300"].Bonuses)
}

func TestSkillTreeIdempotent(t *testing.T) {
	client, _ := testClient(t, "skilltree.xml", ClientOptions{})
	ctx := context.Background()

	first, err := client.SkillTree(ctx)
	require.NoError(t, err)
	second, err := client.SkillTree(ctx)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(first, second))
}
