package commands

import (
	"log"
	"sort"
	"strings"

	"evexml/lib/eveapi"

	"github.com/antzucaro/matchr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	skillsCmd.AddCommand(skillsSearchCmd)
	rootCmd.AddCommand(skillsCmd)
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Prints the skill tree grouped by market group.",
	Run: func(cmd *cobra.Command, args []string) {
		tree, err := client().SkillTree(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Group", "Skills"})
		for _, group := range tree.Groups {
			t.AppendRow(table.Row{group.Name, len(group.Skills)})
		}
		t.SortBy([]table.SortBy{{Name: "Group"}})
		t.Render()
	},
}

type skillMatch struct {
	typeID     string
	name       string
	group      string
	similarity float64
}

var skillsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Finds skills whose name best matches the query.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tree, err := client().SkillTree(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}

		matches := rankSkills(tree, args[0])
		if len(matches) > 10 {
			matches = matches[:10]
		}

		t := newTable()
		t.AppendHeader(table.Row{"Type ID", "Skill", "Group", "Score"})
		for _, m := range matches {
			t.AppendRow(table.Row{m.typeID, m.name, m.group, m.similarity})
		}
		t.Render()
	},
}

func rankSkills(tree *eveapi.SkillTree, query string) []skillMatch {
	query = strings.ToLower(query)

	var matches []skillMatch
	for _, group := range tree.Groups {
		for typeID, skill := range group.Skills {
			matches = append(matches, skillMatch{
				typeID:     typeID,
				name:       skill.Name,
				group:      group.Name,
				similarity: matchr.JaroWinkler(query, strings.ToLower(skill.Name), false),
			})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].similarity > matches[j].similarity
	})
	return matches
}
