package eveapi

import (
	"context"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Skill is one entry of the skill tree.
type Skill struct {
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Rank               int64              `json:"rank"`
	Published          bool               `json:"published"`
	PrimaryAttribute   string             `json:"primary_attribute"`
	SecondaryAttribute string             `json:"secondary_attribute"`
	Bonuses            map[string]float64 `json:"bonuses"`
	RequiredSkills     map[string]int64   `json:"required_skills"`
}

// SkillGroup is one market group of skills, keyed by skill type id.
type SkillGroup struct {
	Name   string           `json:"name"`
	Skills map[string]Skill `json:"skills"`
}

// SkillTree is the full static skill catalogue, keyed by group id.
type SkillTree struct {
	Meta   Meta                  `json:"meta"`
	Groups map[string]SkillGroup `json:"groups"`
}

// SkillTree fetches the static skill catalogue. This is the one feed
// normalized by walking the element tree directly: its row elements
// recur at the group, skill, bonus and required-skill levels with
// clashing key attributes, so each nesting level is resolved with a
// query scoped to its parent instead of global re-keying.
func (c *Client) SkillTree(ctx context.Context) (*SkillTree, error) {
	ctx, span := tracer.Start(ctx, "eveapi:SkillTree")
	defer span.End()

	env, err := c.fetch(ctx, epSkillTree, nil)
	if err != nil {
		return nil, fail(span, err)
	}

	groupRowset := selectRowset(env.dom, "skillGroups")
	if groupRowset == nil {
		return nil, fail(span, &SchemaError{Reason: "skill tree document has no skillGroups rowset"})
	}

	out := &SkillTree{Meta: env.meta(), Groups: map[string]SkillGroup{}}
	for _, groupRow := range groupRowset.SelectElements("row") {
		groupID := groupRow.SelectAttrValue("groupID", "")
		group, ok := out.Groups[groupID]
		if !ok {
			group = SkillGroup{
				Name:   groupRow.SelectAttrValue("groupName", ""),
				Skills: map[string]Skill{},
			}
		}
		// the API splits large groups across several group rows
		// sharing one groupID, their skills merge into one group
		for _, skillRow := range selectRowsetRows(groupRow, "skills") {
			group.Skills[skillRow.SelectAttrValue("typeID", "")] = normalizeSkill(skillRow)
		}
		out.Groups[groupID] = group
	}
	return out, nil
}

func normalizeSkill(el *etree.Element) Skill {
	skill := Skill{
		Name:           el.SelectAttrValue("typeName", ""),
		Description:    elementText(el, "description"),
		Rank:           domInt64(el, "rank"),
		Published:      el.SelectAttrValue("published", "") == "1",
		Bonuses:        map[string]float64{},
		RequiredSkills: map[string]int64{},
	}
	if attrs := el.SelectElement("requiredAttributes"); attrs != nil {
		skill.PrimaryAttribute = elementText(attrs, "primaryAttribute")
		skill.SecondaryAttribute = elementText(attrs, "secondaryAttribute")
	}
	for _, bonus := range selectRowsetRows(el, "skillBonusCollection") {
		name := bonus.SelectAttrValue("bonusType", "")
		value, err := strconv.ParseFloat(bonus.SelectAttrValue("bonusValue", ""), 64)
		if err != nil {
			continue
		}
		skill.Bonuses[name] = value
	}
	for _, req := range selectRowsetRows(el, "requiredSkills") {
		level, err := strconv.ParseInt(req.SelectAttrValue("skillLevel", ""), 10, 64)
		if err != nil {
			continue
		}
		skill.RequiredSkills[req.SelectAttrValue("typeID", "")] = level
	}
	return skill
}

// selectRowset finds the direct child rowset with the given name
// attribute, never descending into nested rows.
func selectRowset(el *etree.Element, name string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, rowset := range el.SelectElements("rowset") {
		if rowset.SelectAttrValue("name", "") == name {
			return rowset
		}
	}
	return nil
}

func selectRowsetRows(el *etree.Element, name string) []*etree.Element {
	rowset := selectRowset(el, name)
	if rowset == nil {
		return nil
	}
	return rowset.SelectElements("row")
}

func domInt64(el *etree.Element, tag string) int64 {
	raw := strings.TrimSpace(elementText(el, tag))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
