package eveapi

import (
	"cmp"
	"context"
	"regexp"
	"slices"
	"strconv"
)

// Attributes are the five trainable character attributes.
type Attributes struct {
	Intelligence int64 `json:"intelligence"`
	Memory       int64 `json:"memory"`
	Charisma     int64 `json:"charisma"`
	Perception   int64 `json:"perception"`
	Willpower    int64 `json:"willpower"`
}

// AttributeEnhancer is one plugged-in implant boosting an attribute.
type AttributeEnhancer struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// CharacterSkill is one trained skill on a character sheet.
type CharacterSkill struct {
	SkillPoints int64 `json:"skillpoints"`
	Level       int64 `json:"level"`
	Published   bool  `json:"published"`
}

// CharacterSheet merges the sheet's independent rowsets (skills,
// certificates, corporation roles and titles) and the attribute block
// into one record.
type CharacterSheet struct {
	Meta               Meta                         `json:"meta"`
	CharacterID        string                       `json:"character_id"`
	Name               string                       `json:"name"`
	DateOfBirth        string                       `json:"date_of_birth"`
	Race               string                       `json:"race"`
	BloodLine          string                       `json:"blood_line"`
	Ancestry           string                       `json:"ancestry"`
	Gender             string                       `json:"gender"`
	CorporationID      string                       `json:"corporation_id"`
	CorporationName    string                       `json:"corporation_name"`
	AllianceID         string                       `json:"alliance_id"`
	AllianceName       string                       `json:"alliance_name"`
	CloneName          string                       `json:"clone_name"`
	CloneSkillPoints   int64                        `json:"clone_skill_points"`
	Balance            float64                      `json:"balance"`
	Attributes         Attributes                   `json:"attributes"`
	AttributeEnhancers map[string]AttributeEnhancer `json:"attribute_enhancers"`
	Skills             map[string]CharacterSkill    `json:"skills"`
	Certificates       []string                     `json:"certificates"`
	CorporationRoles   map[string]string            `json:"corporation_roles"`
	CorporationTitles  map[string]string            `json:"corporation_titles"`
}

// enhancer elements are named by suffixing the attribute, e.g.
// memoryBonus; the leading lowercase run recovers the attribute name
var enhancerAttribute = regexp.MustCompile(`^[a-z]+`)

// CharacterSheet fetches the full character sheet. The explicit
// characterID wins over the configured default; with neither the call
// fails before any network traffic.
func (c *Client) CharacterSheet(ctx context.Context, characterID string) (*CharacterSheet, error) {
	ctx, span := tracer.Start(ctx, "eveapi:CharacterSheet")
	defer span.End()

	id, err := c.characterID(characterID)
	if err != nil {
		return nil, fail(span, err)
	}

	env, err := c.fetch(ctx, epCharacterSheet, map[string]string{"characterID": id})
	if err != nil {
		return nil, fail(span, err)
	}

	res := row{ctx: ctx, n: env.result}
	out := &CharacterSheet{
		Meta:               env.meta(),
		CharacterID:        res.text("characterID"),
		Name:               res.text("name"),
		DateOfBirth:        res.text("DoB"),
		Race:               res.text("race"),
		BloodLine:          res.text("bloodLine"),
		Ancestry:           res.text("ancestry"),
		Gender:             res.text("gender"),
		CorporationID:      res.text("corporationID"),
		CorporationName:    res.text("corporationName"),
		AllianceID:         res.text("allianceID"),
		AllianceName:       res.text("allianceName"),
		CloneName:          res.text("cloneName"),
		CloneSkillPoints:   res.textInt64("cloneSkillPoints"),
		Balance:            res.textFloat64("balance"),
		AttributeEnhancers: map[string]AttributeEnhancer{},
		Skills:             map[string]CharacterSkill{},
		CorporationRoles:   map[string]string{},
		CorporationTitles:  map[string]string{},
	}

	if attrs := env.result.Child("attributes"); attrs != nil {
		a := row{ctx: ctx, n: attrs}
		out.Attributes = Attributes{
			Intelligence: a.textInt64("intelligence"),
			Memory:       a.textInt64("memory"),
			Charisma:     a.textInt64("charisma"),
			Perception:   a.textInt64("perception"),
			Willpower:    a.textInt64("willpower"),
		}
	}

	if enhancers := env.result.Child("attributeEnhancers"); enhancers != nil {
		for _, e := range enhancers.Children() {
			er := row{ctx: ctx, n: e}
			out.AttributeEnhancers[enhancerAttribute.FindString(e.Tag)] = AttributeEnhancer{
				Name:  er.text("augmentatorName"),
				Value: er.textInt64("augmentatorValue"),
			}
		}
	}

	for id, n := range env.rowset("skills").Map("row") {
		r := row{ctx: ctx, n: n}
		out.Skills[id] = CharacterSkill{
			SkillPoints: r.int64("skillpoints"),
			Level:       r.int64("level"),
			Published:   r.bool("published"),
		}
	}
	for id := range env.rowset("certificates").Map("row") {
		out.Certificates = append(out.Certificates, id)
	}
	// certificate ids are numeric, order them as numbers
	slices.SortFunc(out.Certificates, func(a, b string) int {
		ai, _ := strconv.ParseInt(a, 10, 64)
		bi, _ := strconv.ParseInt(b, 10, 64)
		return cmp.Compare(ai, bi)
	})
	for id, n := range env.rowset("corporationRoles").Map("row") {
		out.CorporationRoles[id] = n.Attr("roleName")
	}
	for id, n := range env.rowset("corporationTitles").Map("row") {
		out.CorporationTitles[id] = n.Attr("titleName")
	}
	return out, nil
}

// SkillInTraining reports the skill currently training, if any.
// InTraining false with zeroed fields means the queue is idle, which
// is a normal result rather than an error.
type SkillInTraining struct {
	Meta          Meta   `json:"meta"`
	InTraining    bool   `json:"in_training"`
	TypeID        string `json:"type_id"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	StartSP       int64  `json:"start_sp"`
	DestinationSP int64  `json:"destination_sp"`
	ToLevel       int64  `json:"to_level"`
}

func (c *Client) SkillInTraining(ctx context.Context, characterID string) (*SkillInTraining, error) {
	ctx, span := tracer.Start(ctx, "eveapi:SkillInTraining")
	defer span.End()

	id, err := c.characterID(characterID)
	if err != nil {
		return nil, fail(span, err)
	}

	env, err := c.fetch(ctx, epSkillInTraining, map[string]string{"characterID": id})
	if err != nil {
		return nil, fail(span, err)
	}

	res := row{ctx: ctx, n: env.result}
	out := &SkillInTraining{
		Meta:       env.meta(),
		InTraining: res.textBool("skillInTraining"),
	}
	if !out.InTraining {
		return out, nil
	}
	out.TypeID = res.text("trainingTypeID")
	out.StartTime = res.text("trainingStartTime")
	out.EndTime = res.text("trainingEndTime")
	out.StartSP = res.textInt64("trainingStartSP")
	out.DestinationSP = res.textInt64("trainingDestinationSP")
	out.ToLevel = res.textInt64("trainingToLevel")
	return out, nil
}
