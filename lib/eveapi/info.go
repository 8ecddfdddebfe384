package eveapi

import "context"

// EmploymentRecord is one corporation stint in a character's history.
type EmploymentRecord struct {
	CorporationID string `json:"corporation_id"`
	StartDate     string `json:"start_date"`
}

// CharacterInfo is the public/partially-authenticated character
// summary. Balance and location fields are populated only when the
// key grants them; anonymously they stay zero.
type CharacterInfo struct {
	Meta              Meta                        `json:"meta"`
	CharacterID       string                      `json:"character_id"`
	Name              string                      `json:"name"`
	Race              string                      `json:"race"`
	BloodLine         string                      `json:"blood_line"`
	AccountBalance    float64                     `json:"account_balance"`
	SkillPoints       int64                       `json:"skill_points"`
	ShipName          string                      `json:"ship_name"`
	ShipTypeID        string                      `json:"ship_type_id"`
	ShipTypeName      string                      `json:"ship_type_name"`
	CorporationID     string                      `json:"corporation_id"`
	CorporationName   string                      `json:"corporation_name"`
	CorporationDate   string                      `json:"corporation_date"`
	AllianceID        string                      `json:"alliance_id"`
	AllianceName      string                      `json:"alliance_name"`
	AllianceDate      string                      `json:"alliance_date"`
	LastKnownLocation string                      `json:"last_known_location"`
	SecurityStatus    float64                     `json:"security_status"`
	EmploymentHistory map[string]EmploymentRecord `json:"employment_history"`
}

// CharacterInfo fetches the character summary feed. The character id
// is required; there is no default fallback because the feed is not
// bound to the key's own characters.
func (c *Client) CharacterInfo(ctx context.Context, characterID string) (*CharacterInfo, error) {
	ctx, span := tracer.Start(ctx, "eveapi:CharacterInfo")
	defer span.End()

	id, err := required("characterID", characterID)
	if err != nil {
		return nil, fail(span, err)
	}

	env, err := c.fetch(ctx, epCharacterInfo, map[string]string{"characterID": id})
	if err != nil {
		return nil, fail(span, err)
	}

	res := row{ctx: ctx, n: env.result}
	out := &CharacterInfo{
		Meta:              env.meta(),
		CharacterID:       res.text("characterID"),
		Name:              res.text("characterName"),
		Race:              res.text("race"),
		BloodLine:         res.text("bloodline"),
		AccountBalance:    res.textFloat64("accountBalance"),
		SkillPoints:       res.textInt64("skillPoints"),
		ShipName:          res.text("shipName"),
		ShipTypeID:        res.text("shipTypeID"),
		ShipTypeName:      res.text("shipTypeName"),
		CorporationID:     res.text("corporationID"),
		CorporationName:   res.text("corporation"),
		CorporationDate:   res.text("corporationDate"),
		AllianceID:        res.text("allianceID"),
		AllianceName:      res.text("alliance"),
		AllianceDate:      res.text("allianceDate"),
		LastKnownLocation: res.text("lastKnownLocation"),
		SecurityStatus:    res.textFloat64("securityStatus"),
		EmploymentHistory: map[string]EmploymentRecord{},
	}
	for recordID, n := range env.rowset("employmentHistory").Map("row") {
		r := row{ctx: ctx, n: n}
		out.EmploymentHistory[recordID] = EmploymentRecord{
			CorporationID: r.str("corporationID"),
			StartDate:     r.str("startDate"),
		}
	}
	return out, nil
}
