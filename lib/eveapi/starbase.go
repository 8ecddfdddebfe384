package eveapi

import "context"

// Starbase is one control tower from the corporation's starbase list.
type Starbase struct {
	TypeID          string `json:"type_id"`
	LocationID      string `json:"location_id"`
	MoonID          string `json:"moon_id"`
	State           int64  `json:"state"`
	StateTimestamp  string `json:"state_timestamp"`
	OnlineTimestamp string `json:"online_timestamp"`
	StandingOwnerID string `json:"standing_owner_id"`
}

// StarbaseList fetches the corporation's control towers keyed by item
// id.
func (c *Client) StarbaseList(ctx context.Context) (Result[Starbase], error) {
	ctx, span := tracer.Start(ctx, "eveapi:StarbaseList")
	defer span.End()

	env, err := c.fetch(ctx, epStarbaseList, nil)
	if err != nil {
		return Result[Starbase]{}, fail(span, err)
	}

	rows := env.rowset("starbases").Map("row")
	out := collect[Starbase](env.meta(), len(rows))
	for itemID, n := range rows {
		r := row{ctx: ctx, n: n}
		out.Items[itemID] = Starbase{
			TypeID:          r.str("typeID"),
			LocationID:      r.str("locationID"),
			MoonID:          r.str("moonID"),
			State:           r.int64("state"),
			StateTimestamp:  r.str("stateTimestamp"),
			OnlineTimestamp: r.str("onlineTimestamp"),
			StandingOwnerID: r.str("standingOwnerID"),
		}
	}
	return out, nil
}

// StarbaseGeneralSettings is the tower's access configuration.
type StarbaseGeneralSettings struct {
	UsageFlags              int64 `json:"usage_flags"`
	DeployFlags             int64 `json:"deploy_flags"`
	AllowCorporationMembers bool  `json:"allow_corporation_members"`
	AllowAllianceMembers    bool  `json:"allow_alliance_members"`
}

// StarbaseCombatSettings is the tower's automated defense
// configuration.
type StarbaseCombatSettings struct {
	UseStandingsFromOwnerID string  `json:"use_standings_from_owner_id"`
	OnStandingDrop          float64 `json:"on_standing_drop"`
	OnStatusDropEnabled     bool    `json:"on_status_drop_enabled"`
	OnStatusDropStanding    float64 `json:"on_status_drop_standing"`
	OnAggression            bool    `json:"on_aggression"`
	OnCorporationWar        bool    `json:"on_corporation_war"`
}

// StarbaseDetail is the per-tower detail feed: state, settings, and
// remaining fuel keyed by fuel type id.
type StarbaseDetail struct {
	Meta            Meta                    `json:"meta"`
	State           int64                   `json:"state"`
	StateTimestamp  string                  `json:"state_timestamp"`
	OnlineTimestamp string                  `json:"online_timestamp"`
	GeneralSettings StarbaseGeneralSettings `json:"general_settings"`
	CombatSettings  StarbaseCombatSettings  `json:"combat_settings"`
	Fuel            map[string]int64        `json:"fuel"`
}

// StarbaseDetail fetches one tower's detail feed. The tower's item id
// is required.
func (c *Client) StarbaseDetail(ctx context.Context, itemID string) (*StarbaseDetail, error) {
	ctx, span := tracer.Start(ctx, "eveapi:StarbaseDetail")
	defer span.End()

	id, err := required("itemID", itemID)
	if err != nil {
		return nil, fail(span, err)
	}

	env, err := c.fetch(ctx, epStarbaseDetail, map[string]string{"itemID": id})
	if err != nil {
		return nil, fail(span, err)
	}

	res := row{ctx: ctx, n: env.result}
	out := &StarbaseDetail{
		Meta:            env.meta(),
		State:           res.textInt64("state"),
		StateTimestamp:  res.text("stateTimestamp"),
		OnlineTimestamp: res.text("onlineTimestamp"),
		Fuel:            map[string]int64{},
	}

	if general := env.result.Child("generalSettings"); general != nil {
		g := row{ctx: ctx, n: general}
		out.GeneralSettings = StarbaseGeneralSettings{
			UsageFlags:              g.textInt64("usageFlags"),
			DeployFlags:             g.textInt64("deployFlags"),
			AllowCorporationMembers: g.textBool("allowCorporationMembers"),
			AllowAllianceMembers:    g.textBool("allowAllianceMembers"),
		}
	}
	if combat := env.result.Child("combatSettings"); combat != nil {
		out.CombatSettings = StarbaseCombatSettings{
			UseStandingsFromOwnerID: combat.Child("useStandingsFrom").Attr("ownerID"),
			OnStandingDrop:          row{ctx: ctx, n: combat.Child("onStandingDrop")}.float64("standing"),
			OnStatusDropEnabled:     combat.Child("onStatusDrop").Attr("enabled") == "1",
			OnStatusDropStanding:    row{ctx: ctx, n: combat.Child("onStatusDrop")}.float64("standing"),
			OnAggression:            combat.Child("onAggression").Attr("enabled") == "1",
			OnCorporationWar:        combat.Child("onCorporationWar").Attr("enabled") == "1",
		}
	}

	for typeID, n := range env.rowset("fuel").Map("row") {
		out.Fuel[typeID] = row{ctx: ctx, n: n}.int64("quantity")
	}
	return out, nil
}
