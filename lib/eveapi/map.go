package eveapi

import "context"

// SolarSystem is one row of the sovereignty map: who holds a system
// right now.
type SolarSystem struct {
	Name          string `json:"name"`
	AllianceID    string `json:"alliance_id"`
	FactionID     string `json:"faction_id"`
	CorporationID string `json:"corporation_id"`
}

// Sovereignty fetches the cluster-wide sovereignty snapshot, keyed by
// solar system id. The snapshot time arrives in Meta.DataTime in
// addition to the usual request time.
func (c *Client) Sovereignty(ctx context.Context) (Result[SolarSystem], error) {
	ctx, span := tracer.Start(ctx, "eveapi:Sovereignty")
	defer span.End()

	env, err := c.fetch(ctx, epSovereignty, nil)
	if err != nil {
		return Result[SolarSystem]{}, fail(span, err)
	}

	meta := env.meta()
	meta.DataTime = env.result.ChildText("dataTime")

	rows := env.rowset("solarSystems").Map("row")
	out := collect[SolarSystem](meta, len(rows))
	for id, n := range rows {
		r := row{ctx: ctx, n: n}
		out.Items[id] = SolarSystem{
			Name:          r.str("solarSystemName"),
			AllianceID:    r.str("allianceID"),
			FactionID:     r.str("factionID"),
			CorporationID: r.str("corporationID"),
		}
	}
	return out, nil
}
