package eveapi

import (
	"context"
	"strings"
)

// RefTypes fetches the journal reference type catalogue, a flat map
// from reference type id to its display name.
func (c *Client) RefTypes(ctx context.Context) (Result[string], error) {
	ctx, span := tracer.Start(ctx, "eveapi:RefTypes")
	defer span.End()

	env, err := c.fetch(ctx, epRefTypes, nil)
	if err != nil {
		return Result[string]{}, fail(span, err)
	}

	rows := env.rowset("refTypes").Map("row")
	out := collect[string](env.meta(), len(rows))
	for id, r := range rows {
		out.Items[id] = r.Attr("refTypeName")
	}
	return out, nil
}

// CharacterIDs resolves character names to ids. The result is keyed by
// the queried name; names the API does not know come back with id "0".
func (c *Client) CharacterIDs(ctx context.Context, names []string) (Result[string], error) {
	ctx, span := tracer.Start(ctx, "eveapi:CharacterIDs")
	defer span.End()

	if len(names) == 0 {
		return Result[string]{}, fail(span, &MissingIdentifierError{Param: "names"})
	}

	env, err := c.fetch(ctx, epCharacterID, map[string]string{
		"names": strings.Join(names, ","),
	})
	if err != nil {
		return Result[string]{}, fail(span, err)
	}

	rows := env.rowset("characters").Map("row")
	out := collect[string](env.meta(), len(rows))
	for name, r := range rows {
		out.Items[name] = r.Attr("characterID")
	}
	return out, nil
}

// CharacterNames is the inverse of CharacterIDs: ids in, a map from
// character id to name out.
func (c *Client) CharacterNames(ctx context.Context, ids []string) (Result[string], error) {
	ctx, span := tracer.Start(ctx, "eveapi:CharacterNames")
	defer span.End()

	if len(ids) == 0 {
		return Result[string]{}, fail(span, &MissingIdentifierError{Param: "ids"})
	}

	env, err := c.fetch(ctx, epCharacterName, map[string]string{
		"ids": strings.Join(ids, ","),
	})
	if err != nil {
		return Result[string]{}, fail(span, err)
	}

	rows := env.rowset("characters").Map("row")
	out := collect[string](env.meta(), len(rows))
	for id, r := range rows {
		out.Items[id] = r.Attr("name")
	}
	return out, nil
}

// Station is one conquerable outpost.
type Station struct {
	Name            string `json:"name"`
	TypeID          string `json:"type_id"`
	SolarSystemID   string `json:"solar_system_id"`
	CorporationID   string `json:"corporation_id"`
	CorporationName string `json:"corporation_name"`
}

// StationList fetches every conquerable station, keyed by station id.
func (c *Client) StationList(ctx context.Context) (Result[Station], error) {
	ctx, span := tracer.Start(ctx, "eveapi:StationList")
	defer span.End()

	env, err := c.fetch(ctx, epStationList, nil)
	if err != nil {
		return Result[Station]{}, fail(span, err)
	}

	rows := env.rowset("outposts").Map("row")
	out := collect[Station](env.meta(), len(rows))
	for id, n := range rows {
		r := row{ctx: ctx, n: n}
		out.Items[id] = Station{
			Name:            r.str("stationName"),
			TypeID:          r.str("stationTypeID"),
			SolarSystemID:   r.str("solarSystemID"),
			CorporationID:   r.str("corporationID"),
			CorporationName: r.str("corporationName"),
		}
	}
	return out, nil
}
