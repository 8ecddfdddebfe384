package eveapi

import "context"

// Division is one hangar or wallet division of a corporation.
type Division struct {
	Description string `json:"description"`
}

// CorporationLogo is the layered logo description from the sheet.
type CorporationLogo struct {
	GraphicID string `json:"graphic_id"`
	Shape1    int64  `json:"shape_1"`
	Shape2    int64  `json:"shape_2"`
	Shape3    int64  `json:"shape_3"`
	Color1    int64  `json:"color_1"`
	Color2    int64  `json:"color_2"`
	Color3    int64  `json:"color_3"`
}

// CorporationSheet is the corporation's public sheet, plus divisions
// when the key has director access.
type CorporationSheet struct {
	Meta            Meta                `json:"meta"`
	CorporationID   string              `json:"corporation_id"`
	CorporationName string              `json:"corporation_name"`
	Ticker          string              `json:"ticker"`
	CEOID           string              `json:"ceo_id"`
	CEOName         string              `json:"ceo_name"`
	StationID       string              `json:"station_id"`
	StationName     string              `json:"station_name"`
	Description     string              `json:"description"`
	URL             string              `json:"url"`
	AllianceID      string              `json:"alliance_id"`
	AllianceName    string              `json:"alliance_name"`
	FactionID       string              `json:"faction_id"`
	TaxRate         float64             `json:"tax_rate"`
	MemberCount     int64               `json:"member_count"`
	MemberLimit     int64               `json:"member_limit"`
	Shares          int64               `json:"shares"`
	Divisions       map[string]Division `json:"divisions"`
	WalletDivisions map[string]Division `json:"wallet_divisions"`
	Logo            CorporationLogo     `json:"logo"`
}

// CorporationSheet fetches a corporation sheet. Without an explicit
// corporationID the API returns the sheet of the key owner's
// corporation, so the argument is genuinely optional.
func (c *Client) CorporationSheet(ctx context.Context, corporationID string) (*CorporationSheet, error) {
	ctx, span := tracer.Start(ctx, "eveapi:CorporationSheet")
	defer span.End()

	env, err := c.fetch(ctx, epCorporationSheet, map[string]string{
		"corporationID": corporationID,
	})
	if err != nil {
		return nil, fail(span, err)
	}

	res := row{ctx: ctx, n: env.result}
	out := &CorporationSheet{
		Meta:            env.meta(),
		CorporationID:   res.text("corporationID"),
		CorporationName: res.text("corporationName"),
		Ticker:          res.text("ticker"),
		CEOID:           res.text("ceoID"),
		CEOName:         res.text("ceoName"),
		StationID:       res.text("stationID"),
		StationName:     res.text("stationName"),
		Description:     res.text("description"),
		URL:             res.text("url"),
		AllianceID:      res.text("allianceID"),
		AllianceName:    res.text("allianceName"),
		FactionID:       res.text("factionID"),
		TaxRate:         res.textFloat64("taxRate"),
		MemberCount:     res.textInt64("memberCount"),
		MemberLimit:     res.textInt64("memberLimit"),
		Shares:          res.textInt64("shares"),
		Divisions:       map[string]Division{},
		WalletDivisions: map[string]Division{},
	}

	for accountKey, n := range env.rowset("divisions").Map("row") {
		out.Divisions[accountKey] = Division{Description: n.Attr("description")}
	}
	for accountKey, n := range env.rowset("walletDivisions").Map("row") {
		out.WalletDivisions[accountKey] = Division{Description: n.Attr("description")}
	}

	if logo := env.result.Child("logo"); logo != nil {
		lr := row{ctx: ctx, n: logo}
		out.Logo = CorporationLogo{
			GraphicID: lr.text("graphicID"),
			Shape1:    lr.textInt64("shape1"),
			Shape2:    lr.textInt64("shape2"),
			Shape3:    lr.textInt64("shape3"),
			Color1:    lr.textInt64("color1"),
			Color2:    lr.textInt64("color2"),
			Color3:    lr.textInt64("color3"),
		}
	}
	return out, nil
}
