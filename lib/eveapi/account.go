package eveapi

import "context"

// Character is one pilot on the account, as listed by the account
// character roster.
type Character struct {
	Name            string `json:"name"`
	CorporationID   string `json:"corporation_id"`
	CorporationName string `json:"corporation_name"`
}

// Characters lists the pilots on the key's account, keyed by character
// id.
func (c *Client) Characters(ctx context.Context) (Result[Character], error) {
	ctx, span := tracer.Start(ctx, "eveapi:Characters")
	defer span.End()

	env, err := c.fetch(ctx, epCharacters, nil)
	if err != nil {
		return Result[Character]{}, fail(span, err)
	}

	rows := env.rowset("characters").Map("row")
	out := collect[Character](env.meta(), len(rows))
	for id, n := range rows {
		r := row{ctx: ctx, n: n}
		out.Items[id] = Character{
			Name:            r.str("name"),
			CorporationID:   r.str("corporationID"),
			CorporationName: r.str("corporationName"),
		}
	}
	return out, nil
}

// KeyCharacter is one pilot the key grants access to.
type KeyCharacter struct {
	Name            string `json:"name"`
	CorporationID   string `json:"corporation_id"`
	CorporationName string `json:"corporation_name"`
}

// KeyInfo describes the key itself: what it can read, whether it
// expires, and which characters it covers.
type KeyInfo struct {
	Meta       Meta                    `json:"meta"`
	AccessMask int64                   `json:"access_mask"`
	Type       string                  `json:"type"`
	Expires    string                  `json:"expires"`
	Characters map[string]KeyCharacter `json:"characters"`
}

// APIKeyInfo describes the configured credential pair.
func (c *Client) APIKeyInfo(ctx context.Context) (*KeyInfo, error) {
	ctx, span := tracer.Start(ctx, "eveapi:APIKeyInfo")
	defer span.End()

	env, err := c.fetch(ctx, epAPIKeyInfo, nil)
	if err != nil {
		return nil, fail(span, err)
	}

	key := env.result.Child("key")
	if key == nil {
		return nil, fail(span, &SchemaError{Reason: "key info document has no key element"})
	}
	kr := row{ctx: ctx, n: key}

	out := &KeyInfo{
		Meta:       env.meta(),
		AccessMask: kr.int64("accessMask"),
		Type:       kr.str("type"),
		Expires:    kr.str("expires"),
		Characters: map[string]KeyCharacter{},
	}
	for id, n := range key.Map("rowset")["characters"].Map("row") {
		r := row{ctx: ctx, n: n}
		out.Characters[id] = KeyCharacter{
			Name:            r.str("characterName"),
			CorporationID:   r.str("corporationID"),
			CorporationName: r.str("corporationName"),
		}
	}
	return out, nil
}

// AccountStatus is the account-level usage feed.
type AccountStatus struct {
	Meta         Meta   `json:"meta"`
	PaidUntil    string `json:"paid_until"`
	CreateDate   string `json:"create_date"`
	LogonCount   int64  `json:"logon_count"`
	LogonMinutes int64  `json:"logon_minutes"`
}

// AccountStatus reports subscription and login statistics for the
// key's account.
func (c *Client) AccountStatus(ctx context.Context) (*AccountStatus, error) {
	ctx, span := tracer.Start(ctx, "eveapi:AccountStatus")
	defer span.End()

	env, err := c.fetch(ctx, epAccountStatus, nil)
	if err != nil {
		return nil, fail(span, err)
	}

	r := row{ctx: ctx, n: env.result}
	return &AccountStatus{
		Meta:         env.meta(),
		PaidUntil:    r.text("paidUntil"),
		CreateDate:   r.text("createDate"),
		LogonCount:   r.textInt64("logonCount"),
		LogonMinutes: r.textInt64("logonMinutes"),
	}, nil
}
