package eveapi

import "context"

// Contact is one standing entry in a contact list.
type Contact struct {
	Name        string  `json:"name"`
	TypeID      string  `json:"type_id"`
	Standing    float64 `json:"standing"`
	InWatchlist bool    `json:"in_watchlist"`
}

// ContactList groups the character's contacts by scope: personal,
// corporate, alliance. Each category maps contact id to the entry.
type ContactList struct {
	Meta       Meta                          `json:"meta"`
	Categories map[string]map[string]Contact `json:"categories"`
}

// contactCategories maps the feed's rowset container names to output
// category keys. The set is closed: a container name outside it means
// the schema moved under us and the document cannot be trusted.
var contactCategories = map[string]string{
	"contactList":          "contact_list",
	"corporateContactList": "corporate_contact_list",
	"allianceContactList":  "alliance_contact_list",
}

// ContactList fetches every contact scope the key can see.
func (c *Client) ContactList(ctx context.Context, characterID string) (*ContactList, error) {
	ctx, span := tracer.Start(ctx, "eveapi:ContactList")
	defer span.End()

	id, err := c.characterID(characterID)
	if err != nil {
		return nil, fail(span, err)
	}

	env, err := c.fetch(ctx, epContactList, map[string]string{"characterID": id})
	if err != nil {
		return nil, fail(span, err)
	}

	out := &ContactList{
		Meta:       env.meta(),
		Categories: map[string]map[string]Contact{},
	}
	for name, rowset := range env.result.Map("rowset") {
		category, ok := contactCategories[name]
		if !ok {
			return nil, fail(span, &SchemaError{
				Reason: "unknown contact list category " + name,
			})
		}
		contacts := map[string]Contact{}
		for contactID, n := range rowset.Map("row") {
			r := row{ctx: ctx, n: n}
			contacts[contactID] = Contact{
				Name:        r.str("contactName"),
				TypeID:      r.str("contactTypeID"),
				Standing:    r.float64("standing"),
				InWatchlist: r.bool("inWatchlist"),
			}
		}
		out.Categories[category] = contacts
	}
	return out, nil
}
