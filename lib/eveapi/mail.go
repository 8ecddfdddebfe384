package eveapi

import (
	"context"
	"strings"
)

// MailMessage is one mail header row. Exactly one of the recipient
// fields is populated depending on whether the mail went to
// characters, a corporation/alliance, or a mailing list.
type MailMessage struct {
	SenderID           string   `json:"sender_id"`
	SenderName         string   `json:"sender_name"`
	SentDate           string   `json:"sent_date"`
	Title              string   `json:"title"`
	ToCharacterIDs     []string `json:"to_character_ids,omitempty"`
	ToCorpOrAllianceID string   `json:"to_corp_or_alliance_id,omitempty"`
	ToListID           string   `json:"to_list_id,omitempty"`
}

// MailMessages fetches mail headers keyed by message id. Bodies are a
// separate feed, see MailBodies.
func (c *Client) MailMessages(ctx context.Context, characterID string) (Result[MailMessage], error) {
	ctx, span := tracer.Start(ctx, "eveapi:MailMessages")
	defer span.End()

	id, err := c.characterID(characterID)
	if err != nil {
		return Result[MailMessage]{}, fail(span, err)
	}

	env, err := c.fetch(ctx, epMailMessages, map[string]string{"characterID": id})
	if err != nil {
		return Result[MailMessage]{}, fail(span, err)
	}

	rows := env.rowset("messages").Map("row")
	out := collect[MailMessage](env.meta(), len(rows))
	for messageID, n := range rows {
		r := row{ctx: ctx, n: n}
		out.Items[messageID] = MailMessage{
			SenderID:           r.str("senderID"),
			SenderName:         r.str("senderName"),
			SentDate:           r.str("sentDate"),
			Title:              r.str("title"),
			ToCharacterIDs:     splitIDList(r.str("toCharacterIDs")),
			ToCorpOrAllianceID: r.str("toCorpOrAllianceID"),
			ToListID:           r.str("toListID"),
		}
	}
	return out, nil
}

// MailBodies holds fetched message bodies plus the ids the API refused
// to return (expired or not addressed to the character).
type MailBodies struct {
	Meta              Meta              `json:"meta"`
	Items             map[string]string `json:"items"`
	MissingMessageIDs []string          `json:"missing_message_ids,omitempty"`
}

// MailBodies fetches the bodies for the given message ids, keyed by
// message id. Body text arrives as CDATA and is passed through
// verbatim.
func (c *Client) MailBodies(ctx context.Context, characterID string, ids []string) (*MailBodies, error) {
	ctx, span := tracer.Start(ctx, "eveapi:MailBodies")
	defer span.End()

	id, err := c.characterID(characterID)
	if err != nil {
		return nil, fail(span, err)
	}
	if len(ids) == 0 {
		return nil, fail(span, &MissingIdentifierError{Param: "ids"})
	}

	env, err := c.fetch(ctx, epMailBodies, map[string]string{
		"characterID": id,
		"ids":         strings.Join(ids, ","),
	})
	if err != nil {
		return nil, fail(span, err)
	}

	out := &MailBodies{
		Meta:              env.meta(),
		Items:             map[string]string{},
		MissingMessageIDs: splitIDList(env.result.ChildText("missingMessageIDs")),
	}
	for messageID, n := range env.rowset("messages").Map("row") {
		out.Items[messageID] = n.Text
	}
	return out, nil
}

// MailingLists fetches the character's mailing list subscriptions as a
// map from list id to display name.
func (c *Client) MailingLists(ctx context.Context, characterID string) (Result[string], error) {
	ctx, span := tracer.Start(ctx, "eveapi:MailingLists")
	defer span.End()

	id, err := c.characterID(characterID)
	if err != nil {
		return Result[string]{}, fail(span, err)
	}

	env, err := c.fetch(ctx, epMailingLists, map[string]string{"characterID": id})
	if err != nil {
		return Result[string]{}, fail(span, err)
	}

	rows := env.rowset("mailingLists").Map("row")
	out := collect[string](env.meta(), len(rows))
	for listID, n := range rows {
		out.Items[listID] = n.Attr("displayName")
	}
	return out, nil
}
