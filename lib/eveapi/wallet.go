package eveapi

import "context"

// WalletOptions narrows a wallet feed. CharacterID falls back to the
// configured default; the remaining fields are passed through only
// when set, matching the API's walk-backwards pagination (fromID plus
// rowCount pages into history).
type WalletOptions struct {
	CharacterID string
	AccountKey  string
	FromID      string
	RowCount    string
}

func (o WalletOptions) params(characterID string) map[string]string {
	return map[string]string{
		"characterID": characterID,
		"accountKey":  o.AccountKey,
		"fromID":      o.FromID,
		"rowCount":    o.RowCount,
	}
}

// JournalEntry is one wallet journal row.
type JournalEntry struct {
	Date          string  `json:"date"`
	RefTypeID     string  `json:"ref_type_id"`
	OwnerName1    string  `json:"owner_name_1"`
	OwnerID1      string  `json:"owner_id_1"`
	OwnerName2    string  `json:"owner_name_2"`
	OwnerID2      string  `json:"owner_id_2"`
	ArgName1      string  `json:"arg_name_1"`
	ArgID1        string  `json:"arg_id_1"`
	Amount        float64 `json:"amount"`
	Balance       float64 `json:"balance"`
	Reason        string  `json:"reason"`
	TaxReceiverID string  `json:"tax_receiver_id"`
	TaxAmount     float64 `json:"tax_amount"`
}

// WalletJournal fetches journal entries keyed by reference id.
func (c *Client) WalletJournal(ctx context.Context, opts WalletOptions) (Result[JournalEntry], error) {
	ctx, span := tracer.Start(ctx, "eveapi:WalletJournal")
	defer span.End()

	id, err := c.characterID(opts.CharacterID)
	if err != nil {
		return Result[JournalEntry]{}, fail(span, err)
	}

	env, err := c.fetch(ctx, epWalletJournal, opts.params(id))
	if err != nil {
		return Result[JournalEntry]{}, fail(span, err)
	}

	rows := env.rowset("transactions").Map("row")
	out := collect[JournalEntry](env.meta(), len(rows))
	for refID, n := range rows {
		r := row{ctx: ctx, n: n}
		out.Items[refID] = JournalEntry{
			Date:          r.str("date"),
			RefTypeID:     r.str("refTypeID"),
			OwnerName1:    r.str("ownerName1"),
			OwnerID1:      r.str("ownerID1"),
			OwnerName2:    r.str("ownerName2"),
			OwnerID2:      r.str("ownerID2"),
			ArgName1:      r.str("argName1"),
			ArgID1:        r.str("argID1"),
			Amount:        r.float64("amount"),
			Balance:       r.float64("balance"),
			Reason:        r.str("reason"),
			TaxReceiverID: r.str("taxReceiverID"),
			TaxAmount:     r.float64("taxAmount"),
		}
	}
	return out, nil
}

// WalletTransaction is one market transaction row.
type WalletTransaction struct {
	DateTime             string  `json:"date_time"`
	Quantity             int64   `json:"quantity"`
	TypeName             string  `json:"type_name"`
	TypeID               string  `json:"type_id"`
	Price                float64 `json:"price"`
	ClientID             string  `json:"client_id"`
	ClientName           string  `json:"client_name"`
	StationID            string  `json:"station_id"`
	StationName          string  `json:"station_name"`
	TransactionType      string  `json:"transaction_type"`
	TransactionFor       string  `json:"transaction_for"`
	JournalTransactionID string  `json:"journal_transaction_id"`
}

// WalletTransactions fetches market transactions keyed by transaction
// id.
func (c *Client) WalletTransactions(ctx context.Context, opts WalletOptions) (Result[WalletTransaction], error) {
	ctx, span := tracer.Start(ctx, "eveapi:WalletTransactions")
	defer span.End()

	id, err := c.characterID(opts.CharacterID)
	if err != nil {
		return Result[WalletTransaction]{}, fail(span, err)
	}

	env, err := c.fetch(ctx, epWalletTransactions, opts.params(id))
	if err != nil {
		return Result[WalletTransaction]{}, fail(span, err)
	}

	rows := env.rowset("transactions").Map("row")
	out := collect[WalletTransaction](env.meta(), len(rows))
	for txID, n := range rows {
		r := row{ctx: ctx, n: n}
		out.Items[txID] = WalletTransaction{
			DateTime:             r.str("transactionDateTime"),
			Quantity:             r.int64("quantity"),
			TypeName:             r.str("typeName"),
			TypeID:               r.str("typeID"),
			Price:                r.float64("price"),
			ClientID:             r.str("clientID"),
			ClientName:           r.str("clientName"),
			StationID:            r.str("stationID"),
			StationName:          r.str("stationName"),
			TransactionType:      r.str("transactionType"),
			TransactionFor:       r.str("transactionFor"),
			JournalTransactionID: r.str("journalTransactionID"),
		}
	}
	return out, nil
}
