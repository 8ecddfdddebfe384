package eveapi

import "context"

// Contract is one courier/exchange/auction contract row.
type Contract struct {
	IssuerID       string  `json:"issuer_id"`
	IssuerCorpID   string  `json:"issuer_corp_id"`
	AssigneeID     string  `json:"assignee_id"`
	AcceptorID     string  `json:"acceptor_id"`
	StartStationID string  `json:"start_station_id"`
	EndStationID   string  `json:"end_station_id"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	Title          string  `json:"title"`
	ForCorp        bool    `json:"for_corp"`
	Availability   string  `json:"availability"`
	DateIssued     string  `json:"date_issued"`
	DateExpired    string  `json:"date_expired"`
	DateAccepted   string  `json:"date_accepted"`
	DateCompleted  string  `json:"date_completed"`
	NumDays        int64   `json:"num_days"`
	Price          float64 `json:"price"`
	Reward         float64 `json:"reward"`
	Collateral     float64 `json:"collateral"`
	Buyout         float64 `json:"buyout"`
	Volume         float64 `json:"volume"`
}

// Contracts fetches the character's contracts keyed by contract id.
// Passing contractID narrows the result to that single contract.
func (c *Client) Contracts(ctx context.Context, characterID, contractID string) (Result[Contract], error) {
	ctx, span := tracer.Start(ctx, "eveapi:Contracts")
	defer span.End()

	id, err := c.characterID(characterID)
	if err != nil {
		return Result[Contract]{}, fail(span, err)
	}

	env, err := c.fetch(ctx, epContracts, map[string]string{
		"characterID": id,
		"contractID":  contractID,
	})
	if err != nil {
		return Result[Contract]{}, fail(span, err)
	}

	rows := env.rowset("contractList").Map("row")
	out := collect[Contract](env.meta(), len(rows))
	for cid, n := range rows {
		r := row{ctx: ctx, n: n}
		out.Items[cid] = Contract{
			IssuerID:       r.str("issuerID"),
			IssuerCorpID:   r.str("issuerCorpID"),
			AssigneeID:     r.str("assigneeID"),
			AcceptorID:     r.str("acceptorID"),
			StartStationID: r.str("startStationID"),
			EndStationID:   r.str("endStationID"),
			Type:           r.str("type"),
			Status:         r.str("status"),
			Title:          r.str("title"),
			ForCorp:        r.bool("forCorp"),
			Availability:   r.str("availability"),
			DateIssued:     r.str("dateIssued"),
			DateExpired:    r.str("dateExpired"),
			DateAccepted:   r.str("dateAccepted"),
			DateCompleted:  r.str("dateCompleted"),
			NumDays:        r.int64("numDays"),
			Price:          r.float64("price"),
			Reward:         r.float64("reward"),
			Collateral:     r.float64("collateral"),
			Buyout:         r.float64("buyout"),
			Volume:         r.float64("volume"),
		}
	}
	return out, nil
}

// ContractItem is one item inside a contract.
type ContractItem struct {
	TypeID      string `json:"type_id"`
	Quantity    int64  `json:"quantity"`
	RawQuantity int64  `json:"raw_quantity"`
	Singleton   bool   `json:"singleton"`
	Included    bool   `json:"included"`
}

// ContractItems fetches the items of one contract, keyed by the feed's
// record id. The contract id is always required.
func (c *Client) ContractItems(ctx context.Context, characterID, contractID string) (Result[ContractItem], error) {
	ctx, span := tracer.Start(ctx, "eveapi:ContractItems")
	defer span.End()

	id, err := c.characterID(characterID)
	if err != nil {
		return Result[ContractItem]{}, fail(span, err)
	}
	cid, err := required("contractID", contractID)
	if err != nil {
		return Result[ContractItem]{}, fail(span, err)
	}

	env, err := c.fetch(ctx, epContractItems, map[string]string{
		"characterID": id,
		"contractID":  cid,
	})
	if err != nil {
		return Result[ContractItem]{}, fail(span, err)
	}

	rows := env.rowset("itemList").Map("row")
	out := collect[ContractItem](env.meta(), len(rows))
	for recordID, n := range rows {
		r := row{ctx: ctx, n: n}
		out.Items[recordID] = ContractItem{
			TypeID:      r.str("typeID"),
			Quantity:    r.int64("quantity"),
			RawQuantity: r.int64("rawQuantity"),
			Singleton:   r.bool("singleton"),
			Included:    r.bool("included"),
		}
	}
	return out, nil
}
