package eveapi

import (
	"context"

	"evexml/lib/xmltree"
)

// AssetNode is one owned item. Containers carry their contents as a
// nested map of the same shape. LocationID is only set on rows that
// carried the attribute: items inside a container inherit the
// container's location and the feed omits the field, and that absence
// is preserved rather than zero-filled.
type AssetNode struct {
	ItemID      string               `json:"item_id"`
	LocationID  *string              `json:"location_id,omitempty"`
	TypeID      string               `json:"type_id"`
	Quantity    int64                `json:"quantity"`
	RawQuantity int64                `json:"raw_quantity"`
	Flag        int64                `json:"flag"`
	Singleton   bool                 `json:"singleton"`
	Contents    map[string]AssetNode `json:"contents,omitempty"`
}

// AssetList fetches every item the character owns as a tree of
// containers, keyed by item id at every level.
func (c *Client) AssetList(ctx context.Context, characterID string) (Result[AssetNode], error) {
	ctx, span := tracer.Start(ctx, "eveapi:AssetList")
	defer span.End()

	id, err := c.characterID(characterID)
	if err != nil {
		return Result[AssetNode]{}, fail(span, err)
	}

	env, err := c.fetch(ctx, epAssetList, map[string]string{"characterID": id})
	if err != nil {
		return Result[AssetNode]{}, fail(span, err)
	}

	items := flattenAssets(ctx, env.rowset("assets").Map("row"))
	out := Result[AssetNode]{Meta: env.meta(), Items: items}
	if out.Items == nil {
		out.Items = map[string]AssetNode{}
	}
	return out, nil
}

// flattenAssets re-keys one level of asset rows and recurses into each
// row's contents rowset. Recursion depth is bounded by the container
// nesting in the document itself.
func flattenAssets(ctx context.Context, rows map[string]*xmltree.Node) map[string]AssetNode {
	if len(rows) == 0 {
		return nil
	}
	out := make(map[string]AssetNode, len(rows))
	for id, n := range rows {
		r := row{ctx: ctx, n: n}
		node := AssetNode{
			ItemID:      id,
			TypeID:      r.str("typeID"),
			Quantity:    r.int64("quantity"),
			RawQuantity: r.int64("rawQuantity"),
			Flag:        r.int64("flag"),
			Singleton:   r.bool("singleton"),
		}
		if n.HasAttr("locationID") {
			loc := n.Attr("locationID")
			node.LocationID = &loc
		}
		if contents := n.Map("rowset")["contents"]; contents != nil {
			node.Contents = flattenAssets(ctx, contents.Map("row"))
		}
		out[id] = node
	}
	return out
}
