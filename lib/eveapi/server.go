package eveapi

import "context"

// ServerStatus is the Tranquility cluster status feed.
type ServerStatus struct {
	Meta          Meta  `json:"meta"`
	Open          bool  `json:"open"`
	OnlinePlayers int64 `json:"online_players"`
}

// ServerStatus reports whether the cluster accepts logins and how many
// pilots are online.
func (c *Client) ServerStatus(ctx context.Context) (*ServerStatus, error) {
	ctx, span := tracer.Start(ctx, "eveapi:ServerStatus")
	defer span.End()

	env, err := c.fetch(ctx, epServerStatus, nil)
	if err != nil {
		return nil, fail(span, err)
	}

	r := row{ctx: ctx, n: env.result}
	return &ServerStatus{
		Meta:          env.meta(),
		Open:          r.textBool("serverOpen"),
		OnlinePlayers: r.textInt64("onlinePlayers"),
	}, nil
}
