package peerswap

import "encoding/json"

// The types below describe what the plugin returns. They document the API
// and are never used to re-encode a node response.

// SwapRecord is a swap as reported by peerswap-getswap and the swap lists.
type SwapRecord struct {
	ID              string `json:"id"`
	Asset           string `json:"asset"`
	CreatedAt       string `json:"created_at"`
	Type            string `json:"type"`
	Role            string `json:"role"`
	State           string `json:"state"`
	Previous        string `json:"previous,omitempty"`
	InitiatorNodeID string `json:"initiator_node_id"`
	PeerNodeID      string `json:"peer_node_id"`
	Amount          uint64 `json:"amount"`
	ChannelID       string `json:"channel_id,omitempty"`
	ShortChannelID  string `json:"short_channel_id,omitempty"`
	OpeningTxID     string `json:"opening_tx_id,omitempty"`
	ClaimTxID       string `json:"claim_tx_id,omitempty"`
	CancelMessage   string `json:"cancel_message,omitempty"`
	LndChanID       uint64 `json:"lnd_chan_id,omitempty"`
}

// PolicyRecord is the node's peerswap policy.
type PolicyRecord struct {
	ReserveOnchainMsat uint64   `json:"reserve_onchain_msat"`
	PeerAllowlist      []string `json:"peer_allowlist"`
	AcceptAllPeers     bool     `json:"accept_all_peers"`
}

// SwapStats aggregates swap counts and amounts in one direction.
type SwapStats struct {
	SwapsOut uint64 `json:"swaps_out"`
	SwapsIn  uint64 `json:"swaps_in"`
	SatsOut  uint64 `json:"sats_swapped_out"`
	SatsIn   uint64 `json:"sats_swapped_in"`
}

// PeerChannel is a channel shared with a peerswap-enabled peer.
type PeerChannel struct {
	ShortChannelID string `json:"short_channel_id"`
	ChannelBalance uint64 `json:"channel_balance,omitempty"`
	LocalBalance   uint64 `json:"local_balance"`
	RemoteBalance  uint64 `json:"remote_balance"`
	State          string `json:"state,omitempty"`
}

// PeerSummary is an entry of peerswap-listpeers.
type PeerSummary struct {
	NodeID          string        `json:"nodeid"`
	SwapsAllowed    bool          `json:"swaps_allowed"`
	SupportedAssets []string      `json:"supported_assets"`
	Channels        []PeerChannel `json:"channels"`
	Sent            SwapStats     `json:"sent"`
	Received        SwapStats     `json:"received"`
	TotalFeePaid    uint64        `json:"total_fee_paid"`
}

// RequestedSwap is a swap a peer asked for and the node did not handle.
type RequestedSwap struct {
	Asset           string `json:"asset"`
	AmountSat       uint64 `json:"amount_sat"`
	Type            string `json:"swap_type"`
	RejectionReason string `json:"rejection_reason"`
}

// SwapRequestGroup lists the unhandled requests of one peer.
type SwapRequestGroup struct {
	NodeID   string          `json:"node_id"`
	Requests json.RawMessage `json:"requests"`
}
