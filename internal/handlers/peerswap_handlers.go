package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"peerswap-api/internal/helpers"
	"peerswap-api/internal/peerswap"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PeerswapHandler exposes the node's peerswap plugin over HTTP. Every route
// forwards its arguments unchanged to one plugin method.
type PeerswapHandler struct {
	client peerswap.Client
	log    *zap.Logger
}

// NewPeerswapHandler creates a handler calling client and logging to log.
func NewPeerswapHandler(client peerswap.Client, log *zap.Logger) *PeerswapHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PeerswapHandler{
		client: client,
		log:    log,
	}
}

// SwapRequest is the body of swap in and swap out requests. AmountSats is
// passed to the node as sent; the plugin validates it.
type SwapRequest struct {
	AmountSats     json.RawMessage `json:"amountSats" swaggertype:"integer" example:"50000"`
	ShortChannelID string          `json:"shortChannelId" example:"123x1x0"`
	Asset          string          `json:"asset" example:"btc"`
}

// RegisterRoutes mounts the peerswap routes on rg.
func (h *PeerswapHandler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/reloadPolicy", h.ReloadPolicy)
	rg.GET("/swap", h.GetSwap)
	rg.GET("/swap/:swapId", h.GetSwap)
	rg.GET("/listSwaps", h.ListSwaps)
	rg.GET("/listActiveSwaps", h.ListActiveSwaps)
	rg.GET("/listSwapRequests", h.ListSwapRequests)
	rg.GET("/listPeers", h.ListPeers)
	rg.GET("/allowSwapRequests", h.AllowSwapRequests)
	rg.GET("/allowSwapRequests/:isAllowed", h.AllowSwapRequests)
	rg.GET("/addPeer", h.AddPeer)
	rg.GET("/addPeer/:pubkey", h.AddPeer)
	rg.GET("/removePeer", h.RemovePeer)
	rg.GET("/removePeer/:pubkey", h.RemovePeer)
	rg.GET("/resendMessage", h.ResendMessage)
	rg.GET("/resendMessage/:swapId", h.ResendMessage)
	rg.POST("/swapIn", h.SwapIn)
	rg.POST("/swapOut", h.SwapOut)
}

// param reads name from the route, falling back to the query string.
func param(c *gin.Context, name string) string {
	return helpers.FirstNonEmpty(c.Param(name), c.Query(name))
}

// ReloadPolicy godoc
// @Summary      Reload peerswap policy
// @Description  Reloads the policy file of the peerswap plugin and returns the active policy
// @Tags         peerswap
// @Produce      json
// @Success      200  {object}  peerswap.PolicyRecord
// @Failure      500  {object}  ErrorResponse
// @Security     MacaroonAuth
// @Router       /peerswap/reloadPolicy [get]
func (h *PeerswapHandler) ReloadPolicy(c *gin.Context) {
	forward(c, h.log, "reloadPolicy", h.client.ReloadPolicy)
}

// GetSwap godoc
// @Summary      Get a swap
// @Description  Returns the swap with the given id
// @Tags         peerswap
// @Produce      json
// @Param        swapId  path   string  false  "Swap ID"
// @Param        swapId  query  string  false  "Swap ID, used when the path does not carry one"
// @Success      200  {object}  peerswap.SwapRecord
// @Failure      500  {object}  ErrorResponse
// @Security     MacaroonAuth
// @Router       /peerswap/swap/{swapId} [get]
func (h *PeerswapHandler) GetSwap(c *gin.Context) {
	swapID := param(c, "swapId")
	forward(c, h.log, "getSwap", func(ctx context.Context) (json.RawMessage, error) {
		return h.client.GetSwap(ctx, swapID)
	}, zap.String("swap_id", swapID))
}

// ListSwaps godoc
// @Summary      List swaps
// @Description  Returns every swap known to the node
// @Tags         peerswap
// @Produce      json
// @Success      200  {array}   peerswap.SwapRecord
// @Failure      500  {object}  ErrorResponse
// @Security     MacaroonAuth
// @Router       /peerswap/listSwaps [get]
func (h *PeerswapHandler) ListSwaps(c *gin.Context) {
	forward(c, h.log, "listSwaps", h.client.ListSwaps)
}

// ListActiveSwaps godoc
// @Summary      List active swaps
// @Description  Returns the swaps that have not reached a final state
// @Tags         peerswap
// @Produce      json
// @Success      200  {array}   peerswap.SwapRecord
// @Failure      500  {object}  ErrorResponse
// @Security     MacaroonAuth
// @Router       /peerswap/listActiveSwaps [get]
func (h *PeerswapHandler) ListActiveSwaps(c *gin.Context) {
	forward(c, h.log, "listActiveSwaps", h.client.ListActiveSwaps)
}

// ListSwapRequests godoc
// @Summary      List swap requests
// @Description  Returns swap requests received from peers that were not handled, grouped by peer
// @Tags         peerswap
// @Produce      json
// @Success      200  {array}   peerswap.SwapRequestGroup
// @Failure      500  {object}  ErrorResponse
// @Security     MacaroonAuth
// @Router       /peerswap/listSwapRequests [get]
func (h *PeerswapHandler) ListSwapRequests(c *gin.Context) {
	forward(c, h.log, "listSwapRequests", h.client.ListSwapRequests)
}

// ListPeers godoc
// @Summary      List peerswap peers
// @Description  Returns the connected peers that support peerswap with their channels and swap statistics
// @Tags         peerswap
// @Produce      json
// @Success      200  {array}   peerswap.PeerSummary
// @Failure      500  {object}  ErrorResponse
// @Security     MacaroonAuth
// @Router       /peerswap/listPeers [get]
func (h *PeerswapHandler) ListPeers(c *gin.Context) {
	forward(c, h.log, "listPeers", h.client.ListPeers)
}

// AllowSwapRequests godoc
// @Summary      Allow or deny swap requests
// @Description  Sets whether the node accepts swap requests from peers
// @Tags         peerswap
// @Produce      json
// @Param        isAllowed  path   string  false  "true or false"
// @Param        isAllowed  query  string  false  "true or false, used when the path does not carry one"
// @Success      200  {string}  string
// @Failure      500  {object}  ErrorResponse
// @Security     MacaroonAuth
// @Router       /peerswap/allowSwapRequests/{isAllowed} [get]
func (h *PeerswapHandler) AllowSwapRequests(c *gin.Context) {
	isAllowed := param(c, "isAllowed")
	forward(c, h.log, "allowSwapRequests", func(ctx context.Context) (json.RawMessage, error) {
		return h.client.AllowSwapRequests(ctx, isAllowed)
	}, zap.String("is_allowed", isAllowed))
}

// AddPeer godoc
// @Summary      Add peer to allowlist
// @Description  Adds a peer to the peerswap allowlist and returns the updated policy
// @Tags         peerswap
// @Produce      json
// @Param        pubkey  path   string  false  "Peer node public key"
// @Param        pubkey  query  string  false  "Peer node public key, used when the path does not carry one"
// @Success      200  {object}  peerswap.PolicyRecord
// @Failure      500  {object}  ErrorResponse
// @Security     MacaroonAuth
// @Router       /peerswap/addPeer/{pubkey} [get]
func (h *PeerswapHandler) AddPeer(c *gin.Context) {
	pubkey := param(c, "pubkey")
	forward(c, h.log, "addPeer", func(ctx context.Context) (json.RawMessage, error) {
		return h.client.AddPeer(ctx, pubkey)
	}, zap.String("pubkey", pubkey))
}

// RemovePeer godoc
// @Summary      Remove peer from allowlist
// @Description  Removes a peer from the peerswap allowlist and returns the updated policy
// @Tags         peerswap
// @Produce      json
// @Param        pubkey  path   string  false  "Peer node public key"
// @Param        pubkey  query  string  false  "Peer node public key, used when the path does not carry one"
// @Success      200  {object}  peerswap.PolicyRecord
// @Failure      500  {object}  ErrorResponse
// @Security     MacaroonAuth
// @Router       /peerswap/removePeer/{pubkey} [get]
func (h *PeerswapHandler) RemovePeer(c *gin.Context) {
	pubkey := param(c, "pubkey")
	forward(c, h.log, "removePeer", func(ctx context.Context) (json.RawMessage, error) {
		return h.client.RemovePeer(ctx, pubkey)
	}, zap.String("pubkey", pubkey))
}

// ResendMessage godoc
// @Summary      Resend last swap message
// @Description  Resends the last protocol message of a swap to the peer
// @Tags         peerswap
// @Produce      json
// @Param        swapId  path   string  false  "Swap ID"
// @Param        swapId  query  string  false  "Swap ID, used when the path does not carry one"
// @Success      200  {boolean}  boolean
// @Failure      500  {object}  ErrorResponse
// @Security     MacaroonAuth
// @Router       /peerswap/resendMessage/{swapId} [get]
func (h *PeerswapHandler) ResendMessage(c *gin.Context) {
	swapID := param(c, "swapId")
	forward(c, h.log, "resendMessage", func(ctx context.Context) (json.RawMessage, error) {
		if _, err := h.client.ResendMessage(ctx, swapID); err != nil {
			return nil, err
		}
		return json.RawMessage("true"), nil
	}, zap.String("swap_id", swapID))
}

// SwapIn godoc
// @Summary      Swap in
// @Description  Starts a swap moving on-chain funds into the channel
// @Tags         peerswap
// @Accept       json
// @Produce      json
// @Param        request  body  SwapRequest  true  "Swap parameters"
// @Success      200  {object}  peerswap.SwapRecord
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     MacaroonAuth
// @Router       /peerswap/swapIn [post]
func (h *PeerswapHandler) SwapIn(c *gin.Context) {
	h.swap(c, "swapIn", h.client.SwapIn)
}

// SwapOut godoc
// @Summary      Swap out
// @Description  Starts a swap moving channel funds out to an on-chain address
// @Tags         peerswap
// @Accept       json
// @Produce      json
// @Param        request  body  SwapRequest  true  "Swap parameters"
// @Success      200  {object}  peerswap.SwapRecord
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     MacaroonAuth
// @Router       /peerswap/swapOut [post]
func (h *PeerswapHandler) SwapOut(c *gin.Context) {
	h.swap(c, "swapOut", h.client.SwapOut)
}

type swapFunc func(ctx context.Context, amountSats json.RawMessage, shortChannelID string, asset string) (json.RawMessage, error)

func (h *PeerswapHandler) swap(c *gin.Context, operation string, start swapFunc) {
	var req SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.log, http.StatusBadRequest, operation, err)
		return
	}

	forward(c, h.log, operation, func(ctx context.Context) (json.RawMessage, error) {
		return start(ctx, req.AmountSats, req.ShortChannelID, req.Asset)
	},
		zap.ByteString("amount_sats", req.AmountSats),
		zap.String("short_channel_id", req.ShortChannelID),
		zap.String("asset", req.Asset),
	)
}
