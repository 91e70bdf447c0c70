package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/movemint/launchpad-sync/internal/actions"
	"github.com/movemint/launchpad-sync/internal/domain"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListCollections retrieves collections currently open for minting
	// GET /api/v1/collections
	ListCollections(c *gin.Context)

	// GetCollection retrieves one collection with its mint stages
	// GET /api/v1/collections/:id
	GetCollection(c *gin.Context)

	// UploadRevealData stores pre-reveal metadata items for a collection
	// and enables minting when the pool exactly matches the max supply
	// POST /api/v1/collections/:id/reveal-data
	UploadRevealData(c *gin.Context)

	// AfterMint reconciles supply and reveals freshly minted tokens
	// POST /api/v1/collections/:id/after-mint
	AfterMint(c *gin.Context)

	// AfterRefund records post-refund supply and refund counters
	// POST /api/v1/collections/:id/after-refund
	AfterRefund(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	actions *actions.Actions
}

// NewHandler creates a new REST API handler
func NewHandler(acts *actions.Actions) Handler {
	return &handler{actions: acts}
}

// ListCollections retrieves collections currently open for minting
func (h *handler) ListCollections(c *gin.Context) {
	collections, err := h.actions.ListMintingCollections(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to list collections")
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

// GetCollection retrieves one collection with its mint stages
func (h *handler) GetCollection(c *gin.Context) {
	collectionID := c.Param("id")
	if collectionID == "" {
		respondBadRequest(c, "Collection ID is required")
		return
	}

	collection, err := h.actions.GetCollection(c.Request.Context(), collectionID)
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			respondNotFound(c, "Collection not found")
			return
		}
		respondInternalError(c, err, "Failed to get collection",
			zap.String("collection_id", collectionID))
		return
	}
	c.JSON(http.StatusOK, collection)
}

// uploadRevealDataRequest is the UploadRevealData request body
type uploadRevealDataRequest struct {
	Items []actions.RevealItemInput `json:"items" binding:"required,min=1,dive"`
}

// UploadRevealData stores pre-reveal metadata items for a collection
func (h *handler) UploadRevealData(c *gin.Context) {
	collectionID := c.Param("id")
	if collectionID == "" {
		respondBadRequest(c, "Collection ID is required")
		return
	}

	var req uploadRevealDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result := h.actions.UploadRevealData(c.Request.Context(), collectionID, req.Items)
	c.JSON(http.StatusOK, result)
}

// afterMintRequest is the AfterMint request body
type afterMintRequest struct {
	NFTTokenIDs []string `json:"nft_token_ids" binding:"required,min=1"`
}

// AfterMint reconciles supply and reveals freshly minted tokens
func (h *handler) AfterMint(c *gin.Context) {
	collectionID := c.Param("id")
	if collectionID == "" {
		respondBadRequest(c, "Collection ID is required")
		return
	}

	var req afterMintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result := h.actions.AfterMint(c.Request.Context(), collectionID, req.NFTTokenIDs)
	c.JSON(http.StatusOK, result)
}

// AfterRefund records post-refund supply and refund counters
func (h *handler) AfterRefund(c *gin.Context) {
	collectionID := c.Param("id")
	if collectionID == "" {
		respondBadRequest(c, "Collection ID is required")
		return
	}

	result := h.actions.AfterRefund(c.Request.Context(), collectionID)
	c.JSON(http.StatusOK, result)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
