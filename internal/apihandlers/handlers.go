package apihandlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"personatag/internal/app"
	"personatag/pkg/classifier"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// ClassifyRequest is the JSON body for the classification endpoint.
type ClassifyRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ClassifyResponse pairs the validated tags with the provider's token
// usage, passed through unmodified.
type ClassifyResponse struct {
	Tags  classifier.Result `json:"tags"`
	Usage classifier.Usage  `json:"usage"`
}

func (h *APIHandler) ClassifyHandler(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, usage, err := h.App.ClassificationService.Classify(c.Request.Context(), req.Question, req.Answer)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ClassifyResponse{Tags: result, Usage: usage})
}

// SyncProfileRequest is the JSON body for the profile sync endpoint. The
// metafields object is kept raw so entry order survives into the payload
// builder.
type SyncProfileRequest struct {
	CustomerID string          `json:"customerId"`
	Metafields json.RawMessage `json:"metafields"`
}

func (h *APIHandler) SyncProfileHandler(c *gin.Context) {
	var req SyncProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.App.ProfileSyncService.Sync(c.Request.Context(), req.CustomerID, req.Metafields)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}
