package api

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rejzi-dich/RytonStore/internal/auth"
	"github.com/Rejzi-dich/RytonStore/internal/catalog"
	apperrors "github.com/Rejzi-dich/RytonStore/internal/errors"
	"github.com/Rejzi-dich/RytonStore/internal/gh"
)

const stateCookie = "oauth_state"

// Handler handles API requests
type Handler struct {
	catalog  *catalog.Service
	github   gh.Client
	oauth    *auth.OAuthFlow
	sessions *auth.SessionCodec
}

// NewHandler creates a new API handler
func NewHandler(svc *catalog.Service, github gh.Client, oauth *auth.OAuthFlow, sessions *auth.SessionCodec) *Handler {
	return &Handler{
		catalog:  svc,
		github:   github,
		oauth:    oauth,
		sessions: sessions,
	}
}

// ListPackages returns the catalog, optionally filtered by a search query
// GET /api/v1/packages?q=
func (h *Handler) ListPackages(c *gin.Context) {
	packages, err := h.catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": packages,
	})
}

// AddPackage submits a new repository to the catalog
// POST /api/v1/packages
func (h *Handler) AddPackage(c *gin.Context) {
	var req struct {
		GitHubURL string `json:"github_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("github_url is required"))
		return
	}

	pkg, err := h.catalog.Add(c.Request.Context(), identityFrom(c), req.GitHubURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": pkg,
	})
}

// GetPackage returns one package after a blocking metadata refresh,
// together with its review issues
// GET /api/v1/packages/:id
func (h *Handler) GetPackage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("package id must be an integer"))
		return
	}

	pkg, reviews, err := h.catalog.GetFresh(c.Request.Context(), index)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"package": pkg,
			"reviews": reviews,
		},
	})
}

// RefreshPackage re-fetches one package on behalf of the caller
// POST /api/v1/packages/:id/refresh
func (h *Handler) RefreshPackage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("package id must be an integer"))
		return
	}

	pkg, err := h.catalog.Refresh(c.Request.Context(), index, identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": pkg,
	})
}

// RefreshAllPackages refreshes every catalog entry and reports how many changed
// POST /api/v1/admin/packages/refresh
func (h *Handler) RefreshAllPackages(c *gin.Context) {
	updated, err := h.catalog.RefreshAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"updated": updated,
		},
	})
}

// GetCategories returns tag usage counts across the catalog
// GET /api/v1/categories
func (h *Handler) GetCategories(c *gin.Context) {
	tags, err := h.catalog.TagCounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": tags,
	})
}

// MyPackages returns the caller's packages with their catalog indexes
// GET /api/v1/my/packages
func (h *Handler) MyPackages(c *gin.Context) {
	packages, err := h.catalog.BySubmitter(c.Request.Context(), identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": packages,
	})
}

// UserRepos returns the repositories the caller can submit
// GET /api/v1/user/repos
func (h *Handler) UserRepos(c *gin.Context) {
	identity := identityFrom(c)
	repos, err := h.github.ListAccessibleRepos(c.Request.Context(), identity.AccessToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": repos,
	})
}

// Login redirects the browser to the GitHub authorize endpoint
// GET /auth/github/login
func (h *Handler) Login(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		respondError(c, apperrors.NewInternalError("failed to generate state", err))
		return
	}

	c.SetCookie(stateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state))
}

// Callback completes the OAuth flow and issues the session cookie
// GET /auth/github/callback
func (h *Handler) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		respondError(c, apperrors.NewUnauthorizedError("invalid OAuth state"))
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	identity, err := h.oauth.CompleteLogin(c.Request.Context(), c.Query("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.sessions.Encode(*identity)
	if err != nil {
		respondError(c, apperrors.NewInternalError("failed to issue session", err))
		return
	}

	c.SetCookie(auth.CookieName, token, int(auth.SessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session cookie
// GET /auth/logout
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// HealthCheck returns the health status of the API
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// respondError sends an error response
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		status := http.StatusInternalServerError
		switch appErr.Code {
		case apperrors.ErrCodeNotFound:
			status = http.StatusNotFound
		case apperrors.ErrCodeUnauthorized:
			status = http.StatusUnauthorized
		case apperrors.ErrCodeForbidden:
			status = http.StatusForbidden
		case apperrors.ErrCodeBadRequest, apperrors.ErrCodeCannotResolve:
			status = http.StatusBadRequest
		case apperrors.ErrCodeUnavailable:
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": err.Error(),
		},
	})
}
