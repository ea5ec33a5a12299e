package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/notecart/backend/internal/middleware"
	"github.com/user/notecart/backend/internal/models"
	"github.com/user/notecart/backend/internal/repository"
	"github.com/user/notecart/backend/internal/service"
	"github.com/user/notecart/backend/pkg/jwt"
)

type apiEnv struct {
	router     *gin.Engine
	jwtManager *jwt.Manager
	owner      models.User
	friend     models.User
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repository.NewFileListStore(t.TempDir())
	require.NoError(t, err)
	users := repository.NewMemoryUserDirectory()

	owner := models.User{ID: uuid.New(), Email: "owner@example.com", DisplayName: "Owner"}
	friend := models.User{ID: uuid.New(), Email: "friend@example.com", DisplayName: "Friend"}
	users.Add(owner)
	users.Add(friend)

	listService := service.NewListService(store, users)
	shareService := service.NewShareService(store, users)
	listHandler := NewListHandler(listService)
	shareHandler := NewShareHandler(shareService)

	jwtManager := jwt.NewManager("test-secret")

	r := gin.New()
	r.GET("/api/lists/:id/public", listHandler.GetPublic)

	lists := r.Group("/api/lists", middleware.AuthMiddleware(jwtManager))
	lists.GET("", listHandler.List)
	lists.POST("", listHandler.Create)
	lists.GET("/shared", listHandler.Shared)
	lists.GET("/:id", listHandler.Get)
	lists.PUT("/:id", listHandler.Update)
	lists.DELETE("/:id", listHandler.Delete)
	lists.POST("/:id/share", shareHandler.Share)
	lists.DELETE("/:id/share", shareHandler.Unshare)
	lists.GET("/:id/share", shareHandler.SharedUsers)
	lists.POST("/:id/items", listHandler.AddItem)
	lists.PUT("/:id/items/:itemId", listHandler.UpdateItem)
	lists.POST("/:id/items/:itemId/quantity", listHandler.AdjustItemQuantity)
	lists.DELETE("/:id/items/:itemId", listHandler.RemoveItem)

	return &apiEnv{
		router:     r,
		jwtManager: jwtManager,
		owner:      owner,
		friend:     friend,
	}
}

func (e *apiEnv) do(t *testing.T, user *models.User, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		pair, err := e.jwtManager.GenerateTokenPair(user.ID, user.Email)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestMissingCredentialRejected(t *testing.T) {
	env := newAPIEnv(t)
	w := env.do(t, nil, http.MethodGet, "/api/lists", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndFetchList(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, &env.owner, http.MethodPost, "/api/lists", gin.H{"name": "Mercado", "type": "grocery"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	listID := created["id"].(string)
	require.NotEmpty(t, listID)

	w = env.do(t, &env.owner, http.MethodGet, "/api/lists/"+listID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)
	assert.Equal(t, "Mercado", got["name"])
	assert.Equal(t, env.owner.ID.String(), got["user_id"])
}

func TestCreateWithoutNameRejected(t *testing.T) {
	env := newAPIEnv(t)
	w := env.do(t, &env.owner, http.MethodPost, "/api/lists", gin.H{"type": "grocery"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicSnapshotHidesIdentity(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, &env.owner, http.MethodPost, "/api/lists", gin.H{"name": "Mercado", "type": "grocery"})
	require.Equal(t, http.StatusCreated, w.Code)
	listID := decodeBody(t, w)["id"].(string)

	w = env.do(t, nil, http.MethodGet, "/api/lists/"+listID+"/public", nil)
	require.Equal(t, http.StatusOK, w.Code)
	public := decodeBody(t, w)
	assert.NotContains(t, public, "user_id")
	assert.NotContains(t, public, "shared_with")
	assert.Equal(t, "Mercado", public["name"])
}

func TestShareErrorCodes(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, &env.owner, http.MethodPost, "/api/lists", gin.H{"name": "Mercado", "type": "grocery"})
	require.Equal(t, http.StatusCreated, w.Code)
	listID := decodeBody(t, w)["id"].(string)

	w = env.do(t, &env.owner, http.MethodPost, "/api/lists/"+listID+"/share", gin.H{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "USER_NOT_FOUND", body["error"].(map[string]any)["code"])

	w = env.do(t, &env.owner, http.MethodPost, "/api/lists/"+listID+"/share", gin.H{"email": "owner@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "CANNOT_SHARE_WITH_SELF", body["error"].(map[string]any)["code"])
}

func TestShareGrantsAndRevokesAccess(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, &env.owner, http.MethodPost, "/api/lists", gin.H{"name": "Mercado", "type": "grocery"})
	require.Equal(t, http.StatusCreated, w.Code)
	listID := decodeBody(t, w)["id"].(string)

	// stranger (friend, pre-share) sees nothing
	w = env.do(t, &env.friend, http.MethodGet, "/api/lists/"+listID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, &env.owner, http.MethodPost, "/api/lists/"+listID+"/share", gin.H{"email": "friend@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, &env.friend, http.MethodGet, "/api/lists/"+listID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, &env.friend, http.MethodGet, "/api/lists/shared", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var shared []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shared))
	require.Len(t, shared, 1)
	assert.Equal(t, "owner@example.com", shared[0]["owner_email"])

	w = env.do(t, &env.owner, http.MethodDelete, "/api/lists/"+listID+"/share", gin.H{"target_user_id": env.friend.ID.String()})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, &env.friend, http.MethodGet, "/api/lists/"+listID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemQuantityEndpointHonorsFloor(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, &env.owner, http.MethodPost, "/api/lists", gin.H{"name": "Mercado", "type": "grocery"})
	require.Equal(t, http.StatusCreated, w.Code)
	listID := decodeBody(t, w)["id"].(string)

	w = env.do(t, &env.owner, http.MethodPost, "/api/lists/"+listID+"/items", gin.H{"name": "Milk"})
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeBody(t, w)["items"].([]any)
	itemID := items[0].(map[string]any)["id"].(string)

	// default floor is 0
	w = env.do(t, &env.owner, http.MethodPost, "/api/lists/"+listID+"/items/"+itemID+"/quantity", gin.H{"delta": -5})
	require.Equal(t, http.StatusOK, w.Code)
	items = decodeBody(t, w)["items"].([]any)
	assert.Equal(t, float64(0), items[0].(map[string]any)["quantity"])

	// a floor of 1 keeps at least one unit
	w = env.do(t, &env.owner, http.MethodPost, "/api/lists/"+listID+"/items/"+itemID+"/quantity", gin.H{"delta": -5, "floor": 1})
	require.Equal(t, http.StatusOK, w.Code)
	items = decodeBody(t, w)["items"].([]any)
	assert.Equal(t, float64(1), items[0].(map[string]any)["quantity"])
}

func TestDeleteReturnsSnapshot(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, &env.owner, http.MethodPost, "/api/lists", gin.H{"name": "Mercado", "type": "grocery"})
	require.Equal(t, http.StatusCreated, w.Code)
	listID := decodeBody(t, w)["id"].(string)

	w = env.do(t, &env.owner, http.MethodDelete, "/api/lists/"+listID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "List deleted successfully", body["message"])
	assert.Equal(t, listID, body["list"].(map[string]any)["id"])

	w = env.do(t, &env.owner, http.MethodGet, "/api/lists/"+listID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
