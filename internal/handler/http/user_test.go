package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/recipex/internal/domain"
)

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	recipeRepo := new(mockRecipeRepo)
	router := testRouter(userRepo, recipeRepo)

	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	rec := postJSON(t, router, "/api/v1/register", RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "Sup3r$ecret",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Nil(t, resp.Error)

	data := resp.Data.(map[string]any)
	assert.NotEmpty(t, data["id"])
	username := data["username"].(map[string]any)
	assert.Equal(t, "alice", username["name"])
	// The password hash must never be serialized.
	assert.NotContains(t, username, "password")
}

func TestRegister_DuplicateEmail_Returns409(t *testing.T) {
	userRepo := new(mockUserRepo)
	recipeRepo := new(mockRecipeRepo)
	router := testRouter(userRepo, recipeRepo)

	existing := &domain.User{ID: testUserID, Username: domain.Username{Email: "taken@example.com"}}
	userRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

	rec := postJSON(t, router, "/api/v1/register", RegisterRequest{
		Name:     "bob",
		Email:    "taken@example.com",
		Password: "Sup3r$ecret",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "taken@example.com")
}

func TestRegister_WeakPassword_Returns400(t *testing.T) {
	userRepo := new(mockUserRepo)
	recipeRepo := new(mockRecipeRepo)
	router := testRouter(userRepo, recipeRepo)

	rec := postJSON(t, router, "/api/v1/register", RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "alllowercase",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegister_ShortName_Returns400(t *testing.T) {
	userRepo := new(mockUserRepo)
	recipeRepo := new(mockRecipeRepo)
	router := testRouter(userRepo, recipeRepo)

	rec := postJSON(t, router, "/api/v1/register", RegisterRequest{
		Name:     "al",
		Email:    "alice@example.com",
		Password: "Sup3r$ecret",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_MalformedBody_Returns400(t *testing.T) {
	userRepo := new(mockUserRepo)
	recipeRepo := new(mockRecipeRepo)
	router := testRouter(userRepo, recipeRepo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUser_Success_IncludesDerivedRecipes(t *testing.T) {
	userRepo := new(mockUserRepo)
	recipeRepo := new(mockRecipeRepo)
	router := testRouter(userRepo, recipeRepo)

	user := &domain.User{ID: testUserID, Username: domain.Username{Name: "alice"}}
	userRepo.On("FindByID", mock.Anything, testUserID).Return(user, nil)
	recipeRepo.On("FindByOwner", mock.Anything, testUserID).Return([]domain.Recipe{*sampleRecipe()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/"+testUserID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]any)
	recipes := data["recipes"].([]any)
	assert.Len(t, recipes, 1)
}

func TestGetUser_LowercaseIDIsCanonicalized(t *testing.T) {
	userRepo := new(mockUserRepo)
	recipeRepo := new(mockRecipeRepo)
	router := testRouter(userRepo, recipeRepo)

	user := &domain.User{ID: testUserID}
	userRepo.On("FindByID", mock.Anything, testUserID).Return(user, nil)
	recipeRepo.On("FindByOwner", mock.Anything, testUserID).Return([]domain.Recipe{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/550e8400-e29b-41d4-a716-446655440001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	userRepo.AssertCalled(t, "FindByID", mock.Anything, testUserID)
}

func TestGetUser_Absent_Returns404(t *testing.T) {
	userRepo := new(mockUserRepo)
	recipeRepo := new(mockRecipeRepo)
	router := testRouter(userRepo, recipeRepo)

	userRepo.On("FindByID", mock.Anything, testUserID).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/"+testUserID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestGetUser_InvalidID_Returns400(t *testing.T) {
	userRepo := new(mockUserRepo)
	recipeRepo := new(mockRecipeRepo)
	router := testRouter(userRepo, recipeRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestDeleteUser_Returns204AndCascades(t *testing.T) {
	userRepo := new(mockUserRepo)
	recipeRepo := new(mockRecipeRepo)
	router := testRouter(userRepo, recipeRepo)

	userRepo.On("DeleteByID", mock.Anything, testUserID).Return(nil)
	recipeRepo.On("FindByOwner", mock.Anything, testUserID).Return([]domain.Recipe{*sampleRecipe()}, nil)
	recipeRepo.On("DeleteByID", mock.Anything, testRecipeID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/user/"+testUserID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	recipeRepo.AssertCalled(t, "DeleteByID", mock.Anything, testRecipeID)
}
