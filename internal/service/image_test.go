package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/recipex/internal/domain"
	storagememory "github.com/utafrali/recipex/internal/storage/memory"
	apperrors "github.com/utafrali/recipex/pkg/errors"
)

func newImageService(repo *mockRecipeRepository) *ImageService {
	presigner := storagememory.New("https://bucket.test")
	return NewImageService(repo, presigner, "images/", 30*time.Minute, newTestLogger())
}

func TestIssueUploadURL_PersistsOntoRecipe(t *testing.T) {
	repo := new(mockRecipeRepository)
	svc := newImageService(repo)

	recipe := &domain.Recipe{ID: "RECIPE-1", OwnerID: "OWNER-1"}
	repo.On("FindByID", mock.Anything, "RECIPE-1").Return(recipe, nil)

	var saved *domain.Recipe
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Recipe")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Recipe)
	}).Return(nil)

	url, err := svc.IssueUploadURL(context.Background(), "recipe-1")

	require.NoError(t, err)
	assert.Contains(t, url, "images/RECIPE-1")
	assert.Contains(t, url, "method=PUT")
	require.NotNil(t, saved)
	assert.Equal(t, url, saved.ImageUploadURL)
}

func TestIssueDownloadURL_PersistsOntoRecipe(t *testing.T) {
	repo := new(mockRecipeRepository)
	svc := newImageService(repo)

	recipe := &domain.Recipe{ID: "RECIPE-1"}
	repo.On("FindByID", mock.Anything, "RECIPE-1").Return(recipe, nil)

	var saved *domain.Recipe
	repo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Recipe)
	}).Return(nil)

	url, err := svc.IssueDownloadURL(context.Background(), "RECIPE-1")

	require.NoError(t, err)
	assert.Contains(t, url, "images/RECIPE-1")
	assert.Contains(t, url, "method=GET")
	require.NotNil(t, saved)
	assert.Equal(t, url, saved.ImageURL)
}

func TestIssueUploadURL_AbsentRecipe_ReturnsURLWithoutPersisting(t *testing.T) {
	repo := new(mockRecipeRepository)
	svc := newImageService(repo)

	repo.On("FindByID", mock.Anything, "GHOST-1").Return(nil, nil)

	url, err := svc.IssueUploadURL(context.Background(), "ghost-1")

	require.NoError(t, err)
	assert.Contains(t, url, "images/GHOST-1")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestIssueDownloadURL_AbsentRecipe_ReturnsURLWithoutPersisting(t *testing.T) {
	repo := new(mockRecipeRepository)
	svc := newImageService(repo)

	repo.On("FindByID", mock.Anything, "GHOST-1").Return(nil, nil)

	url, err := svc.IssueDownloadURL(context.Background(), "GHOST-1")

	require.NoError(t, err)
	assert.NotEmpty(t, url)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestIssueUploadURL_StoreFailurePropagates(t *testing.T) {
	repo := new(mockRecipeRepository)
	svc := newImageService(repo)

	repo.On("FindByID", mock.Anything, "RECIPE-1").Return(nil, errors.New("timeout"))

	url, err := svc.IssueUploadURL(context.Background(), "RECIPE-1")

	assert.Empty(t, url)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrStoreUnavail))
}

type failingPresigner struct{}

func (failingPresigner) PresignUpload(context.Context, string, string, time.Duration) (string, error) {
	return "", errors.New("signer unreachable")
}

func (failingPresigner) PresignDownload(context.Context, string, time.Duration) (string, error) {
	return "", errors.New("signer unreachable")
}

func TestIssueUploadURL_SignerFailurePropagates(t *testing.T) {
	repo := new(mockRecipeRepository)
	svc := NewImageService(repo, failingPresigner{}, "images/", time.Minute, newTestLogger())

	url, err := svc.IssueUploadURL(context.Background(), "RECIPE-1")

	assert.Empty(t, url)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrStoreUnavail))
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
