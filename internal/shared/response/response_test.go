package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListFirstPage(t *testing.T) {
	c, w := testContext(t, "/api/v1/books?search=go")

	List(c, []string{"a", "b"}, 25, 1, 10)

	body := decode(t, w)
	assert.EqualValues(t, 25, body["count"])
	assert.Nil(t, body["previous"])
	require.NotNil(t, body["next"])
	assert.Contains(t, body["next"], "page=2")
	assert.Contains(t, body["next"], "search=go")
}

func TestListMiddlePage(t *testing.T) {
	c, w := testContext(t, "/api/v1/books?page=2")

	List(c, []string{"a"}, 25, 2, 10)

	body := decode(t, w)
	require.NotNil(t, body["next"])
	require.NotNil(t, body["previous"])
	assert.Contains(t, body["next"], "page=3")
	assert.Contains(t, body["previous"], "page=1")
}

func TestListLastPage(t *testing.T) {
	c, w := testContext(t, "/api/v1/books?page=3")

	List(c, []string{"a"}, 25, 3, 10)

	body := decode(t, w)
	assert.Nil(t, body["next"])
	require.NotNil(t, body["previous"])
}

func TestListWithExtra(t *testing.T) {
	c, w := testContext(t, "/api/v1/notifications")

	ListWithExtra(c, []string{}, 0, 1, 10, gin.H{"unread_count": 4})

	body := decode(t, w)
	assert.EqualValues(t, 4, body["unread_count"])
	assert.EqualValues(t, 0, body["count"])
	assert.Nil(t, body["next"])
}

func TestValidationFailedEnvelope(t *testing.T) {
	c, w := testContext(t, "/api/v1/posts")

	errs := validation.Errors{"title": validation.NewError("validation_required", "title is required")}
	ValidationFailed(c, errs)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Validation failed", body["message"])
	fieldErrors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "title is required", fieldErrors["title"])
}

func TestFromValidationError(t *testing.T) {
	c, w := testContext(t, "/api/v1/posts")

	errs := validation.Errors{"content": validation.NewError("validation_required", "content is required")}
	FromValidationError(c, errs)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Validation failed", body["message"])
}

func TestDeleteConfirmationReachesClient(t *testing.T) {
	c, w := testContext(t, "/api/v1/books/1")

	Message(c, http.StatusOK, `Book "Dune" has been deleted successfully`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, `Book "Dune" has been deleted successfully`, body["message"])
}

func TestConflictIsBadRequest(t *testing.T) {
	c, w := testContext(t, "/api/v1/posts/1/like")

	Conflict(c, "You have already liked this post")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "You have already liked this post", body["message"])
}
