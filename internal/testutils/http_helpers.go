package testutils

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/travel-blog-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorResponse checks the status and that body is the standard JSON
// error whose message contains expectedMsgPart. It returns the decoded body.
func AssertErrorResponse(
	t *testing.T,
	status int,
	body []byte,
	expectedStatus int,
	expectedMsgPart string,
) shared.ErrorResponse {
	t.Helper()

	assert.Equal(t, expectedStatus, status, "unexpected status, body: %s", string(body))

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "body is not an error response: %s", string(body))
	assert.Contains(t, errResp.Message, expectedMsgPart)
	return errResp
}
