package httpgin

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// writeJSONWithETag writes a JSON response with a content-derived ETag.
// If If-None-Match matches the current tag — returns 304 with no body.
func writeJSONWithETag(c *gin.Context, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	sum := sha256.Sum256(b)
	tag := "W/" + `"` + hex.EncodeToString(sum[:]) + `"`
	inm := c.GetHeader("If-None-Match")
	c.Header("ETag", tag)
	if inm == tag {
		c.Status(http.StatusNotModified)
		c.Writer.WriteHeaderNow()
		return
	}
	c.Data(status, "application/json; charset=utf-8", b)
}
