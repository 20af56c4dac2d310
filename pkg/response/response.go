package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"support-srv/pkg/discord"
	pkgErrors "support-srv/pkg/errors"
)

// OK writes the standard success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: codeOK,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. Known HTTPErrors keep their status and
// code; anything else becomes a 500. Server-side failures are reported to
// the Discord channel when a client is configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if e, ok := err.(*pkgErrors.HTTPError); ok {
		httpErr = e
	} else {
		httpErr = pkgErrors.New(http.StatusInternalServerError, codeInternal, "Internal server error")
	}

	if httpErr.Status >= http.StatusInternalServerError && discordClient != nil {
		ctx := c.Request.Context()
		_ = discordClient.SendError(ctx, "Server error",
			c.Request.Method+" "+c.Request.URL.Path, err)
	}

	c.JSON(httpErr.Status, Resp{
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
	})
}

// ErrorWithMap resolves err through the mapping before responding.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, discordClient discord.IDiscord) {
	if mapped, ok := mapping[err]; ok {
		Error(c, mapped, discordClient)
		return
	}
	Error(c, err, discordClient)
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// NotFound writes a 404 envelope.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   "Not found",
	})
}

// PanicError reports a recovered panic and writes a 500 envelope.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	if discordClient != nil {
		ctx := c.Request.Context()
		_ = discordClient.SendError(ctx, "Panic recovered",
			fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, recovered), nil)
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternal,
		Message:   "Internal server error",
	})
}
