package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shreya-jain12/JainTriad/internal/i18n"
)

// GetUsername extracts the authenticated username from the Gin context
func GetUsername(c *gin.Context) string {
	return c.GetString("username")
}

// indexParam parses the :index path parameter. The second return is
// false when the parameter is not a valid non-negative integer.
func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

// langQuery reads the ?lang= parameter used by the export endpoints.
func langQuery(c *gin.Context) i18n.Lang {
	return i18n.Parse(c.Query("lang"))
}

// attachment sends body as a plain-text file download.
func attachment(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "text/plain; charset=utf-8", []byte(body))
}
