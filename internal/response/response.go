// Package response writes the service's HTTP output: the windows-1251
// encoded page body and the plain failure responses.
package response

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/encoding/charmap"
)

// ContentType declares the legacy single-byte charset the page body is
// encoded in.
const ContentType = "text/html; charset=windows-1251"

// HTML transcodes a rendered UTF-8 document to windows-1251 and writes
// it. Any rune outside the target charset fails the whole response; the
// caller decides what to send instead.
func HTML(c *gin.Context, statusCode int, doc string) error {
	encoded, err := charmap.Windows1251.NewEncoder().Bytes([]byte(doc))
	if err != nil {
		return fmt.Errorf("windows-1251 encode: %w", err)
	}
	c.Data(statusCode, ContentType, encoded)
	return nil
}

// Fail sends the generic plain-text failure for a status code. The page
// has no styled error surface; hard failures stay unstructured.
func Fail(c *gin.Context, statusCode int) {
	c.String(statusCode, http.StatusText(statusCode))
}

// FailFields sends a plain-text failure listing field-level validation
// problems, one "field: message" line each, in stable order.
func FailFields(c *gin.Context, statusCode int, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %s\n", name, fields[name])
	}
	c.String(statusCode, b.String())
}
