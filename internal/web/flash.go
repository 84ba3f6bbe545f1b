package web

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash is a one-time message that survives the redirect back to the
// listing page. Severity is one of: success, warning, danger, info, dark.
type Flash struct {
	Severity string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

func addFlash(c *gin.Context, severity, message string) {
	session := sessions.Default(c)
	session.AddFlash(Flash{Severity: severity, Message: message})
	_ = session.Save()
}

// takeFlashes drains the pending flashes; reading marks them consumed, so
// the session has to be saved again.
func takeFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save()
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if flash, ok := v.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
