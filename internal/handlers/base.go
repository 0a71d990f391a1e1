package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash kinds, mapped onto alert styles in the templates.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

var flashKeys = map[string]string{
	FlashSuccess: "FlashSuccess",
	FlashError:   "FlashError",
	FlashInfo:    "FlashInfo",
}

// Render draws a template with pending flash messages injected. Reading a
// flash consumes it, so each message shows exactly once.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	session := sessions.Default(c)
	consumed := false
	for kind, key := range flashKeys {
		if msgs := session.Flashes(kind); len(msgs) > 0 {
			obj[key] = msgs[0]
			consumed = true
		}
	}
	if consumed {
		session.Save()
	}

	obj["CurrentPath"] = c.Request.URL.Path
	c.HTML(code, name, obj)
}

// Flash queues a one-shot message for the next rendered page.
func Flash(c *gin.Context, kind, msg string) {
	session := sessions.Default(c)
	session.AddFlash(msg, kind)
	session.Save()
}
