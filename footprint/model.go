package footprint

import (
	"github.com/jonathansick-shadow/skymap/butler"
	"github.com/jonathansick-shadow/skymap/util"
)

// Context is the context for a coverage operation
type Context struct {
	Butler    *butler.Butler
	sessionID string
}

// AppName returns the tool name for log messages
func (c *Context) AppName() string {
	return "skymap"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns the repository root
func (c *Context) LogRootDir() string {
	if c.Butler == nil {
		return ""
	}
	return c.Butler.Root()
}
