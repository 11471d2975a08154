package exposureindex

import (
	"database/sql"

	"github.com/jonathansick-shadow/skymap/util"
)

// Context is the context for an exposure index operation
type Context struct {
	DB        *sql.DB
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

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}
