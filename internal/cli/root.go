package cli

import (
	"github.com/jcallahan/wellnest/internal/backup"
	"github.com/jcallahan/wellnest/internal/logger"
	"github.com/jcallahan/wellnest/internal/reminder"
	"github.com/jcallahan/wellnest/internal/storage"
)

type Context struct {
	Store    storage.Provider
	Reminder *reminder.Scheduler
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
