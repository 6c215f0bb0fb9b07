package constants

import "time"

const (
	AppName           = "wellnest"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/wellnest/wellnest.db"

	// DateFormat is the standard calendar-day format used throughout the
	// application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard clock-time format (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "wellnest-"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "wellnest-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.jcallahan.wellnest"
	KeyringSecretUser      = "notifier-secret"
)
