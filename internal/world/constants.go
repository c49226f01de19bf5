package world

// Log messages
const (
	LogMsgWorldCreated      = "Created world"
	LogMsgWorldLoaded       = "Loaded world"
	LogMsgWorldsFlushed     = "Flushed unsaved worlds"
	LogMsgAutosaveNotQueued = "Autosave not queued, world stays pending until flush"
)

// CheckpointJobName labels checkpoint jobs in logs
const CheckpointJobName = "checkpoint"
