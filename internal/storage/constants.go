package storage

// MaxNameLength bounds world names in every backend
const MaxNameLength = 64

// NameValidationTag is the validator rule applied to world names
const NameValidationTag = "required,max=64,worldname"

// Log messages
const (
	LogMsgStoreOpened = "World store opened"
)
