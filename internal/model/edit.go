package model

import "time"

// UndoEntry records one committed document command so it can be reverted.
type UndoEntry struct {
	Command    string
	Path       Path
	Before     string
	After      string
	BeforeHash string
	AfterHash  string
	Time       time.Time
}
