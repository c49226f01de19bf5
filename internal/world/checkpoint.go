package world

import "context"

// CheckpointJob writes every world whose autosave has not succeeded yet.
// It is scheduled periodically so a store outage does not leave worlds
// unsaved until shutdown.
type CheckpointJob struct {
	Registry *Registry
}

// Name implements worker.Job.
func (j *CheckpointJob) Name() string {
	return CheckpointJobName
}

// Process implements worker.Job.
func (j *CheckpointJob) Process(ctx context.Context) error {
	return j.Registry.Flush(ctx)
}
