package tasks

// TaskSchedulerInterface defines the interface for task scheduling operations.
// Used by the main application to manage background collection cycles.
// Example usage:
//
//	scheduler := NewScheduler(sourceCache, sourceRepo, pipeline)
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(NewCollectNewsTask(pipeline))
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}
