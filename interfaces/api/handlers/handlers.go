package handlers

import (
	"jobupdate/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	JobService       services.JobService
	PipelineService  services.PipelineService
	LifecycleService services.LifecycleService
	PublishService   services.PublishService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	JobHandler  *JobHandler
	CronHandler *CronHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		JobHandler:  NewJobHandler(services.JobService),
		CronHandler: NewCronHandler(services.PipelineService, services.LifecycleService, services.PublishService),
	}
}
