// Package service provides the application operations behind the HTTP routes.
package service

import (
	"time"

	"github.com/portfolio/portfolio/internal/metrics"
)

// Store operation names used for metrics and logs.
const (
	OpListContacts  = "list_contacts"
	OpCreateContact = "create_contact"
	OpListProjects  = "list_projects"
	OpCreateProject = "create_project"
)

// observe records the duration and outcome of one store call.
func observe(recorder metrics.Recorder, op string, start time.Time, err error) {
	recorder.ObserveStoreDuration(op, time.Since(start))
	if err != nil {
		recorder.IncStoreError(op)
	}
}
