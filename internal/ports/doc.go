// Package ports declares what the application needs from the outside world
// and what it offers to the HTTP layer: StudyGroupService inward, and the
// repository, image store, cache, event publisher and member client outward.
package ports
