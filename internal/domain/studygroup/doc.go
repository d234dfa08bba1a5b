// Package studygroup defines the StudyGroup aggregate, its membership
// relation and value types, and the commands and events that drive its
// lifecycle: created, applied to, updated, and deleted.
package studygroup
