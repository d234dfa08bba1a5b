// Package domain holds the types shared by every entity package: sentinel
// errors, field-level validation errors, the study group error family, and
// the Action/WriteStager contracts used to stage writes within a request.
// Entity types live in sub-packages (domain/studygroup, domain/member).
package domain
