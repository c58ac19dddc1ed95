// Package models contains GORM database models for the infrastructure layer.
// These models handle database persistence for banner images, projects, users,
// sessions and config settings, and are separated from domain entities to
// maintain Clean Architecture principles.
package models
