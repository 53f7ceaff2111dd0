// Package services holds the business logic of the course service.
//
// Services defined in this package:
//   - CourseService: course reads and owner-checked mutations; publishes CourseEvents
//   - BootcampService: read-only bootcamp access
//   - AverageCostMaintainer: keeps Bootcamp.averageCost in step with course tuition
package services
