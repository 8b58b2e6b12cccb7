// Package ports defines the interfaces (ports) that connect the pipeline
// to infrastructure adapters.
//
// # Port Interfaces
//
//   - [Logger]: Structured logging abstraction
//   - [SourceReader]: Loads the text a pipeline run consumes
//   - [ReportWriter]: Persists or prints a finished run report
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (file system, zerolog, etc.).
package ports
