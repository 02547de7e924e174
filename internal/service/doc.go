// Package service contains the application's use-case layer. Services
// orchestrate stores, the progression engine, and the content generator
// on behalf of the API handlers, and publish progress events for the
// state changes they make. Handlers never touch stores or the engine
// directly.
package service
