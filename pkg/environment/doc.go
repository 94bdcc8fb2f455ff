// Package environment carries the deployment environment through config
// and request contexts.
package environment
