// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Roadmap maps a month index (1..N) to the tasks planned for that month.
// Every month in range is present, possibly with an empty task list.
type Roadmap map[int][]string
