// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Contractor is the predicate function for contractor builders.
type Contractor func(*sql.Selector)

// EditLock is the predicate function for editlock builders.
type EditLock func(*sql.Selector)

// Photo is the predicate function for photo builders.
type Photo func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// ReportEntry is the predicate function for reportentry builders.
type ReportEntry func(*sql.Selector)

// ReportRawCapture is the predicate function for reportrawcapture builders.
type ReportRawCapture func(*sql.Selector)

// UserProfile is the predicate function for userprofile builders.
type UserProfile func(*sql.Selector)
