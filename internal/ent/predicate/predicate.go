// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Bundle is the predicate function for bundle builders.
type Bundle func(*sql.Selector)

// BundleCategory is the predicate function for bundlecategory builders.
type BundleCategory func(*sql.Selector)

// DailyDose is the predicate function for dailydose builders.
type DailyDose func(*sql.Selector)

// DigestRun is the predicate function for digestrun builders.
type DigestRun func(*sql.Selector)

// DigestTask is the predicate function for digesttask builders.
type DigestTask func(*sql.Selector)

// KnowledgeObject is the predicate function for knowledgeobject builders.
type KnowledgeObject func(*sql.Selector)

// KoSummary is the predicate function for kosummary builders.
type KoSummary func(*sql.Selector)
